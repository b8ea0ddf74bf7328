package queries

import (
	"context"

	"rentaldesk/internal/domain/draft"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/internal/usecase/shared"
)

var ErrProductNotFound = errs.New("product not found")

type ProductQueries interface {
	List(ctx context.Context) ([]readmodel.ProductRM, error)
	Find(ctx context.Context, id string) (*draft.Product, error)
}

type productQueriesImpl struct {
	gateway shared.ProductGateway
}

func NewProductQueries(gateway shared.ProductGateway) ProductQueries {
	return &productQueriesImpl{gateway: gateway}
}

func (q *productQueriesImpl) List(ctx context.Context) ([]readmodel.ProductRM, error) {
	return q.gateway.ListProducts(ctx)
}

// Find looks the product up in the catalog listing; the backend has no
// single-product endpoint.
func (q *productQueriesImpl) Find(ctx context.Context, id string) (*draft.Product, error) {
	products, err := q.gateway.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return &draft.Product{
				ID:    p.ID,
				Name:  p.Name,
				Type:  p.Type,
				Price: p.Price,
				Stock: p.Quantity,
			}, nil
		}
	}
	return nil, errs.Mark(ErrProductNotFound, errs.ErrNotFound)
}
