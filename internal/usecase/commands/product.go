package commands

import (
	"context"
	"log/slog"
	"strings"

	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/internal/usecase/shared"
)

var ErrNegativeStock = errs.New("quantity must be zero or more")

type ProductCommands interface {
	UpdateStock(ctx context.Context, session *user.Session, productID string, quantity int) (*readmodel.ProductRM, error)
}

type productCommandsImpl struct {
	gateway shared.ProductGateway
	logger  *slog.Logger
}

func NewProductCommands(gateway shared.ProductGateway, logger *slog.Logger) ProductCommands {
	return &productCommandsImpl{gateway: gateway, logger: logger}
}

func (p *productCommandsImpl) UpdateStock(ctx context.Context, session *user.Session, productID string, quantity int) (*readmodel.ProductRM, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, errs.Validation(errs.New("product id is required"))
	}
	if quantity < 0 {
		return nil, errs.Validation(ErrNegativeStock)
	}

	updated, err := p.gateway.UpdateProductQuantity(ctx, session.Token(), productID, quantity)
	if err != nil {
		return nil, err
	}
	p.logger.Info("product stock updated",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
		slog.String("user_id", session.UserID()))
	return updated, nil
}
