package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock
//go:generate mockgen -source=product.go -destination=../../../tests/mock/queries/product.go -package=queriesmock
//go:generate mockgen -source=equipment.go -destination=../../../tests/mock/queries/equipment.go -package=queriesmock
//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock
