package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock
//go:generate mockgen -source=draft.go -destination=../../../tests/mock/commands/draft.go -package=commandsmock
//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock
//go:generate mockgen -source=product.go -destination=../../../tests/mock/commands/product.go -package=commandsmock
//go:generate mockgen -source=equipment.go -destination=../../../tests/mock/commands/equipment.go -package=commandsmock
