package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock
