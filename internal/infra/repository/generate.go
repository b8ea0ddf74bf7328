package repository

//go:generate mockgen -source=action_journal.go -destination=../../../tests/mock/repository/action_journal.go -package=repositorymock
