package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, dest any) error
	GetAllBy(ctx context.Context, column string, value any, dest any) error
	GetOneWhere(ctx context.Context, conds map[string]any, dest any) error
	UpdateWhere(ctx context.Context, model any, conds map[string]any, fields map[string]any) (int64, error)
	DeleteWhere(ctx context.Context, model any, conds map[string]any) (int64, error)
}
