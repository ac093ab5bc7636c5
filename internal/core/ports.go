package core

import (
	"context"
	"daybook/internal/repository"
	tokenIssuer "daybook/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	EntriesByOwner(ctx context.Context, userID uint) ([]repository.Entry, error)
	EntryByIDForOwner(ctx context.Context, entryID, userID uint) (repository.Entry, error)
	CreateEntry(ctx context.Context, entry repository.Entry) (repository.Entry, error)
	UpdateEntryForOwner(ctx context.Context, entryID, userID uint, title, notes, photoURL string) (repository.Entry, error)
	DeleteEntryForOwner(ctx context.Context, entryID, userID uint) (repository.Entry, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
