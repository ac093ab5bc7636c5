package handler

import (
	"context"
	"daybook/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name JournalService . JournalService
type JournalService interface {
	SignUp(ctx context.Context, msg core.CredentialsMessage) (core.UserRecord, error)
	SignIn(ctx context.Context, msg core.CredentialsMessage) (core.UserRecord, string, error)
	ListEntries(ctx context.Context, userID uint) ([]core.EntryRecord, error)
	GetEntry(ctx context.Context, entryID, userID uint) (core.EntryRecord, error)
	CreateEntry(ctx context.Context, userID uint, msg core.EntryMessage) (core.EntryRecord, error)
	UpdateEntry(ctx context.Context, entryID, userID uint, msg core.EntryMessage) (core.EntryRecord, error)
	DeleteEntry(ctx context.Context, entryID, userID uint) (core.EntryRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
