package core

import (
	"context"
	"daybook/internal/repository"
	tokenIssuer "daybook/pkg/jwt"
	"daybook/pkg/password"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUsername error = errors.New("username already taken")
var ErrEntryNotFound error = errors.New("entry not found")
var ErrInvalidEntry error = errors.New("title, notes and photoUrl are required")

// Journal implements the journaling operations: account registration,
// sign-in and owner-scoped entry CRUD.
type Journal struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer TokenIssuer
}

func NewJournal(logger *zap.SugaredLogger, repo Repository, jwt TokenIssuer) *Journal {
	return &Journal{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// SignUp hashes the raw password and persists a new user. The returned
// record carries the identity only, never the hash.
func (j *Journal) SignUp(ctx context.Context, msg CredentialsMessage) (UserRecord, error) {
	hash, err := password.Hash(msg.Password)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := j.repo.CreateUser(ctx, msg.Username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return UserRecord{}, ErrDuplicateUsername
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	j.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return userToRecord(user), nil
}

// SignIn verifies the credentials and issues a signed identity token.
func (j *Journal) SignIn(ctx context.Context, msg CredentialsMessage) (UserRecord, string, error) {
	user, err := j.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, "", ErrUserNotFound
		}
		return UserRecord{}, "", fmt.Errorf("get user from db: %w", err)
	}

	if err = password.Verify(user.PasswordHash, msg.Password); err != nil {
		return UserRecord{}, "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserID:   user.ID,
		Username: user.Username,
	}
	token := j.jwtIssuer.Generate(tokenInfo)
	signed, err := j.jwtIssuer.Sign(token)
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("signing token: %w", err)
	}

	j.logs.Infow("user signed in", "userId", user.ID, "username", user.Username)

	return userToRecord(user), signed, nil
}

func (j *Journal) ListEntries(ctx context.Context, userID uint) ([]EntryRecord, error) {
	entries, err := j.repo.EntriesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get entries by owner: %w", err)
	}

	records := make([]EntryRecord, len(entries))
	for i, entry := range entries {
		records[i] = entryToRecord(entry)
	}

	return records, nil
}

func (j *Journal) GetEntry(ctx context.Context, entryID, userID uint) (EntryRecord, error) {
	entry, err := j.repo.EntryByIDForOwner(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return EntryRecord{}, ErrEntryNotFound
		}
		return EntryRecord{}, fmt.Errorf("get entry: %w", err)
	}

	return entryToRecord(entry), nil
}

func (j *Journal) CreateEntry(ctx context.Context, userID uint, msg EntryMessage) (EntryRecord, error) {
	if err := validateEntryMessage(msg); err != nil {
		return EntryRecord{}, err
	}

	entry, err := j.repo.CreateEntry(ctx, repository.Entry{
		UserID:   userID,
		Title:    msg.Title,
		Notes:    msg.Notes,
		PhotoURL: msg.PhotoURL,
	})
	if err != nil {
		return EntryRecord{}, fmt.Errorf("create entry: %w", err)
	}

	j.logs.Infow("entry created", "entryId", entry.ID, "userId", userID)

	return entryToRecord(entry), nil
}

func (j *Journal) UpdateEntry(ctx context.Context, entryID, userID uint, msg EntryMessage) (EntryRecord, error) {
	if err := validateEntryMessage(msg); err != nil {
		return EntryRecord{}, err
	}

	entry, err := j.repo.UpdateEntryForOwner(ctx, entryID, userID, msg.Title, msg.Notes, msg.PhotoURL)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return EntryRecord{}, ErrEntryNotFound
		}
		return EntryRecord{}, fmt.Errorf("update entry: %w", err)
	}

	j.logs.Infow("entry updated", "entryId", entryID, "userId", userID)

	return entryToRecord(entry), nil
}

// DeleteEntry removes the entry and returns its last persisted state.
func (j *Journal) DeleteEntry(ctx context.Context, entryID, userID uint) (EntryRecord, error) {
	entry, err := j.repo.DeleteEntryForOwner(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return EntryRecord{}, ErrEntryNotFound
		}
		return EntryRecord{}, fmt.Errorf("delete entry: %w", err)
	}

	j.logs.Infow("entry deleted", "entryId", entryID, "userId", userID)

	return entryToRecord(entry), nil
}

func validateEntryMessage(msg EntryMessage) error {
	if msg.Title == "" || msg.Notes == "" || msg.PhotoURL == "" {
		return ErrInvalidEntry
	}
	return nil
}

func userToRecord(user repository.User) UserRecord {
	return UserRecord{
		UserID:   user.ID,
		Username: user.Username,
	}
}

func entryToRecord(entry repository.Entry) EntryRecord {
	return EntryRecord{
		EntryID:  entry.ID,
		UserID:   entry.UserID,
		Title:    entry.Title,
		Notes:    entry.Notes,
		PhotoURL: entry.PhotoURL,
	}
}
