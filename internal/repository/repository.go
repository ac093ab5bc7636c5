package repository

import (
	"context"
	"daybook/internal/db"
	"errors"
	"fmt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrEntryNotFound error = errors.New("entry not found")
var ErrDuplicateUsername error = errors.New("username already taken")

type JournalRepository struct {
	db Storage
}

func NewJournalRepository(db Storage) *JournalRepository {
	return &JournalRepository{
		db: db,
	}
}

func (r *JournalRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Entry{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *JournalRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrDuplicateUsername
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *JournalRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *JournalRepository) EntriesByOwner(ctx context.Context, userID uint) ([]Entry, error) {
	entries := []Entry{}

	err := r.db.GetAllBy(ctx, "user_id", userID, &entries)
	if err != nil {
		return nil, fmt.Errorf("get entries by owner: %w", err)
	}

	return entries, nil
}

// EntryByIDForOwner matches both the entry id and the owning user id. A
// missing row and a row owned by someone else are the same ErrEntryNotFound.
func (r *JournalRepository) EntryByIDForOwner(ctx context.Context, entryID, userID uint) (Entry, error) {
	var entry Entry

	err := r.db.GetOneWhere(ctx, ownerScope(entryID, userID), &entry)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Entry{}, ErrEntryNotFound
		}
		return Entry{}, fmt.Errorf("get entry for owner: %w", err)
	}

	return entry, nil
}

func (r *JournalRepository) CreateEntry(ctx context.Context, entry Entry) (Entry, error) {
	err := r.db.Insert(ctx, &entry)
	if err != nil {
		return Entry{}, fmt.Errorf("insert entry: %w", err)
	}

	return entry, nil
}

func (r *JournalRepository) UpdateEntryForOwner(ctx context.Context, entryID, userID uint, title, notes, photoURL string) (Entry, error) {
	fields := map[string]any{
		"title":     title,
		"notes":     notes,
		"photo_url": photoURL,
	}

	affected, err := r.db.UpdateWhere(ctx, &Entry{}, ownerScope(entryID, userID), fields)
	if err != nil {
		return Entry{}, fmt.Errorf("update entry: %w", err)
	}
	if affected == 0 {
		return Entry{}, ErrEntryNotFound
	}

	return r.EntryByIDForOwner(ctx, entryID, userID)
}

// DeleteEntryForOwner removes the entry and returns its prior state.
func (r *JournalRepository) DeleteEntryForOwner(ctx context.Context, entryID, userID uint) (Entry, error) {
	entry, err := r.EntryByIDForOwner(ctx, entryID, userID)
	if err != nil {
		return Entry{}, err
	}

	affected, err := r.db.DeleteWhere(ctx, &Entry{}, ownerScope(entryID, userID))
	if err != nil {
		return Entry{}, fmt.Errorf("delete entry: %w", err)
	}
	if affected == 0 {
		// deleted concurrently between the read and the delete
		return Entry{}, ErrEntryNotFound
	}

	return entry, nil
}

func ownerScope(entryID, userID uint) map[string]any {
	return map[string]any{
		"id":      entryID,
		"user_id": userID,
	}
}
