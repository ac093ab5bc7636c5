package core_test

import (
	"context"
	"errors"

	"daybook/internal/core"
	"daybook/internal/core/fake"
	"daybook/internal/repository"
	"daybook/pkg/password"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Journal", func() {
	var (
		journal    *core.Journal
		fakeRepo   *fake.Repository
		fakeIssuer *fake.TokenIssuer
		ctx        context.Context
		fakeErr    error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeIssuer = new(fake.TokenIssuer)
		journal = core.NewJournal(zap.NewNop().Sugar(), fakeRepo, fakeIssuer)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("SignUp", func() {
		var (
			msg    core.CredentialsMessage
			record core.UserRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.CredentialsMessage{
				Username: "alice",
				Password: "open sesame",
			}
		})

		JustBeforeEach(func() {
			record, err = journal.SignUp(ctx, msg)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: "$argon2id$...",
				}, nil)
			})

			It("should persist the user with a hashed password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(core.UserRecord{UserID: 1, Username: "alice"}))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, username, hash := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(hash).To(HavePrefix("$argon2id$"))
				Expect(hash).NotTo(ContainSubstring("open sesame"))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrDuplicateUsername)
			})

			It("should return a duplicate username error", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUsername))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SignIn", func() {
		var (
			msg    core.CredentialsMessage
			record core.UserRecord
			token  string
			err    error
		)

		BeforeEach(func() {
			msg = core.CredentialsMessage{
				Username: "alice",
				Password: "open sesame",
			}

			hash, hashErr := password.Hash("open sesame")
			Expect(hashErr).NotTo(HaveOccurred())
			fakeRepo.GetUserByUsernameReturns(repository.User{
				ID:           1,
				Username:     "alice",
				PasswordHash: hash,
			}, nil)

			fakeIssuer.GenerateReturns(&jwt.Token{})
			fakeIssuer.SignReturns("signed.jwt.token", nil)
		})

		JustBeforeEach(func() {
			record, token, err = journal.SignIn(ctx, msg)
		})

		When("the credentials are correct", func() {
			It("should return the user and a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(core.UserRecord{UserID: 1, Username: "alice"}))
				Expect(token).To(Equal("signed.jwt.token"))

				Expect(fakeIssuer.GenerateCallCount()).To(Equal(1))
				info := fakeIssuer.GenerateArgsForCall(0)
				Expect(info.UserID).To(Equal(uint(1)))
				Expect(info.Username).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return a user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				msg.Password = "not the password"
			})

			It("should return an incorrect password error without issuing a token", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(token).To(BeEmpty())
				Expect(fakeIssuer.GenerateCallCount()).To(Equal(0))
			})
		})

		When("signing the token fails", func() {
			BeforeEach(func() {
				fakeIssuer.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListEntries", func() {
		var (
			records []core.EntryRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = journal.ListEntries(ctx, 1)
		})

		When("the owner has entries", func() {
			BeforeEach(func() {
				fakeRepo.EntriesByOwnerReturns([]repository.Entry{
					{ID: 1, UserID: 1, Title: "Day 1", Notes: "notes", PhotoURL: "http://x/a.jpg"},
					{ID: 2, UserID: 1, Title: "Day 2", Notes: "notes", PhotoURL: "http://x/b.jpg"},
				}, nil)
			})

			It("should return the owner's entries", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0]).To(Equal(core.EntryRecord{
					EntryID:  1,
					UserID:   1,
					Title:    "Day 1",
					Notes:    "notes",
					PhotoURL: "http://x/a.jpg",
				}))

				_, userID := fakeRepo.EntriesByOwnerArgsForCall(0)
				Expect(userID).To(Equal(uint(1)))
			})
		})

		When("the owner has no entries", func() {
			It("should return an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.EntriesByOwnerReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetEntry", func() {
		var (
			record core.EntryRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = journal.GetEntry(ctx, 5, 1)
		})

		When("the entry belongs to the owner", func() {
			BeforeEach(func() {
				fakeRepo.EntryByIDForOwnerReturns(repository.Entry{ID: 5, UserID: 1, Title: "Day 1"}, nil)
			})

			It("should return the entry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.EntryID).To(Equal(uint(5)))

				_, entryID, userID := fakeRepo.EntryByIDForOwnerArgsForCall(0)
				Expect(entryID).To(Equal(uint(5)))
				Expect(userID).To(Equal(uint(1)))
			})
		})

		When("the entry is missing or owned by someone else", func() {
			BeforeEach(func() {
				fakeRepo.EntryByIDForOwnerReturns(repository.Entry{}, repository.ErrEntryNotFound)
			})

			It("should return an entry not found error", func() {
				Expect(err).To(MatchError(core.ErrEntryNotFound))
			})
		})
	})

	Describe("CreateEntry", func() {
		var (
			msg    core.EntryMessage
			record core.EntryRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.EntryMessage{
				Title:    "Day 1",
				Notes:    "first entry",
				PhotoURL: "http://x/a.jpg",
			}
		})

		JustBeforeEach(func() {
			record, err = journal.CreateEntry(ctx, 1, msg)
		})

		When("the entry is valid", func() {
			BeforeEach(func() {
				fakeRepo.CreateEntryReturns(repository.Entry{
					ID:       7,
					UserID:   1,
					Title:    "Day 1",
					Notes:    "first entry",
					PhotoURL: "http://x/a.jpg",
				}, nil)
			})

			It("should persist the entry for the owner", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.EntryID).To(Equal(uint(7)))

				_, entry := fakeRepo.CreateEntryArgsForCall(0)
				Expect(entry.UserID).To(Equal(uint(1)))
				Expect(entry.Title).To(Equal("Day 1"))
			})
		})

		When("a field is blank", func() {
			BeforeEach(func() {
				msg.Notes = ""
			})

			It("should return an invalid entry error without persisting", func() {
				Expect(err).To(MatchError(core.ErrInvalidEntry))
				Expect(fakeRepo.CreateEntryCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateEntryReturns(repository.Entry{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateEntry", func() {
		var (
			msg    core.EntryMessage
			record core.EntryRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.EntryMessage{
				Title:    "updated",
				Notes:    "new notes",
				PhotoURL: "http://x/b.jpg",
			}
		})

		JustBeforeEach(func() {
			record, err = journal.UpdateEntry(ctx, 5, 1, msg)
		})

		When("the entry belongs to the owner", func() {
			BeforeEach(func() {
				fakeRepo.UpdateEntryForOwnerReturns(repository.Entry{
					ID:       5,
					UserID:   1,
					Title:    "updated",
					Notes:    "new notes",
					PhotoURL: "http://x/b.jpg",
				}, nil)
			})

			It("should return the updated entry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Title).To(Equal("updated"))

				_, entryID, userID, title, notes, photoURL := fakeRepo.UpdateEntryForOwnerArgsForCall(0)
				Expect(entryID).To(Equal(uint(5)))
				Expect(userID).To(Equal(uint(1)))
				Expect(title).To(Equal("updated"))
				Expect(notes).To(Equal("new notes"))
				Expect(photoURL).To(Equal("http://x/b.jpg"))
			})
		})

		When("a field is blank", func() {
			BeforeEach(func() {
				msg.Title = ""
			})

			It("should return an invalid entry error without touching the store", func() {
				Expect(err).To(MatchError(core.ErrInvalidEntry))
				Expect(fakeRepo.UpdateEntryForOwnerCallCount()).To(Equal(0))
			})
		})

		When("the entry is missing or owned by someone else", func() {
			BeforeEach(func() {
				fakeRepo.UpdateEntryForOwnerReturns(repository.Entry{}, repository.ErrEntryNotFound)
			})

			It("should return an entry not found error", func() {
				Expect(err).To(MatchError(core.ErrEntryNotFound))
			})
		})
	})

	Describe("DeleteEntry", func() {
		var (
			record core.EntryRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = journal.DeleteEntry(ctx, 5, 1)
		})

		When("the entry belongs to the owner", func() {
			BeforeEach(func() {
				fakeRepo.DeleteEntryForOwnerReturns(repository.Entry{ID: 5, UserID: 1, Title: "Day 1"}, nil)
			})

			It("should return the deleted entry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.EntryID).To(Equal(uint(5)))
				Expect(record.Title).To(Equal("Day 1"))

				_, entryID, userID := fakeRepo.DeleteEntryForOwnerArgsForCall(0)
				Expect(entryID).To(Equal(uint(5)))
				Expect(userID).To(Equal(uint(1)))
			})
		})

		When("the entry is missing or owned by someone else", func() {
			BeforeEach(func() {
				fakeRepo.DeleteEntryForOwnerReturns(repository.Entry{}, repository.ErrEntryNotFound)
			})

			It("should return an entry not found error", func() {
				Expect(err).To(MatchError(core.ErrEntryNotFound))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteEntryForOwnerReturns(repository.Entry{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
