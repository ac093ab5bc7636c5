package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"daybook/internal/core"
	"daybook/internal/http/handler"
	"daybook/internal/http/handler/fake"
	"daybook/internal/http/handler/middleware"
	"daybook/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("JournalHandler", func() {
	var (
		journalHandler *handler.JournalHandler
		fakeJournal    *fake.JournalService
		fakeValidator  *fake.RequestValidator
		mux            *http.ServeMux
		recorder       *httptest.ResponseRecorder
		request        *http.Request
		identity       middleware.Identity
	)

	BeforeEach(func() {
		fakeJournal = new(fake.JournalService)
		fakeValidator = new(fake.RequestValidator)
		journalHandler = handler.NewJournalHandler(zap.NewNop().Sugar(), fakeValidator, fakeJournal)

		mux = http.NewServeMux()
		mux.HandleFunc(handler.SignUp, journalHandler.HandleSignUp)
		mux.HandleFunc(handler.SignIn, journalHandler.HandleSignIn)
		mux.HandleFunc(handler.ListEntries, journalHandler.HandleListEntries)
		mux.HandleFunc(handler.GetEntry, journalHandler.HandleGetEntry)
		mux.HandleFunc(handler.CreateEntry, journalHandler.HandleCreateEntry)
		mux.HandleFunc(handler.UpdateEntry, journalHandler.HandleUpdateEntry)
		mux.HandleFunc(handler.DeleteEntry, journalHandler.HandleDeleteEntry)

		recorder = httptest.NewRecorder()
		identity = middleware.Identity{UserID: 1, Username: "alice"}
	})

	authorize := func(r *http.Request) *http.Request {
		return r.WithContext(middleware.WithIdentity(r.Context(), identity))
	}

	decodeBody := func(dest any) {
		Expect(json.NewDecoder(recorder.Body).Decode(dest)).To(Succeed())
	}

	Describe("HandleSignUp", func() {
		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodPost, "/api/users/sign-up", strings.NewReader(`{}`))
		})

		JustBeforeEach(func() {
			mux.ServeHTTP(recorder, request)
		})

		When("the registration succeeds", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = func(r *http.Request, object any) error {
					*object.(*payload.CredentialsRequest) = payload.CredentialsRequest{
						Username: "alice",
						Password: "open sesame",
					}
					return nil
				}
				fakeJournal.SignUpReturns(core.UserRecord{UserID: 1, Username: "alice"}, nil)
			})

			It("should respond with 201 and the created user", func() {
				Expect(recorder.Code).To(Equal(http.StatusCreated))
				Expect(recorder.Header().Get("Content-Type")).To(Equal("application/json"))

				var user core.UserRecord
				decodeBody(&user)
				Expect(user).To(Equal(core.UserRecord{UserID: 1, Username: "alice"}))

				_, msg := fakeJournal.SignUpArgsForCall(0)
				Expect(msg).To(Equal(core.CredentialsMessage{Username: "alice", Password: "open sesame"}))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(errors.New("username: cannot be blank"))
			})

			It("should respond with 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeJournal.SignUpCallCount()).To(Equal(0))

				var resp handler.Response
				decodeBody(&resp)
				Expect(resp.Error).To(ContainSubstring("cannot be blank"))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeJournal.SignUpReturns(core.UserRecord{}, core.ErrDuplicateUsername)
			})

			It("should respond with 409", func() {
				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeJournal.SignUpReturns(core.UserRecord{}, errors.New("db is down"))
			})

			It("should respond with 500 and a generic error", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))

				var resp handler.Response
				decodeBody(&resp)
				Expect(resp.Error).To(Equal("unexpected error occurred"))
				Expect(resp.Error).NotTo(ContainSubstring("db is down"))
			})
		})
	})

	Describe("HandleSignIn", func() {
		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodPost, "/api/users/sign-in", strings.NewReader(`{}`))
		})

		JustBeforeEach(func() {
			mux.ServeHTTP(recorder, request)
		})

		When("the credentials are correct", func() {
			BeforeEach(func() {
				fakeJournal.SignInReturns(core.UserRecord{UserID: 1, Username: "alice"}, "signed.jwt.token", nil)
			})

			It("should respond with 200, the user and the token", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				var resp map[string]json.RawMessage
				decodeBody(&resp)
				Expect(resp).To(HaveKey("user"))
				Expect(string(resp["token"])).To(Equal(`"signed.jwt.token"`))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeJournal.SignInReturns(core.UserRecord{}, "", core.ErrUserNotFound)
			})

			It("should respond with 404", func() {
				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeJournal.SignInReturns(core.UserRecord{}, "", core.ErrIncorrectPassword)
			})

			It("should respond with 401", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleListEntries", func() {
		BeforeEach(func() {
			request = authorize(httptest.NewRequest(http.MethodGet, "/api/entries", nil))
		})

		JustBeforeEach(func() {
			mux.ServeHTTP(recorder, request)
		})

		When("the owner has entries", func() {
			BeforeEach(func() {
				fakeJournal.ListEntriesReturns([]core.EntryRecord{
					{EntryID: 1, UserID: 1, Title: "Day 1"},
					{EntryID: 2, UserID: 1, Title: "Day 2"},
				}, nil)
			})

			It("should respond with 200 and the entries", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				var entries []core.EntryRecord
				decodeBody(&entries)
				Expect(entries).To(HaveLen(2))

				_, userID := fakeJournal.ListEntriesArgsForCall(0)
				Expect(userID).To(Equal(uint(1)))
			})
		})

		When("no identity is attached to the request", func() {
			BeforeEach(func() {
				request = httptest.NewRequest(http.MethodGet, "/api/entries", nil)
			})

			It("should respond with 401 without calling the service", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeJournal.ListEntriesCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetEntry", func() {
		BeforeEach(func() {
			request = authorize(httptest.NewRequest(http.MethodGet, "/api/entries/5", nil))
		})

		JustBeforeEach(func() {
			mux.ServeHTTP(recorder, request)
		})

		When("the entry belongs to the owner", func() {
			BeforeEach(func() {
				fakeJournal.GetEntryReturns(core.EntryRecord{EntryID: 5, UserID: 1, Title: "Day 1"}, nil)
			})

			It("should respond with 200 and the entry", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				_, entryID, userID := fakeJournal.GetEntryArgsForCall(0)
				Expect(entryID).To(Equal(uint(5)))
				Expect(userID).To(Equal(uint(1)))
			})
		})

		When("the entry id is not a positive integer", func() {
			BeforeEach(func() {
				request = authorize(httptest.NewRequest(http.MethodGet, "/api/entries/abc", nil))
			})

			It("should respond with 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeJournal.GetEntryCallCount()).To(Equal(0))
			})
		})

		When("the entry does not exist or belongs to someone else", func() {
			BeforeEach(func() {
				fakeJournal.GetEntryReturns(core.EntryRecord{}, core.ErrEntryNotFound)
			})

			It("should respond with 404", func() {
				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleCreateEntry", func() {
		BeforeEach(func() {
			request = authorize(httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(`{}`)))
		})

		JustBeforeEach(func() {
			mux.ServeHTTP(recorder, request)
		})

		When("the entry is valid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = func(r *http.Request, object any) error {
					*object.(*payload.EntryRequest) = payload.EntryRequest{
						Title:    "Day 1",
						Notes:    "first entry",
						PhotoURL: "http://x/a.jpg",
					}
					return nil
				}
				fakeJournal.CreateEntryReturns(core.EntryRecord{EntryID: 7, UserID: 1, Title: "Day 1"}, nil)
			})

			It("should respond with 201 and the created entry", func() {
				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var entry core.EntryRecord
				decodeBody(&entry)
				Expect(entry.EntryID).To(Equal(uint(7)))

				_, userID, msg := fakeJournal.CreateEntryArgsForCall(0)
				Expect(userID).To(Equal(uint(1)))
				Expect(msg.Title).To(Equal("Day 1"))
			})
		})

		When("a required field is blank", func() {
			BeforeEach(func() {
				fakeJournal.CreateEntryReturns(core.EntryRecord{}, core.ErrInvalidEntry)
			})

			It("should respond with 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("no identity is attached to the request", func() {
			BeforeEach(func() {
				request = httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(`{}`))
			})

			It("should respond with 401", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleUpdateEntry", func() {
		BeforeEach(func() {
			request = authorize(httptest.NewRequest(http.MethodPut, "/api/entries/5", strings.NewReader(`{}`)))
		})

		JustBeforeEach(func() {
			mux.ServeHTTP(recorder, request)
		})

		When("the entry belongs to the owner", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = func(r *http.Request, object any) error {
					*object.(*payload.EntryRequest) = payload.EntryRequest{
						Title:    "updated",
						Notes:    "new notes",
						PhotoURL: "http://x/b.jpg",
					}
					return nil
				}
				fakeJournal.UpdateEntryReturns(core.EntryRecord{EntryID: 5, UserID: 1, Title: "updated"}, nil)
			})

			It("should respond with 200 and the updated entry", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				_, entryID, userID, msg := fakeJournal.UpdateEntryArgsForCall(0)
				Expect(entryID).To(Equal(uint(5)))
				Expect(userID).To(Equal(uint(1)))
				Expect(msg.Title).To(Equal("updated"))
			})
		})

		When("the entry does not exist or belongs to someone else", func() {
			BeforeEach(func() {
				fakeJournal.UpdateEntryReturns(core.EntryRecord{}, core.ErrEntryNotFound)
			})

			It("should respond with 404", func() {
				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the entry id is not a positive integer", func() {
			BeforeEach(func() {
				request = authorize(httptest.NewRequest(http.MethodPut, "/api/entries/0", strings.NewReader(`{}`)))
			})

			It("should respond with 400 without decoding the payload", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeValidator.DecodeAndValidateJSONPayloadCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleDeleteEntry", func() {
		BeforeEach(func() {
			request = authorize(httptest.NewRequest(http.MethodDelete, "/api/entries/5", nil))
		})

		JustBeforeEach(func() {
			mux.ServeHTTP(recorder, request)
		})

		When("the entry belongs to the owner", func() {
			BeforeEach(func() {
				fakeJournal.DeleteEntryReturns(core.EntryRecord{EntryID: 5, UserID: 1, Title: "Day 1"}, nil)
			})

			It("should respond with 200 and the deleted entry", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				var entry core.EntryRecord
				decodeBody(&entry)
				Expect(entry.EntryID).To(Equal(uint(5)))

				_, entryID, userID := fakeJournal.DeleteEntryArgsForCall(0)
				Expect(entryID).To(Equal(uint(5)))
				Expect(userID).To(Equal(uint(1)))
			})
		})

		When("the entry does not exist or belongs to someone else", func() {
			BeforeEach(func() {
				fakeJournal.DeleteEntryReturns(core.EntryRecord{}, core.ErrEntryNotFound)
			})

			It("should respond with 404", func() {
				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
