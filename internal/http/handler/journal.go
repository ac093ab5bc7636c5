package handler

import (
	"daybook/internal/core"
	"daybook/internal/http/handler/middleware"
	"daybook/internal/http/payload"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	SignUp      = "POST /api/users/sign-up"
	SignIn      = "POST /api/users/sign-in"
	ListEntries = "GET /api/entries"
	GetEntry    = "GET /api/entries/{entryId}"
	CreateEntry = "POST /api/entries"
	UpdateEntry = "PUT /api/entries/{entryId}"
	DeleteEntry = "DELETE /api/entries/{entryId}"
)

type JournalHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	journal          JournalService
}

func NewJournalHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, journalService JournalService) *JournalHandler {
	return &JournalHandler{
		logs:             logger,
		requestValidator: requestValidator,
		journal:          journalService,
	}
}

func (h *JournalHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CredentialsRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not sign up",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SignUp,
			"request_id", requestId)
		return
	}

	user, err := h.journal.SignUp(r.Context(), req.ToMessage())
	if err != nil {
		h.respondDomainError(w, "Could not sign up", err, SignUp, requestId)
		return
	}

	h.respond(w, user, http.StatusCreated, requestId)
}

func (h *JournalHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CredentialsRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not sign in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SignIn,
			"request_id", requestId)
		return
	}

	user, token, err := h.journal.SignIn(r.Context(), req.ToMessage())
	if err != nil {
		h.respondDomainError(w, "Login failed", err, SignIn, requestId)
		return
	}

	resp := map[string]any{
		"user":  user,
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *JournalHandler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.respondNoIdentity(w, ListEntries, requestId)
		return
	}

	entries, err := h.journal.ListEntries(r.Context(), identity.UserID)
	if err != nil {
		h.respondDomainError(w, "Could not retrieve entries", err, ListEntries, requestId)
		return
	}

	h.respond(w, entries, http.StatusOK, requestId)
}

func (h *JournalHandler) HandleGetEntry(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.respondNoIdentity(w, GetEntry, requestId)
		return
	}

	entryID, err := entryIDFromPath(r)
	if err != nil {
		h.respondBadEntryID(w, err, GetEntry, requestId)
		return
	}

	entry, err := h.journal.GetEntry(r.Context(), entryID, identity.UserID)
	if err != nil {
		h.respondDomainError(w, "Could not retrieve entry", err, GetEntry, requestId)
		return
	}

	h.respond(w, entry, http.StatusOK, requestId)
}

func (h *JournalHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.respondNoIdentity(w, CreateEntry, requestId)
		return
	}

	var req payload.EntryRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create entry",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateEntry,
			"request_id", requestId)
		return
	}

	entry, err := h.journal.CreateEntry(r.Context(), identity.UserID, req.ToMessage())
	if err != nil {
		h.respondDomainError(w, "Could not create entry", err, CreateEntry, requestId)
		return
	}

	h.respond(w, entry, http.StatusCreated, requestId)
}

func (h *JournalHandler) HandleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.respondNoIdentity(w, UpdateEntry, requestId)
		return
	}

	entryID, err := entryIDFromPath(r)
	if err != nil {
		h.respondBadEntryID(w, err, UpdateEntry, requestId)
		return
	}

	var req payload.EntryRequest
	err = h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update entry",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateEntry,
			"request_id", requestId)
		return
	}

	entry, err := h.journal.UpdateEntry(r.Context(), entryID, identity.UserID, req.ToMessage())
	if err != nil {
		h.respondDomainError(w, "Could not update entry", err, UpdateEntry, requestId)
		return
	}

	h.respond(w, entry, http.StatusOK, requestId)
}

func (h *JournalHandler) HandleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.respondNoIdentity(w, DeleteEntry, requestId)
		return
	}

	entryID, err := entryIDFromPath(r)
	if err != nil {
		h.respondBadEntryID(w, err, DeleteEntry, requestId)
		return
	}

	entry, err := h.journal.DeleteEntry(r.Context(), entryID, identity.UserID)
	if err != nil {
		h.respondDomainError(w, "Could not delete entry", err, DeleteEntry, requestId)
		return
	}

	h.respond(w, entry, http.StatusOK, requestId)
}

// respondDomainError translates domain sentinels into status codes. Unknown
// errors surface as a generic 500 so internals never leak to the caller.
func (h *JournalHandler) respondDomainError(w http.ResponseWriter, message string, err error, handlerName, requestId string) {
	resp := Response{
		Message: message,
	}

	var httpCode int
	switch {
	case errors.Is(err, core.ErrInvalidEntry):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	case errors.Is(err, core.ErrIncorrectPassword):
		httpCode = http.StatusUnauthorized
		resp.Error = err.Error()
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrEntryNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, core.ErrDuplicateUsername):
		httpCode = http.StatusConflict
		resp.Error = err.Error()
	default:
		httpCode = http.StatusInternalServerError
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *JournalHandler) respondNoIdentity(w http.ResponseWriter, handlerName, requestId string) {
	h.respond(w, Response{
		Message: "Authentication required",
		Error:   "no authenticated identity on request",
	}, http.StatusUnauthorized,
		requestId)
	h.logs.Errorw("missing identity in request context",
		"handler", handlerName,
		"request_id", requestId)
}

func (h *JournalHandler) respondBadEntryID(w http.ResponseWriter, err error, handlerName, requestId string) {
	h.respond(w, Response{
		Message: "Request failed",
		Error:   err.Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("invalid entryId path parameter",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *JournalHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func entryIDFromPath(r *http.Request) (uint, error) {
	raw := r.PathValue("entryId")

	entryID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || entryID == 0 {
		return 0, fmt.Errorf("entryId must be a positive integer, got %q", raw)
	}

	return uint(entryID), nil
}

func requestID(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}
