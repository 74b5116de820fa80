package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/gmb"
	"github.com/utafrali/ReviewDeskGo/internal/service"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
	"github.com/utafrali/ReviewDeskGo/pkg/httputil"
	"github.com/utafrali/ReviewDeskGo/pkg/validator"
)

// GMBHandler serves platform integration: OAuth authorization, account
// discovery, review sync, and platform replies. Saved credentials are
// keyed by the operator account this deployment runs under.
type GMBHandler struct {
	sync   *service.SyncService
	creds  *service.CredentialService
	oauth  *oauth2.Config
	userID int64
	logger *slog.Logger
}

func NewGMBHandler(sync *service.SyncService, creds *service.CredentialService, oauth *oauth2.Config, userID int64, l *slog.Logger) *GMBHandler {
	return &GMBHandler{sync: sync, creds: creds, oauth: oauth, userID: userID, logger: l}
}

func (h *GMBHandler) Routes(r chi.Router) {
	r.Get("/auth-url", h.AuthURL)
	r.Get("/callback", h.Callback)
	r.Get("/account", h.Account)
	r.Get("/accounts", h.Accounts)
	r.Get("/locations", h.Locations)
	r.Post("/sync", h.Sync)
}

func (h *GMBHandler) AuthURL(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil || h.oauth.ClientID == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("google oauth is not configured"), h.logger)
		return
	}

	state := uuid.NewString()
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]string{"url": gmb.AuthURL(h.oauth, state), "state": state},
	})
}

func (h *GMBHandler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("missing authorization code"), h.logger)
		return
	}

	token, err := gmb.ExchangeCode(r.Context(), h.oauth, code)
	if err != nil {
		httputil.WriteError(w, r, apperrors.Unavailable("google oauth", err), h.logger)
		return
	}

	if err := h.creds.SaveToken(r.Context(), h.userID, token); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]any{
			"connected": true,
			"tokenType": token.TokenType,
			"expiry":    token.Expiry,
		},
	})
}

// Account returns the platform account saved by the last successful sync.
func (h *GMBHandler) Account(w http.ResponseWriter, r *http.Request) {
	account, err := h.creds.Account(r.Context(), h.userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: account})
}

func (h *GMBHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.sync.ListAccounts(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: accounts})
}

// Locations handles GET /gmb/locations?account=accounts/123. The account
// name is a query parameter because it contains slashes.
func (h *GMBHandler) Locations(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if account == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("missing account parameter"), h.logger)
		return
	}

	locations, err := h.sync.ListLocations(r.Context(), account)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: locations})
}

type syncRequest struct {
	AccountName  string `json:"accountName" validate:"required"`
	LocationName string `json:"locationName" validate:"required"`
}

func (h *GMBHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var input syncRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteValidationError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	result, err := h.sync.SyncLocation(r.Context(), input.AccountName, input.LocationName)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	account := domain.BusinessAccount{AccountID: input.AccountName, LocationName: input.LocationName}
	if err := h.creds.SaveAccount(r.Context(), h.userID, account); err != nil {
		h.logger.WarnContext(r.Context(), "failed to save connected account",
			slog.String("account", input.AccountName), slog.String("error", err.Error()))
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

type replyRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// Reply handles POST /reviews/{id}/reply, publishing the reply on the
// platform before recording it locally.
func (h *GMBHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input replyRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteValidationError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.sync.SubmitReply(r.Context(), id, input.Comment)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: review})
}
