package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ciphershare/go-cipher-share/internal/app"
	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/internal/utils"
	"github.com/ciphershare/go-cipher-share/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getProfile").Msg("no user ID provided")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProfile").Msg("error getting user profile")
		http.Error(w, "error getting user profile", statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateName").Msg("no user ID provided")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var req models.UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateName").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateName(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateName").Msg("error updating user name")
		http.Error(w, "error updating user name", statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updatePassword").Msg("no user ID provided")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var req models.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updatePassword").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.UpdatePassword(ctx, userID, req); err != nil {
		log.Err(err).Str("func", "*Handler.updatePassword").Msg("error updating user password")
		http.Error(w, "error updating user password", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) savePublicKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.savePublicKey").Msg("no user ID provided")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var req models.SavePublicKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.savePublicKey").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.SavePublicKey(ctx, userID, req); err != nil {
		log.Err(err).Str("func", "*Handler.savePublicKey").Msg("error saving public key")
		http.Error(w, "error saving public key", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.searchUsers").Msg("no user ID provided")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	page, limit, err := parsePagingParams(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchUsers").Msg("invalid paging parameters")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	req := models.SearchUsersRequest{
		Query: r.URL.Query().Get("email"),
		Page:  page,
		Limit: limit,
	}

	response, err := h.services.UserService.SearchUsers(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchUsers").Msg("error searching users")
		http.Error(w, "error searching users", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteAccount").Msg("no user ID provided")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.DeleteAccount(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAccount").Msg("error deleting account")
		http.Error(w, "error deleting account", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parsePagingParams reads the optional "page" and "limit" query parameters.
// Absent parameters are returned as zero; the service layer substitutes
// defaults. A parameter that is present but not an integer is an error.
func parsePagingParams(r *http.Request) (page int, limit int, err error) {
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid page parameter: %w", err)
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid limit parameter: %w", err)
		}
	}

	return page, limit, nil
}
