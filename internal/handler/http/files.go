// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ciphershare/go-cipher-share/internal/app"
	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/internal/service"
	"github.com/ciphershare/go-cipher-share/internal/store"
	"github.com/ciphershare/go-cipher-share/internal/utils"
	"github.com/ciphershare/go-cipher-share/models"
)

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.uploadFile").Msg("no user ID provided")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var req models.UploadFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.uploadFile").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.FileService.Upload(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrRecipientNotFound):
			log.Err(err).Msg("recipient user not found")
			http.Error(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during file upload")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) getSharedFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getSharedFile").Msg("no user ID provided")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var req models.SharedFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.getSharedFile").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.FileService.GetShared(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongLinkPassword):
			log.Err(err).Msg("wrong link password")
			http.Error(w, app.MsgWrongLinkPassword, http.StatusUnauthorized)
			return
		case errors.Is(err, store.ErrSharedLinkNotFound):
			log.Err(err).Msg("shared link not found")
			http.Error(w, app.MsgSharedLinkNotFound, http.StatusNotFound)
			return
		case errors.Is(err, store.ErrFileNotFound):
			log.Err(err).Msg("file not found")
			http.Error(w, app.MsgFileNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during shared file retrieval")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) sentFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.sentFiles").Msg("no user ID provided")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	page, limit, err := parsePagingParams(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sentFiles").Msg("invalid paging parameters")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	response, err := h.services.FileService.SentFiles(ctx, userID, models.ListRequest{Page: page, Limit: limit})
	if err != nil {
		log.Err(err).Str("func", "*Handler.sentFiles").Msg("error listing sent files")
		http.Error(w, "error listing sent files", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) receivedFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.receivedFiles").Msg("no user ID provided")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	page, limit, err := parsePagingParams(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.receivedFiles").Msg("invalid paging parameters")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	response, err := h.services.FileService.ReceivedFiles(ctx, userID, models.ListRequest{Page: page, Limit: limit})
	if err != nil {
		log.Err(err).Str("func", "*Handler.receivedFiles").Msg("error listing received files")
		http.Error(w, "error listing received files", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
