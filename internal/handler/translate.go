// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package handler

import (
	"log/slog"
	"net/http"

	"github.com/ikowalczyk/cvfolio/internal/translate"
)

// maxTranslateBatch bounds a single translation request.
const maxTranslateBatch = 200

// TranslateHandler serves the translation proxy endpoint.
type TranslateHandler struct {
	service *translate.Service
}

// NewTranslateHandler creates a translate handler.
func NewTranslateHandler(service *translate.Service) *TranslateHandler {
	return &TranslateHandler{service: service}
}

type translateRequest struct {
	Texts      []string `json:"texts"`
	TargetLang string   `json:"target_lang"`
}

type translateResponse struct {
	Lang         string            `json:"lang"`
	Translations map[string]string `json:"translations"`
}

// Translate returns a map from each requested text to its translation.
// Blank texts are left out of the map, so an all-blank or empty batch
// answers 200 with no entries. Unknown target languages fall back to
// English; the response reports the language actually used.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Texts) > maxTranslateBatch {
		WriteBadRequest(w, "too many texts in one request", nil)
		return
	}

	lang := translate.NormalizeTarget(req.TargetLang)
	if len(req.Texts) == 0 {
		WriteSuccess(w, translateResponse{Lang: lang, Translations: map[string]string{}}, nil)
		return
	}
	translations, err := h.service.Translate(r.Context(), req.Texts, lang)
	if err != nil {
		slog.Error("translation failed", "error", err, "lang", lang, "category", "translate")
		WriteError(w, http.StatusBadGateway, "translation_failed", "Translation provider error", nil)
		return
	}

	WriteSuccess(w, translateResponse{Lang: lang, Translations: translations}, nil)
}
