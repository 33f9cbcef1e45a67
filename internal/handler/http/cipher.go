package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/utils"
	"github.com/Enigma-IIITS/dev-null/internal/validators"
	"github.com/Enigma-IIITS/dev-null/models"
)

// maxCipherBodyBytes leaves room for JSON escaping around a maximal text.
const maxCipherBodyBytes = 8 * validators.MaxTextLength

type cipherOperation func(ctx context.Context, req models.CipherRequest) (string, error)

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	h.serveCipher(w, r, "encryption failed", h.services.CipherService.Encrypt)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	h.serveCipher(w, r, "decryption failed", h.services.CipherService.Decrypt)
}

func (h *Handler) serveCipher(w http.ResponseWriter, r *http.Request, failure string, op cipherOperation) {
	log := logger.FromRequest(r)

	var req models.CipherRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCipherBodyBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Err(err).Msg("request body too large")
			utils.WriteError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	out, err := op(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, failure)
		return
	}

	utils.WriteJSON(w, models.CipherResponse{Text: out}, http.StatusOK)
}
