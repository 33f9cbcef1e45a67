package http

import (
	"errors"
	"net/http"

	"github.com/Enigma-IIITS/dev-null/internal/cipher"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/service"
	"github.com/Enigma-IIITS/dev-null/internal/store"
	"github.com/Enigma-IIITS/dev-null/internal/utils"
	"github.com/Enigma-IIITS/dev-null/internal/validators"
)

var errorStatusMap = map[error]int{
	cipher.ErrInvalidKey:          http.StatusBadRequest,
	cipher.ErrMalformedCiphertext: http.StatusBadRequest,

	validators.ErrEmptyKey:        http.StatusBadRequest,
	validators.ErrTextTooLong:     http.StatusRequestEntityTooLarge,
	validators.ErrInvalidUTF8:     http.StatusBadRequest,
	validators.ErrEmptyTeamID:     http.StatusBadRequest,
	validators.ErrInvalidTeamID:   http.StatusBadRequest,
	validators.ErrTeamIDTooLong:   http.StatusBadRequest,
	validators.ErrTeamNotAllowed:  http.StatusForbidden,
	validators.ErrUnsupportedType: http.StatusInternalServerError,
	validators.ErrUnknownField:    http.StatusInternalServerError,

	service.ErrArtifactNotFound:        http.StatusNotFound,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrArtifactNotFound:   http.StatusNotFound,
	store.ErrArchiveNotFound:    http.StatusNotFound,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	ErrMissingTeamID: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Client
// errors carry the error text; server errors only the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	utils.WriteError(w, err.Error(), status)
}
