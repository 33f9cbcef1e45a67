package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/utils"
	"github.com/Enigma-IIITS/dev-null/models"
)

// artifactResponse is what the platform sees of an artifact. The flag is
// included so submissions can be checked; the server-side path is not.
type artifactResponse struct {
	ArtifactID string    `json:"artifact_id"`
	TeamID     string    `json:"team_id"`
	Flag       string    `json:"flag"`
	ArchiveURL string    `json:"archive_url"`
	CreatedAt  time.Time `json:"created_at"`
}

func newArtifactResponse(a models.Artifact) artifactResponse {
	return artifactResponse{
		ArtifactID: a.ArtifactID,
		TeamID:     a.TeamID,
		Flag:       a.Flag,
		ArchiveURL: fmt.Sprintf("/api/artifacts/%s/archive", a.TeamID),
		CreatedAt:  a.CreatedAt,
	}
}

func (h *Handler) generateArtifact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		writeServiceError(w, r, ErrMissingTeamID, "artifact generation failed")
		return
	}

	artifact, err := h.services.ArtifactService.Generate(ctx, teamID)
	if err != nil {
		writeServiceError(w, r, err, "artifact generation failed")
		return
	}

	subject, _ := utils.GetSubjectFromContext(ctx)
	logger.FromRequest(r).Info().
		Str("subject", subject).
		Str("team_id", teamID).
		Str("artifact_id", artifact.ArtifactID).
		Msg("artifact issued")

	utils.WriteJSON(w, newArtifactResponse(artifact), http.StatusOK)
}

func (h *Handler) downloadArchive(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	artifact, archive, err := h.services.ArtifactService.Archive(r.Context(), teamID)
	if err != nil {
		writeServiceError(w, r, err, "archive download failed")
		return
	}
	defer archive.Close()

	name := filepath.Base(artifact.Location)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	// regeneration keeps CreatedAt, so it cannot serve as a modification time
	http.ServeContent(w, r, name, time.Time{}, archive)
}

func (h *Handler) listArtifacts(w http.ResponseWriter, r *http.Request) {
	artifacts, err := h.services.ArtifactService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "artifact listing failed")
		return
	}

	response := make([]artifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		response = append(response, newArtifactResponse(a))
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
