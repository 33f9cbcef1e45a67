// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Artifact describes the puzzle archive generated for one team.
//
// The archive at Location holds the encrypted.txt ciphertext; Flag is the
// plaintext token hidden inside it and is never sent to teams.
type Artifact struct {
	// ArtifactID is a UUIDv7 assigned at generation time.
	ArtifactID string `json:"artifact_id"`

	// TeamID identifies the team the artifact belongs to. Unique per store.
	TeamID string `json:"team_id"`

	// Location is the filesystem path of the zip archive.
	Location string `json:"location"`

	// Flag is the full ENIGMA{...} token embedded in the plaintext.
	Flag string `json:"-"`

	// CreatedAt is the moment the artifact was first generated.
	CreatedAt time.Time `json:"created_at"`
}

// ArtifactRequest names the team an artifact is requested for.
type ArtifactRequest struct {
	TeamID string `json:"team_id"`
}
