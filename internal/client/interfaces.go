// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/Enigma-IIITS/dev-null/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the application and returns when it is done.
	Run(ctx context.Context) error
}

// Decrypter is satisfied by both the local cipher service and the remote
// cipher adapter.
type Decrypter interface {
	Decrypt(ctx context.Context, req models.CipherRequest) (string, error)
}

// PathPrompter asks the user for the ciphertext path.
type PathPrompter func(defaultPath string) (string, error)

// ClipboardWriter copies text to the system clipboard.
type ClipboardWriter func(text string) error
