// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the cipher server's REST API.
//
// [CipherAdapter] decouples the solver from the transport. Error values in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrBadRequest] for a rejected key).
package adapter

import (
	"context"

	"github.com/Enigma-IIITS/dev-null/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CipherAdapter talks to a remote cipher server.
type CipherAdapter interface {
	// Version returns the server build information from GET /api/version.
	Version(ctx context.Context) (models.AppInfo, error)

	// Encrypt sends req to POST /api/cipher/encrypt and returns the
	// ciphertext.
	Encrypt(ctx context.Context, req models.CipherRequest) (string, error)

	// Decrypt sends req to POST /api/cipher/decrypt and returns the
	// plaintext. A ciphertext whose length does not fit the key comes back
	// as [ErrBadRequest].
	Decrypt(ctx context.Context, req models.CipherRequest) (string, error)
}
