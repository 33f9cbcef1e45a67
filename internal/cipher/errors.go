// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import "errors"

// Sentinel errors returned by every stage and by [Pipeline]. Callers match
// them with [errors.Is]; the concrete error is always wrapped with the stage
// name and the offending sizes.
var (
	// ErrInvalidKey is returned when the key is empty. Transposition cannot
	// define zero columns, so every stage rejects it up front.
	ErrInvalidKey = errors.New("invalid cipher key")

	// ErrMalformedCiphertext is returned by the transposition stage when the
	// ciphertext length is not a multiple of the key length. It signals a
	// truncated, corrupted, or mismatched-key input.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)
