// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	// FlagOpen and FlagClose delimit the flag inside the plaintext.
	FlagOpen  = "ENIGMA{"
	FlagClose = "}"

	// Hint is shipped next to the ciphertext as README.txt.
	Hint = "In the art of encryption, not every key is what it seems."

	flagDigestSize = 16
)

// FlagDeriver computes the per-team flag.
//
// The payload is prefix + hex(BLAKE2b-128 keyed by secret over the team ID),
// lowercased. Different teams get different flags and nobody can derive
// another team's flag without the secret.
type FlagDeriver struct {
	secret []byte
	prefix string
}

// NewFlagDeriver returns [ErrInvalidFlagSecret] unless secret is 1-64 bytes.
func NewFlagDeriver(secret, prefix string) (*FlagDeriver, error) {
	if len(secret) == 0 || len(secret) > blake2b.Size {
		return nil, ErrInvalidFlagSecret
	}
	return &FlagDeriver{secret: []byte(secret), prefix: prefix}, nil
}

// Derive returns the full ENIGMA{...} flag for teamID.
func (d *FlagDeriver) Derive(teamID string) string {
	// the key length is checked in NewFlagDeriver, so New cannot fail
	h, _ := blake2b.New(flagDigestSize, d.secret)
	h.Write([]byte(teamID))

	payload := strings.ToLower(d.prefix + hex.EncodeToString(h.Sum(nil)))
	return FlagOpen + payload + FlagClose
}

// RenderPlaintext returns the message hidden in encrypted.txt. The trailing
// space is part of the message and is lost on decryption.
func RenderPlaintext(flag string) string {
	return "WAh, you've found your way here—impressive.\n" +
		"If you're truly here to seek the flag, then your efforts have earned you a reward.\n" +
		fmt.Sprintf("Here is what you came for: %s\n\n", flag) +
		"Enigma is in capital letters, and the flag is enclosed in curly braces. "
}

// ExtractFlag finds the first ENIGMA{...} token in text. Decrypted text is
// lowercase, so the prefix is matched case-insensitively; the returned flag
// always carries the canonical uppercase prefix and the payload as found.
func ExtractFlag(text string) (string, bool) {
	for i := 0; i+len(FlagOpen) <= len(text); i++ {
		if !strings.EqualFold(text[i:i+len(FlagOpen)], FlagOpen) {
			continue
		}

		rest := text[i+len(FlagOpen):]
		end := strings.Index(rest, FlagClose)
		if end < 0 {
			return "", false
		}
		return FlagOpen + rest[:end] + FlagClose, true
	}
	return "", false
}
