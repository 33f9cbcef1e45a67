// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cipher implements the three-stage obfuscation cipher used to hide a
// flag inside a delivered puzzle file.
//
// Encryption lowercases the text and then runs, in order:
//
//	columnar transposition → Vigenère-style shift → alphabet substitution
//
// Decryption runs the same stages in reverse. Every stage takes the key on
// each call and keeps no state, so a single [Pipeline] is safe for concurrent
// use with different keys.
//
// This is a puzzle scheme, not encryption in the cryptographic sense.
package cipher

import (
	"fmt"
	"strings"
)

// Pipeline folds text through an ordered list of stages: forward on
// Encrypt, backward on Decrypt.
type Pipeline struct {
	stages []Stage
}

// NewPipeline composes stages in the given encryption order.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// NewDefaultPipeline builds the transposition → Vigenère → substitution
// pipeline. alphabets may be nil.
func NewDefaultPipeline(alphabets AlphabetProvider) *Pipeline {
	return NewPipeline(
		NewColumnarTransposer(),
		NewVigenereStream(),
		NewAlphabetSubstituter(alphabets),
	)
}

// Encrypt implements [Cipher]. The text is lowercased before the first stage.
func (p *Pipeline) Encrypt(text, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("encrypt: %w: key must not be empty", ErrInvalidKey)
	}

	out := strings.ToLower(text)
	for _, stage := range p.stages {
		var err error
		if out, err = stage.Encrypt(out, key); err != nil {
			return "", fmt.Errorf("encrypt: %w", err)
		}
	}
	return out, nil
}

// Decrypt implements [Cipher].
func (p *Pipeline) Decrypt(text, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("decrypt: %w: key must not be empty", ErrInvalidKey)
	}

	out := text
	for i := len(p.stages) - 1; i >= 0; i-- {
		var err error
		if out, err = p.stages[i].Decrypt(out, key); err != nil {
			return "", fmt.Errorf("decrypt: %w", err)
		}
	}
	return out, nil
}

// Stages returns the stage names in encryption order.
func (p *Pipeline) Stages() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name())
	}
	return names
}

var defaultPipeline = NewDefaultPipeline(nil)

// Encrypt runs the default pipeline without alphabet caching.
func Encrypt(text, key string) (string, error) {
	return defaultPipeline.Encrypt(text, key)
}

// Decrypt reverses [Encrypt].
func Decrypt(text, key string) (string, error) {
	return defaultPipeline.Decrypt(text, key)
}
