// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the solver application runtime.
//
// It reads a ciphertext file, decrypts it locally or through a cipher
// server, and prints the plaintext together with any flag it contains.
package client
