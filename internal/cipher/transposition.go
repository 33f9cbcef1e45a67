// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

const (
	transpositionStage = "columnar transposition"
	padRune            = ' '
)

// columnarTransposer writes text row by row into len(key) columns and reads
// the columns back in key order.
type columnarTransposer struct{}

// NewColumnarTransposer returns the columnar transposition [Stage].
func NewColumnarTransposer() Stage {
	return columnarTransposer{}
}

func (columnarTransposer) Name() string {
	return transpositionStage
}

// Encrypt right-pads text with spaces to a multiple of the key length, then
// emits column after column in read order.
func (columnarTransposer) Encrypt(text, key string) (string, error) {
	k, err := normalizeKey(transpositionStage, key)
	if err != nil {
		return "", err
	}

	runes := []rune(text)
	cols := len(k)
	rows := (len(runes) + cols - 1) / cols

	padded := make([]rune, rows*cols)
	n := copy(padded, runes)
	for i := n; i < len(padded); i++ {
		padded[i] = padRune
	}

	out := make([]rune, 0, len(padded))
	for _, col := range columnOrder(k) {
		for row := 0; row < rows; row++ {
			out = append(out, padded[row*cols+col])
		}
	}
	return string(out), nil
}

// Decrypt puts each chunk back into its column and reads row-major. Trailing
// whitespace is stripped afterwards, which also drops any trailing spaces that
// belonged to the original plaintext.
func (columnarTransposer) Decrypt(text, key string) (string, error) {
	k, err := normalizeKey(transpositionStage, key)
	if err != nil {
		return "", err
	}

	runes := []rune(text)
	cols := len(k)
	if len(runes)%cols != 0 {
		return "", fmt.Errorf("%s: %w: length %d is not a multiple of key length %d",
			transpositionStage, ErrMalformedCiphertext, len(runes), cols)
	}
	rows := len(runes) / cols

	plain := make([]rune, len(runes))
	for chunk, col := range columnOrder(k) {
		for row, r := range runes[chunk*rows : (chunk+1)*rows] {
			plain[row*cols+col] = r
		}
	}
	return strings.TrimRightFunc(string(plain), unicode.IsSpace), nil
}

// columnOrder sorts column indices by their key rune. The sort is stable so
// repeated key runes keep their original column order.
func columnOrder(key []rune) []int {
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(key[a], key[b])
	})
	return order
}
