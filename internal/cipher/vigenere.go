// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

const vigenereStage = "vigenere"

// vigenereStream shifts each letter by the key letter at the same position.
// The key cursor advances on every rune, letters or not.
type vigenereStream struct{}

// NewVigenereStream returns the Vigenère-style [Stage].
func NewVigenereStream() Stage {
	return vigenereStream{}
}

func (vigenereStream) Name() string {
	return vigenereStage
}

// Encrypt computes (c - 'a' + shift) mod 26 for letters and copies everything
// else. ASCII uppercase is folded first, so the output is always lowercase.
func (v vigenereStream) Encrypt(text, key string) (string, error) {
	return v.apply(text, key, 1)
}

// Decrypt computes (c - 'a' - shift + 26) mod 26 for letters. Uppercase is
// folded here too, so Decrypt inverts Encrypt exactly only for text without
// ASCII uppercase; the pipeline lowercases before this stage runs.
func (v vigenereStream) Decrypt(text, key string) (string, error) {
	return v.apply(text, key, -1)
}

func (vigenereStream) apply(text, key string, direction int) (string, error) {
	k, err := normalizeKey(vigenereStage, key)
	if err != nil {
		return "", err
	}

	runes := []rune(text)
	for i, r := range runes {
		if isUpper(r) {
			r += 'a' - 'A'
		}
		if !isLower(r) {
			continue
		}
		shift := direction * shiftOf(k[i%len(k)])
		runes[i] = 'a' + rune(mod(int(r-'a')+shift, alphabetSize))
	}
	return string(runes), nil
}

// shiftOf returns the alphabet position of a key rune (a=0). Runes outside
// a–z still yield a shift in [0, 26).
func shiftOf(r rune) int {
	return mod(int(r-'a'), alphabetSize)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
