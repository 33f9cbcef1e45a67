// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

const alphabetSize = 26

// Alphabet is a bijective mapping of the 26 lowercase ASCII letters onto
// themselves. The zero value is not usable; obtain one via [DeriveAlphabet].
type Alphabet struct {
	forward [alphabetSize]rune
	inverse [alphabetSize]rune
}

// DeriveAlphabet builds the substitution alphabet for key.
//
// The key's letters are taken in order of first occurrence (case-folded,
// duplicates and non-letters dropped), followed by the rest of a–z in
// ascending order. Letter i of the plain alphabet maps to element i of that
// sequence. A key without letters yields the identity mapping.
func DeriveAlphabet(key string) Alphabet {
	var (
		a    Alphabet
		used [alphabetSize]bool
		n    int
	)

	for _, r := range strings.ToLower(key) {
		if !isLower(r) || used[r-'a'] {
			continue
		}
		used[r-'a'] = true
		a.forward[n] = r
		n++
	}
	for r := 'a'; r <= 'z'; r++ {
		if used[r-'a'] {
			continue
		}
		a.forward[n] = r
		n++
	}

	for i, r := range a.forward {
		a.inverse[r-'a'] = 'a' + rune(i)
	}
	return a
}

// Substitute maps a lowercase letter through the alphabet. Any other rune is
// returned unchanged.
func (a Alphabet) Substitute(r rune) rune {
	if !isLower(r) {
		return r
	}
	return a.forward[r-'a']
}

// Restore is the inverse of [Alphabet.Substitute].
func (a Alphabet) Restore(r rune) rune {
	if !isLower(r) {
		return r
	}
	return a.inverse[r-'a']
}

// String returns the substituted ordering, i.e. the images of a..z.
func (a Alphabet) String() string {
	return string(a.forward[:])
}

// DerivingProvider is an [AlphabetProvider] without memoization.
type DerivingProvider struct{}

// Alphabet implements [AlphabetProvider].
func (DerivingProvider) Alphabet(key string) Alphabet {
	return DeriveAlphabet(key)
}

// AlphabetCache memoizes derived alphabets by case-folded key in a bounded
// LRU. It is safe for concurrent use. Lookups never fail: a miss derives the
// alphabet and stores it.
type AlphabetCache struct {
	cache *lru.Cache
}

// NewAlphabetCache creates a cache holding at most size alphabets.
func NewAlphabetCache(size int) (*AlphabetCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create alphabet cache: %w", err)
	}
	return &AlphabetCache{cache: c}, nil
}

// Alphabet implements [AlphabetProvider].
func (c *AlphabetCache) Alphabet(key string) Alphabet {
	folded := strings.ToLower(key)
	if v, ok := c.cache.Get(folded); ok {
		return v.(Alphabet)
	}

	a := DeriveAlphabet(folded)
	c.cache.Add(folded, a)
	return a
}

// Len reports how many alphabets are currently cached.
func (c *AlphabetCache) Len() int {
	return c.cache.Len()
}
