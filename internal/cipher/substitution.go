package cipher

import "strings"

const substitutionStage = "substitution"

// alphabetSubstituter remaps letters through the key-derived [Alphabet].
type alphabetSubstituter struct {
	alphabets AlphabetProvider
}

// NewAlphabetSubstituter returns the monoalphabetic substitution [Stage].
// A nil provider derives the alphabet on every call.
func NewAlphabetSubstituter(alphabets AlphabetProvider) Stage {
	if alphabets == nil {
		alphabets = DerivingProvider{}
	}
	return &alphabetSubstituter{alphabets: alphabets}
}

func (s *alphabetSubstituter) Name() string {
	return substitutionStage
}

func (s *alphabetSubstituter) Encrypt(text, key string) (string, error) {
	if _, err := normalizeKey(substitutionStage, key); err != nil {
		return "", err
	}
	return strings.Map(s.alphabets.Alphabet(key).Substitute, text), nil
}

func (s *alphabetSubstituter) Decrypt(text, key string) (string, error) {
	if _, err := normalizeKey(substitutionStage, key); err != nil {
		return "", err
	}
	return strings.Map(s.alphabets.Alphabet(key).Restore, text), nil
}
