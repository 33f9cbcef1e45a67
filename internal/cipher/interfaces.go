package cipher

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher is the two-call surface consumed by artifact generation and by the
// solver. Every call takes the key explicitly; implementations hold no
// per-key state between calls.
type Cipher interface {
	// Encrypt obfuscates text with key.
	Encrypt(text, key string) (string, error)

	// Decrypt reverses Encrypt. The recovered text is lowercase and has its
	// trailing whitespace removed.
	Decrypt(text, key string) (string, error)
}

// Stage is one reversible keyed transform of the pipeline.
type Stage interface {
	// Name identifies the stage in wrapped errors and logs.
	Name() string

	// Encrypt applies the forward transform.
	Encrypt(text, key string) (string, error)

	// Decrypt applies the inverse transform.
	Decrypt(text, key string) (string, error)
}

// AlphabetProvider returns the substitution alphabet for a key.
// [AlphabetCache] memoizes; [DerivingProvider] recomputes on every call.
type AlphabetProvider interface {
	Alphabet(key string) Alphabet
}
