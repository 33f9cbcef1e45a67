package client

import (
	"errors"
	"fmt"
)

// ErrInputNotFound is returned when the ciphertext file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// InputNotFoundError carries the path of the missing ciphertext file.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("encrypted.txt file not found in the location: '%s'", e.Path)
}

func (e *InputNotFoundError) Unwrap() error {
	return ErrInputNotFound
}
