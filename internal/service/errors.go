package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidFlagSecret = errors.New("flag secret must be 1-64 bytes")
	ErrArtifactNotFound  = errors.New("artifact not found")
)
