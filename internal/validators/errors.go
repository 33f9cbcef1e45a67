package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyKey       = errors.New("key is required")
	ErrTextTooLong    = errors.New("text is too long")
	ErrInvalidUTF8    = errors.New("text is not valid UTF-8")
	ErrEmptyTeamID    = errors.New("team ID is required")
	ErrInvalidTeamID  = errors.New("team ID may contain only letters, digits, '-' and '_'")
	ErrTeamIDTooLong  = errors.New("team ID is too long")
	ErrTeamNotAllowed = errors.New("team is not in the allowed list")
)
