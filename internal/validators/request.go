package validators

import (
	"context"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/Enigma-IIITS/dev-null/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldText targets the text of a cipher request.
	FieldText = "text"

	// FieldKey targets the key of a cipher request.
	FieldKey = "key"

	// FieldTeamID targets the team of an artifact request.
	FieldTeamID = "team_id"
)

const (
	// MaxTextLength bounds cipher request text, in bytes.
	MaxTextLength = 1 << 20

	// MaxTeamIDLength bounds team IDs, which become folder names.
	MaxTeamIDLength = 64
)

// RequestValidator validates [models.CipherRequest] and
// [models.ArtifactRequest] values.
type RequestValidator struct {
	allowedTeams []string
}

// NewRequestValidator returns a [Validator]. A non-empty allowedTeams list
// restricts which team IDs are accepted.
func NewRequestValidator(allowedTeams []string) Validator {
	return &RequestValidator{allowedTeams: slices.Clone(allowedTeams)}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CipherRequest:
		return v.validateCipherRequest(value, fields...)
	case *models.CipherRequest:
		return v.validateCipherRequest(*value, fields...)

	case models.ArtifactRequest:
		return v.validateArtifactRequest(value, fields...)
	case *models.ArtifactRequest:
		return v.validateArtifactRequest(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateCipherRequest(req models.CipherRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldKey}
	}

	for _, field := range fields {
		switch field {
		case FieldText:
			if len(req.Text) > MaxTextLength {
				return fmt.Errorf("%w: %d bytes, limit %d", ErrTextTooLong, len(req.Text), MaxTextLength)
			}
			if !utf8.ValidString(req.Text) {
				return ErrInvalidUTF8
			}
		case FieldKey:
			if req.Key == "" {
				return ErrEmptyKey
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateArtifactRequest(req models.ArtifactRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTeamID}
	}

	for _, field := range fields {
		if field != FieldTeamID {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := v.validateTeamID(req.TeamID); err != nil {
			return err
		}
	}
	return nil
}

func (v *RequestValidator) validateTeamID(teamID string) error {
	if teamID == "" {
		return ErrEmptyTeamID
	}
	if len(teamID) > MaxTeamIDLength {
		return ErrTeamIDTooLong
	}
	for _, r := range teamID {
		if !isTeamIDRune(r) {
			return fmt.Errorf("%w: %q", ErrInvalidTeamID, teamID)
		}
	}
	if len(v.allowedTeams) > 0 && !slices.Contains(v.allowedTeams, teamID) {
		return fmt.Errorf("%w: %s", ErrTeamNotAllowed, teamID)
	}
	return nil
}

func isTeamIDRune(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '-' || r == '_'
}
