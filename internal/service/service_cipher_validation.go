package service

import (
	"context"
	"fmt"

	"github.com/Enigma-IIITS/dev-null/internal/validators"
	"github.com/Enigma-IIITS/dev-null/models"
)

type CipherValidationService struct {
	inner     CipherService
	validator validators.Validator
}

func NewCipherValidationService(validator validators.Validator) CipherServiceWrapper {
	return &CipherValidationService{validator: validator}
}

func (v *CipherValidationService) Encrypt(ctx context.Context, req models.CipherRequest) (string, error) {
	// the key is left to the cipher so that it reports ErrInvalidKey itself
	if err := v.validator.Validate(ctx, req, validators.FieldText); err != nil {
		return "", fmt.Errorf("error during cipher request validation: %w", err)
	}
	return v.inner.Encrypt(ctx, req)
}

func (v *CipherValidationService) Decrypt(ctx context.Context, req models.CipherRequest) (string, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldText); err != nil {
		return "", fmt.Errorf("error during cipher request validation: %w", err)
	}
	return v.inner.Decrypt(ctx, req)
}

func (v *CipherValidationService) Wrap(inner CipherService) CipherService {
	v.inner = inner
	return v
}
