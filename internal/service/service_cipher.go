package service

import (
	"context"
	"fmt"

	"github.com/Enigma-IIITS/dev-null/internal/cipher"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/models"
)

type cipherService struct {
	cipher cipher.Cipher

	logger *logger.Logger
}

// NewCipherService exposes c over [CipherService].
func NewCipherService(c cipher.Cipher, logger *logger.Logger) CipherService {
	return &cipherService{
		cipher: c,
		logger: logger,
	}
}

func (s *cipherService) Encrypt(ctx context.Context, req models.CipherRequest) (string, error) {
	out, err := s.cipher.Encrypt(req.Text, req.Key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("text_len", len(req.Text)).Msg("encryption failed")
		return "", fmt.Errorf("cipher service: %w", err)
	}
	return out, nil
}

func (s *cipherService) Decrypt(ctx context.Context, req models.CipherRequest) (string, error) {
	out, err := s.cipher.Decrypt(req.Text, req.Key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("text_len", len(req.Text)).Msg("decryption failed")
		return "", fmt.Errorf("cipher service: %w", err)
	}
	return out, nil
}
