package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/models"
)

type httpCipherAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPCipherAdapter constructs an HTTP/REST implementation of
// [CipherAdapter]. The base URL comes from cfg.HTTPAddress; a missing scheme
// defaults to http.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPCipherAdapter(cfg config.Adapter, logger *logger.Logger) (CipherAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpCipherAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Version implements [CipherAdapter].
func (h *httpCipherAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

// Encrypt implements [CipherAdapter].
func (h *httpCipherAdapter) Encrypt(ctx context.Context, req models.CipherRequest) (string, error) {
	return h.cipherCall(ctx, "/api/cipher/encrypt", req)
}

// Decrypt implements [CipherAdapter].
func (h *httpCipherAdapter) Decrypt(ctx context.Context, req models.CipherRequest) (string, error) {
	return h.cipherCall(ctx, "/api/cipher/decrypt", req)
}

func (h *httpCipherAdapter) cipherCall(ctx context.Context, path string, req models.CipherRequest) (string, error) {
	var result models.CipherResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("cipher call rejected")
		return "", err
	}

	return result.Text, nil
}
