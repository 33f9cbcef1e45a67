// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/models"
)

func newTestAdapter(t *testing.T, serverURL string) CipherAdapter {
	t.Helper()

	a, err := NewHTTPCipherAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://cipher.example.com/", want: "https://cipher.example.com"},
		{name: "surrounding spaces", raw: "  127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPCipherAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPCipherAdapter(config.Adapter{}, logger.Nop())

	assert.Error(t, err)
	assert.Nil(t, a)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"1.0.0","build_date":"N/A","build_commit":"abc"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.AppInfo{Version: "1.0.0", BuildDate: "N/A", BuildCommit: "abc"}, got)
}

// ── Encrypt / Decrypt ───────────────────────────────────────────────────────

func TestCipherCalls_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req models.CipherRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "enigma", req.Key)

		out := strings.ToUpper(req.Text)
		if r.URL.Path == "/api/cipher/decrypt" {
			out = strings.ToLower(req.Text)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CipherResponse{Text: out})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	enc, err := a.Encrypt(context.Background(), models.CipherRequest{Text: "abc", Key: "enigma"})
	require.NoError(t, err)
	assert.Equal(t, "ABC", enc)

	dec, err := a.Decrypt(context.Background(), models.CipherRequest{Text: "XYZ", Key: "enigma"})
	require.NoError(t, err)
	assert.Equal(t, "xyz", dec)
}

func TestCipherCalls_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"malformed ciphertext"}`, wantErr: ErrBadRequest, wantMsg: "malformed ciphertext"},
		{name: "too large", status: http.StatusRequestEntityTooLarge, body: `{"error":"request body too large"}`, wantErr: ErrPayloadTooLarge},
		{name: "internal", status: http.StatusInternalServerError, body: "oops", wantErr: ErrInternalServerError, wantMsg: "oops"},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Decrypt(context.Background(), models.CipherRequest{Text: "ab", Key: "abc"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCipherCalls_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), models.CipherRequest{Text: "a", Key: "k"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestCipherCalls_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Encrypt(context.Background(), models.CipherRequest{Text: "a", Key: "k"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "/api/cipher/encrypt request")
}
