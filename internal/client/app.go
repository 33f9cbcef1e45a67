package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/Enigma-IIITS/dev-null/internal/adapter"
	"github.com/Enigma-IIITS/dev-null/internal/cipher"
	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/service"
	"github.com/Enigma-IIITS/dev-null/internal/tui"
	"github.com/Enigma-IIITS/dev-null/models"
)

// App is the solver: one file in, one decryption out.
type App struct {
	cfg config.SolverConfig

	decrypter Decrypter
	prompt    PathPrompter
	clipboard ClipboardWriter

	out io.Writer

	logger *logger.Logger
}

// Option customises an [App].
type Option func(*App)

// WithPrompt sets the prompt used when the configuration asks for one.
func WithPrompt(p PathPrompter) Option {
	return func(a *App) { a.prompt = p }
}

// WithClipboard sets the clipboard used by the copy option.
func WithClipboard(c ClipboardWriter) Option {
	return func(a *App) { a.clipboard = c }
}

// WithOutput redirects the printed result, os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// NewApp builds the solver around decrypter.
func NewApp(cfg config.SolverConfig, decrypter Decrypter, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		cfg:       cfg,
		decrypter: decrypter,
		out:       os.Stdout,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run reads the ciphertext, decrypts it and prints the result. A missing
// file yields an [*InputNotFoundError].
func (a *App) Run(ctx context.Context) error {
	path, err := a.inputPath()
	if err != nil {
		return err
	}

	ciphertext, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &InputNotFoundError{Path: path}
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	a.logger.Debug().Str("path", path).Int("bytes", len(ciphertext)).Bool("remote", a.cfg.Solver.Remote).Msg("decrypting")

	plaintext, err := a.decrypt(ctx, string(ciphertext))
	if err != nil {
		return fmt.Errorf("error decrypting %s: %w", path, err)
	}

	result := tui.Result{Plaintext: plaintext}
	if flag, ok := service.ExtractFlag(plaintext); ok {
		result.Flag = flag
		result.Copied = a.copyFlag(flag)
	}

	_, err = io.WriteString(a.out, tui.RenderResult(result))
	return err
}

// decrypt sends the file content untouched. A trailing line ending can be
// part of the ciphertext, so one is only dropped when the content as read
// has the wrong length for the key.
func (a *App) decrypt(ctx context.Context, text string) (string, error) {
	plaintext, err := a.decrypter.Decrypt(ctx, models.CipherRequest{Text: text, Key: a.cfg.Cipher.Key})
	if !isMalformed(err) {
		return plaintext, err
	}

	trimmed, ok := trimLineEnding(text)
	if !ok {
		return "", err
	}

	a.logger.Debug().Msg("retrying without the trailing line ending")
	return a.decrypter.Decrypt(ctx, models.CipherRequest{Text: trimmed, Key: a.cfg.Cipher.Key})
}

// isMalformed reports a length mismatch, either from the local cipher or as
// the server's 400 answer.
func isMalformed(err error) bool {
	return errors.Is(err, cipher.ErrMalformedCiphertext) || errors.Is(err, adapter.ErrBadRequest)
}

// trimLineEnding removes one trailing "\n" or "\r\n".
func trimLineEnding(s string) (string, bool) {
	if t, ok := strings.CutSuffix(s, "\r\n"); ok {
		return t, true
	}
	return strings.CutSuffix(s, "\n")
}

func (a *App) inputPath() (string, error) {
	path := a.cfg.Solver.InputFile
	if path == "" {
		path = config.DefaultInputFile
	}

	if !a.cfg.Solver.Prompt || a.prompt == nil {
		return path, nil
	}
	return a.prompt(path)
}

// copyFlag reports whether the flag reached the clipboard. Failures are
// logged and otherwise ignored.
func (a *App) copyFlag(flag string) bool {
	if !a.cfg.Solver.CopyToClipboard || a.clipboard == nil {
		return false
	}
	if err := a.clipboard(flag); err != nil {
		a.logger.Warn().Err(err).Msg("could not copy the flag to the clipboard")
		return false
	}
	return true
}
