package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"

	"github.com/Enigma-IIITS/dev-null/internal/adapter"
	"github.com/Enigma-IIITS/dev-null/internal/cipher"
	"github.com/Enigma-IIITS/dev-null/internal/client"
	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/service"
	"github.com/Enigma-IIITS/dev-null/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetSolverConfig()
	if err != nil {
		return err
	}

	// Solver output goes to stdout; logs stay quiet unless asked for.
	level := cfg.App.LogLevel
	if level == "" {
		level = "warn"
	}
	log, err := logger.NewConsoleLogger("cipher-chase-solver", os.Stderr).WithLevel(level)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var decrypter client.Decrypter
	if cfg.Solver.Remote {
		decrypter, err = adapter.NewHTTPCipherAdapter(cfg.Adapter, log)
		if err != nil {
			return err
		}
	} else {
		decrypter = service.NewCipherService(cipher.NewDefaultPipeline(nil), log)
	}

	app := client.NewApp(*cfg, decrypter, log,
		client.WithPrompt(func(def string) (string, error) {
			return tui.PromptPath(def, os.Stdin, os.Stdout)
		}),
		client.WithClipboard(clipboard.WriteAll),
	)

	return app.Run(ctx)
}
