package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/us-bikeshare/explorer/internal/config"
	"github.com/us-bikeshare/explorer/internal/prompt"
	"github.com/us-bikeshare/explorer/internal/session"
)

func main() {
	// Load base .env first, then .env.local which overrides it
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	cfg := config.Load()
	setupLogging(cfg, os.Stderr)
	log.Printf("Config loaded: data_dir=%s page_size=%d", cfg.DataDir, cfg.PageSize)

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Explorer failed: %v", err)
	}
}

// run explores until the user quits. A closed input ends the dialogue
// without an error.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	err := session.New(cfg, in, out).Run(ctx)
	if errors.Is(err, prompt.ErrInputClosed) {
		log.Println("Input closed, exiting")
		return nil
	}
	return err
}

// setupLogging keeps diagnostics out of the dialogue unless verbose
func setupLogging(cfg *config.Config, w io.Writer) {
	if cfg.Verbose {
		log.SetOutput(w)
		return
	}
	log.SetOutput(io.Discard)
}
