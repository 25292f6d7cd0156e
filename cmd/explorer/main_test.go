package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/us-bikeshare/explorer/internal/config"
	"github.com/us-bikeshare/explorer/internal/testutil"
)

func TestRun_InputClosedIsClean(t *testing.T) {
	cfg := &config.Config{DataDir: testutil.WriteCityFiles(t), PageSize: config.DefaultPageSize}

	var out bytes.Buffer
	err := run(context.Background(), cfg, strings.NewReader("chicago\nnot\n"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Calculating User Stats...")
}

func TestRun_LoadErrorIsReturned(t *testing.T) {
	cfg := &config.Config{DataDir: t.TempDir(), PageSize: config.DefaultPageSize}

	var out bytes.Buffer
	err := run(context.Background(), cfg, strings.NewReader("washington\nnot\n"), &out)

	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	var buf bytes.Buffer
	setupLogging(&config.Config{Verbose: false}, &buf)
	log.Print("hidden")
	assert.Empty(t, buf.String())

	setupLogging(&config.Config{Verbose: true}, &buf)
	log.Print("shown")
	assert.Contains(t, buf.String(), "shown")
}
