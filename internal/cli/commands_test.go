package cli

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/dyike/FinAdvisorGo/config"
)

func TestBuildDispatcherRejectsInvalidConfig(t *testing.T) {
	if _, err := buildDispatcher(context.Background(), &config.Config{TrendLookback: "1y"}); err == nil {
		t.Error("expected an error for a config without an API key")
	}

	cfg := &config.Config{OpenAIAPIKey: "sk-test", TrendLookback: "10y"}
	if _, err := buildDispatcher(context.Background(), cfg); err == nil {
		t.Error("expected an error for an invalid lookback window")
	}
}

func TestSetupLoggingGatesDiagnostics(t *testing.T) {
	restoreLogging(t)

	var buf bytes.Buffer
	setupLogging(false, &buf)
	log.Print("hidden diagnostic")
	if buf.Len() != 0 {
		t.Errorf("diagnostics leaked with debug off: %q", buf.String())
	}

	setupLogging(true, &buf)
	log.Print("visible diagnostic")
	if !strings.Contains(buf.String(), "visible diagnostic") {
		t.Errorf("diagnostics missing with debug on: %q", buf.String())
	}
}

// restoreLogging puts the process-wide logger back after tests that call
// setupLogging.
func restoreLogging(t *testing.T) {
	t.Helper()
	out, flags := io.Writer(os.Stderr), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}
