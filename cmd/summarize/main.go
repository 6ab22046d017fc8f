package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"student-dashboard/config"
	"student-dashboard/internal/advisor"
	advisorUC "student-dashboard/internal/advisor/usecase"
	"student-dashboard/pkg/gemini"
	"student-dashboard/pkg/log"
)

// main summarizes lecture notes from a file or stdin and prints the result.
// It uses the same configuration and fallback text as the API.
//
//	summarize -f notes.txt
//	cat notes.txt | summarize
func main() {
	file := flag.String("f", "", "notes file (default: stdin)")
	flag.Parse()

	os.Exit(run(*file, os.Stdin, os.Stdout))
}

// run returns the process exit code so deferred cleanup runs before exit.
func run(file string, stdin io.Reader, stdout io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		return 1
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	content, err := readNotes(file, stdin)
	if err != nil {
		logger.Error(ctx, "Failed to read notes: ", err)
		return 1
	}

	geminiClient, err := gemini.New(gemini.Config{
		APIKey:         cfg.Gemini.APIKey,
		Model:          cfg.Gemini.Model,
		APIURL:         cfg.Gemini.APIURL,
		HTTPClient:     &http.Client{Timeout: cfg.Gemini.Timeout},
		ThinkingBudget: cfg.Gemini.ThinkingBudgetPtr(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return 1
	}

	uc := advisorUC.New(logger, geminiClient, nil, advisorUC.Config{})
	res := uc.Summarize(ctx, content)

	fmt.Fprintln(stdout, res.Display())
	if res.Status == advisor.StatusFailed {
		return 1
	}
	return 0
}

func readNotes(path string, stdin io.Reader) (string, error) {
	if path == "" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
