package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"newsig/internal/app"
	nscfg "newsig/internal/config"
	"newsig/internal/gateway/provider"
	"newsig/internal/logger"
	"newsig/internal/prompt"
	"newsig/internal/recorder"
)

func main() {
	cfgPath := os.Getenv("NEWSIG_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}

	var cfg *nscfg.Config
	if _, err := os.Stat(cfgPath); err == nil {
		loaded, err := nscfg.Load(cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	} else {
		cfg = nscfg.Default()
	}

	logFile, err := setupLogOutput(cfg.App.LogPath)
	if err != nil {
		log.Fatalf("init log file: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.SetLevel(cfg.App.LogLevel)
	if cfg.App.LLMDump {
		f, err := setupLLMLogOutput(cfg.App.LLMLog)
		if err != nil {
			log.Fatalf("init llm log: %v", err)
		}
		if f != nil {
			defer f.Close()
		}
	}

	profiles, err := prompt.NewProfileStore(cfg.Prompt.ProfilePath)
	if err != nil {
		log.Fatalf("load prompt profile: %v", err)
	}

	modelProvider := provider.BuildProviderFromConfig(provider.ModelCfg{
		BaseURL:     cfg.Model.BaseURL,
		APIKey:      cfg.Model.APIKey,
		Model:       cfg.Model.Model,
		Temperature: cfg.Model.Temperature,
		Headers:     cfg.Model.Headers,
	}, time.Duration(cfg.Model.TimeoutSeconds)*time.Second)

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Log.Enabled {
		cr, err := recorder.NewCSVRecorder(cfg.Log.Path)
		if err != nil {
			log.Fatalf("init signal log: %v", err)
		}
		rec = cr
	}
	defer rec.Close()

	pipeline := app.New(prompt.NewBuilder(profiles), modelProvider, rec)

	prof := profiles.Current()
	fmt.Printf("News → Trading Signal (%s)\n", cfg.Model.Model)
	fmt.Printf("Instrument: %s. Horizon: %s.\n", prof.Instrument, prof.Horizon)
	fmt.Println("Type 'quit' to exit.")
	fmt.Println()

	runLoop(pipeline)
}

func runLoop(pipeline *app.App) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter news headline: ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye.")
			return
		}
		headline := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(headline) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye.")
			return
		case "":
			fmt.Println("Please type a non-empty headline.")
			continue
		}

		result, err := pipeline.Process(context.Background(), headline)
		if err != nil {
			// Fatal for this headline only; the operator decides whether to
			// try another one.
			var backend *app.BackendError
			var persist *app.PersistenceError
			switch {
			case errors.As(err, &backend):
				fmt.Printf("Model backend error: %v\n\n", backend.Err)
			case errors.As(err, &persist):
				fmt.Printf("Could not record signal: %v\n\n", persist.Err)
			default:
				fmt.Printf("Error: %v\n\n", err)
			}
			continue
		}
		if result.NoSignal {
			fmt.Println("No valid signal returned. Try another headline.")
			fmt.Println()
			continue
		}
		fmt.Println(result.Report)
	}
}

func setupLogOutput(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}
	dir := filepath.Dir(trimmed)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	mw := io.MultiWriter(os.Stderr, file)
	log.SetOutput(mw)
	logger.SetOutput(mw)
	return file, nil
}

func setupLLMLogOutput(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(trimmed, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	logger.SetLLMWriter(f)
	return f, nil
}
