package app

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"newsig/internal/gateway/provider"
	"newsig/internal/logger"
	"newsig/internal/prompt"
	"newsig/internal/recorder"
	"newsig/internal/signal"
)

// App runs the full pipeline for one headline at a time: prompt, model call,
// validation, then interpretation and recording. Strictly sequential; the
// model call is the only blocking step.
type App struct {
	prompts   *prompt.Builder
	provider  provider.ModelProvider
	validator *signal.Validator
	recorder  recorder.Recorder
}

func New(prompts *prompt.Builder, p provider.ModelProvider, rec recorder.Recorder) *App {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &App{
		prompts:   prompts,
		provider:  p,
		validator: signal.NewValidator(),
		recorder:  rec,
	}
}

// Result is the outcome of one headline. NoSignal marks the recoverable
// cases: diagnostics are already logged and no row was recorded.
type Result struct {
	RequestID string
	NoSignal  bool
	Signal    signal.Signal
	Report    string
}

func (a *App) Process(ctx context.Context, headline string) (Result, error) {
	headline = strings.TrimSpace(headline)
	if headline == "" {
		return Result{}, errors.New("headline cannot be empty")
	}
	id := uuid.NewString()[:8]

	userPrompt := a.prompts.Build(headline)
	logger.LogLLMRequest(a.provider.ID(), id, userPrompt)

	raw, err := a.provider.Generate(ctx, userPrompt)
	if err != nil {
		return Result{RequestID: id}, &BackendError{Provider: a.provider.ID(), Err: err}
	}
	logger.LogLLMResponse(a.provider.ID(), id, raw)

	sig, err := a.validator.Validate(raw)
	if err != nil {
		var malformed *signal.MalformedResponseError
		var incomplete *signal.IncompleteSignalError
		switch {
		case errors.As(err, &malformed):
			logger.Warnf("[%s] model did not return valid JSON, raw response:\n%s", id, malformed.Raw)
		case errors.As(err, &incomplete):
			logger.Warnf("[%s] %v, got:\n%s", id, incomplete, incomplete.Record)
		default:
			logger.Warnf("[%s] validate signal: %v", id, err)
		}
		return Result{RequestID: id, NoSignal: true}, nil
	}

	if err := a.recorder.Append(headline, sig); err != nil {
		return Result{RequestID: id}, &PersistenceError{Err: err}
	}

	return Result{
		RequestID: id,
		Signal:    sig,
		Report:    signal.Render(sig),
	}, nil
}
