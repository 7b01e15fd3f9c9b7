package generate

import (
	"context"

	"therapy-insights-be/internal/entity"
	"therapy-insights-be/internal/pkg/logger"
	"therapy-insights-be/pkg/insight/prompt"
	"therapy-insights-be/pkg/llm"
)

const (
	// MockModel tags every offline generation.
	MockModel = "mock-v1"

	// Moderate, fixed. Generation is not a creative task but the analysis
	// benefits from some variation in phrasing.
	temperature = 0.7
)

// Config is the generation surface of the application configuration, injected
// once at construction. An empty APIKey selects mock mode.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// Result is the single shape both generation paths produce. Err carries the
// failure description when generation could not complete; no error value ever
// crosses this boundary.
type Result struct {
	Text       string
	Mode       entity.GenerationMode
	Model      string
	TokensUsed int
	Err        string
}

// Dispatcher selects the live or mock generation path.
type Dispatcher struct {
	provider  llm.LLMProvider
	mock      *MockGenerator
	model     string
	maxTokens int
	mockMode  bool
	logger    logger.ILogger
}

// NewDispatcher wires the generation paths. provider may be nil when no
// credential is configured; it is only touched in real mode.
func NewDispatcher(cfg Config, provider llm.LLMProvider, log logger.ILogger) *Dispatcher {
	return &Dispatcher{
		provider:  provider,
		mock:      NewMockGenerator(),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		mockMode:  cfg.APIKey == "",
		logger:    log,
	}
}

// Mode reports which path Generate will take.
func (d *Dispatcher) Mode() entity.GenerationMode {
	if d.mockMode {
		return entity.GenerationModeMock
	}
	return entity.GenerationModeReal
}

// Generate runs exactly one generation. The aggregate is only consumed by the
// mock path, which grounds its synthetic output in the real session dates.
func (d *Dispatcher) Generate(ctx context.Context, req *prompt.Request, agg *entity.AggregatedSessions) *Result {
	if d.mockMode {
		return d.mock.Generate(agg)
	}

	completion, err := d.provider.Chat(ctx,
		[]llm.Message{
			{Role: llm.RoleSystem, Content: req.System},
			{Role: llm.RoleUser, Content: req.User},
		},
		llm.WithModel(d.model),
		llm.WithTemperature(temperature),
		llm.WithMaxTokens(d.maxTokens),
	)
	if err != nil {
		d.logger.Warn("generate", "live generation failed", map[string]interface{}{
			"patientId": agg.PatientId.String(),
			"model":     d.model,
			"error":     err.Error(),
		})
		return &Result{
			Mode:  entity.GenerationModeReal,
			Model: d.model,
			Err:   err.Error(),
		}
	}

	model := completion.Model
	if model == "" {
		model = d.model
	}

	return &Result{
		Text:       completion.Content,
		Mode:       entity.GenerationModeReal,
		Model:      model,
		TokensUsed: completion.TotalTokens,
	}
}
