package core

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/chronoscribe/chronoscribe/config"
	"github.com/chronoscribe/chronoscribe/internal/agent/telemetry"
	"github.com/chronoscribe/chronoscribe/internal/agent/tools"
	"github.com/chronoscribe/chronoscribe/provider"
)

// Agent plans, calls tools, and returns structured scenario documents.
// It holds no per-request state: one instance serves concurrent
// requests, each driving its own conversation to completion.
type Agent struct {
	name         string
	currentYear  int
	toolsEnabled bool
	maxRounds    int

	llm        provider.Provider
	dispatcher *tools.Dispatcher
	telemetry  *telemetry.Telemetry
	logger     *log.Logger
}

// NewAgent constructs an agent from explicit collaborators.
func NewAgent(cfg *config.Config, llm provider.Provider, dispatcher *tools.Dispatcher, tele *telemetry.Telemetry, logger *log.Logger) *Agent {
	if logger == nil {
		logger = log.New(log.Writer(), "[AGENT] ", log.LstdFlags)
	}
	return &Agent{
		name:         cfg.Agent.Name,
		currentYear:  cfg.Agent.Year(),
		toolsEnabled: cfg.Agent.ToolsOn(),
		maxRounds:    cfg.Agent.MaxRounds,
		llm:          llm,
		dispatcher:   dispatcher,
		telemetry:    tele,
		logger:       logger,
	}
}

// Simulate runs one full request: prompt, bounded tool loop,
// normalization.
func (a *Agent) Simulate(ctx context.Context, req SimulationRequest) (ScenarioDocument, error) {
	req = req.WithDefaults()
	runID := uuid.NewString()
	start := time.Now()

	doc, err := a.runLoop(ctx, req)
	if err != nil {
		a.telemetry.RecordSimulation("error", time.Since(start))
		a.logger.Printf("run %s failed after %s: %v", runID, time.Since(start), err)
		return nil, err
	}

	doc = Normalize(doc, req)
	a.telemetry.RecordSimulation("ok", time.Since(start))
	a.logger.Printf("run %s completed in %s", runID, time.Since(start))
	return doc, nil
}

// SimulateSimple expands the simple request shape and runs it.
func (a *Agent) SimulateSimple(ctx context.Context, s SimpleSimulationRequest) (ScenarioDocument, error) {
	return a.Simulate(ctx, ExpandSimple(s))
}
