package telemetry

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/chronoscribe/chronoscribe/config"
)

// Telemetry tracks simulation, LLM and tool activity. Metrics are
// registered with the given Prometheus registerer and served by the
// HTTP layer on /metrics. A disabled instance is a no-op.
type Telemetry struct {
	enabled bool
	logger  *log.Logger

	simulations        *prometheus.CounterVec
	simulationDuration prometheus.Histogram
	llmRequests        *prometheus.CounterVec
	llmTokens          *prometheus.CounterVec
	toolExecutions     *prometheus.CounterVec
}

// NewTelemetry creates a telemetry instance on the default registry.
func NewTelemetry(cfg config.TelemetryConfig) *Telemetry {
	return NewTelemetryWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewTelemetryWithRegistry creates a telemetry instance on a specific
// registerer (tests pass their own to avoid cross-test collisions).
func NewTelemetryWithRegistry(cfg config.TelemetryConfig, reg prometheus.Registerer) *Telemetry {
	if !cfg.Enabled {
		return &Telemetry{}
	}
	t := &Telemetry{
		enabled: true,
		logger:  log.New(log.Writer(), "[TELEMETRY] ", log.LstdFlags),
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chronoscribe_simulations_total",
			Help: "Completed simulation requests by outcome.",
		}, []string{"outcome"}),
		simulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chronoscribe_simulation_duration_seconds",
			Help:    "Wall time of one simulation run.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chronoscribe_llm_requests_total",
			Help: "Chat-completion calls by outcome.",
		}, []string{"outcome"}),
		llmTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chronoscribe_llm_tokens_total",
			Help: "Tokens reported by the chat-completion API.",
		}, []string{"kind"}),
		toolExecutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chronoscribe_tool_executions_total",
			Help: "Tool dispatches by tool name.",
		}, []string{"tool"}),
	}
	reg.MustRegister(t.simulations, t.simulationDuration, t.llmRequests, t.llmTokens, t.toolExecutions)
	return t
}

// RecordSimulation records one completed simulation run.
func (t *Telemetry) RecordSimulation(outcome string, d time.Duration) {
	if t == nil || !t.enabled {
		return
	}
	t.simulations.WithLabelValues(outcome).Inc()
	t.simulationDuration.Observe(d.Seconds())
}

// RecordLLMRequest records one chat-completion call and its token usage.
func (t *Telemetry) RecordLLMRequest(outcome string, promptTokens, completionTokens int64) {
	if t == nil || !t.enabled {
		return
	}
	t.llmRequests.WithLabelValues(outcome).Inc()
	if promptTokens > 0 {
		t.llmTokens.WithLabelValues("prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		t.llmTokens.WithLabelValues("completion").Add(float64(completionTokens))
	}
}

// RecordToolExecution records one tool dispatch.
func (t *Telemetry) RecordToolExecution(tool string) {
	if t == nil || !t.enabled {
		return
	}
	t.toolExecutions.WithLabelValues(tool).Inc()
}
