package server

import (
	_ "embed"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chronoscribe/chronoscribe/config"
	agentcore "github.com/chronoscribe/chronoscribe/internal/agent/core"
	agenttele "github.com/chronoscribe/chronoscribe/internal/agent/telemetry"
	"github.com/chronoscribe/chronoscribe/internal/agent/tools"
	openai_provider "github.com/chronoscribe/chronoscribe/provider/openai"
)

//go:embed static/index.html
var indexHTML []byte

// New builds the echo instance with all routes wired to the given agent.
func New(agent *agentcore.Agent) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/", func(c echo.Context) error {
		return c.HTMLBlob(http.StatusOK, indexHTML)
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	sh := &SimulateHandler{Agent: agent}
	sh.Register(e)

	return e
}

// Run wires the whole service from config and starts listening.
func Run(cfg *config.Config, addr string) error {
	if cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY not configured")
	}
	tele := agenttele.NewTelemetry(cfg.Telemetry)
	llm := openai_provider.NewOpenAIClient(cfg.OpenAI)
	wiki := tools.NewWikiClient(cfg.Tools.WikiBaseURL, cfg.Tools.WikiTimeout)
	dispatcher := tools.NewDispatcher(wiki)
	agentLogger := log.New(log.Writer(), "[AGENT] ", log.LstdFlags)
	agent := agentcore.NewAgent(cfg, llm, dispatcher, tele, agentLogger)

	e := New(agent)

	if addr == "" {
		addr = cfg.Server.Address
	}
	log.Printf("listening on %s", addr)
	return e.Start(addr)
}
