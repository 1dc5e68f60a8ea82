package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"globetrek/config"
	_ "globetrek/docs" // Swagger docs
	"globetrek/internal/agent"
	"globetrek/internal/agent/orchestrator"
	"globetrek/internal/agent/tools"
	"globetrek/internal/conversation"
	"globetrek/internal/httpserver"
	"globetrek/internal/images"
	"globetrek/internal/planner"
	plannerHTTP "globetrek/internal/planner/delivery/http"
	"globetrek/internal/planner/usecase"
	"globetrek/internal/render"
	"globetrek/pkg/amadeus"
	"globetrek/pkg/duckduckgo"
	"globetrek/pkg/groq"
	"globetrek/pkg/log"
	"globetrek/pkg/serpapi"
)

// @title       GlobeTrek API
// @description AI travel planner with Groq LLM agents, Amadeus flight search, SerpAPI images, and PDF itinerary export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GlobeTrek...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// Missing credentials degrade features instead of failing startup.
	for _, key := range cfg.MissingKeys() {
		logger.Warnf(ctx, "%s is not set, the dependent feature is disabled", key)
	}

	// 3. Agents
	hasAmadeus := cfg.Amadeus.ClientID != "" && cfg.Amadeus.ClientSecret != ""
	webSearch := tools.NewWebSearch(duckduckgo.New(""))

	var planAgent, chatAgent planner.TextGenerator
	if cfg.Groq.APIKey != "" {
		plannerLLM, llmErr := groq.New(groq.Config{
			APIKey:  cfg.Groq.APIKey,
			BaseURL: cfg.Groq.BaseURL,
			Model:   cfg.Groq.PlannerModel,
			Timeout: cfg.Groq.Timeout,
		})
		if llmErr != nil {
			logger.Error(ctx, "Failed to create planner LLM client: ", llmErr)
			return
		}

		chatLLM, llmErr := groq.New(groq.Config{
			APIKey:  cfg.Groq.APIKey,
			BaseURL: cfg.Groq.BaseURL,
			Model:   cfg.Groq.ChatModel,
			Timeout: cfg.Groq.Timeout,
		})
		if llmErr != nil {
			logger.Error(ctx, "Failed to create chat LLM client: ", llmErr)
			return
		}

		plannerRegistry := agent.NewToolRegistry()
		plannerRegistry.Register(webSearch)
		if hasAmadeus {
			flightClient := amadeus.New(cfg.Amadeus.ClientID, cfg.Amadeus.ClientSecret, cfg.Amadeus.BaseURL)
			plannerRegistry.Register(tools.NewSearchAirports(flightClient))
			plannerRegistry.Register(tools.NewSearchFlights(flightClient))
			plannerRegistry.Register(tools.NewGetAirportInfo(flightClient))
			logger.Info(ctx, "Amadeus flight tools registered")
		}

		chatRegistry := agent.NewToolRegistry()
		chatRegistry.Register(webSearch)

		planAgent = orchestrator.New(plannerLLM, plannerRegistry, logger, orchestrator.SystemPromptPlanner)
		chatAgent = orchestrator.New(chatLLM, chatRegistry, logger, "")

		logger.Infof(ctx, "Agents initialized (planner=%s chat=%s)", plannerLLM.Model(), chatLLM.Model())
	}

	// 4. Image search + extractor
	var search serpapi.ISearch
	if cfg.SerpAPI.APIKey != "" {
		serpClient, serpErr := serpapi.New(cfg.SerpAPI.APIKey, cfg.SerpAPI.BaseURL, cfg.SerpAPI.SearchesPerMinute)
		if serpErr != nil {
			logger.Error(ctx, "Failed to create SerpAPI client: ", serpErr)
			return
		}
		search = serpClient
	}
	extractor := images.New(logger, search)

	// 5. Renderer
	fetcher := render.NewHTTPImageFetcher(render.FetcherConfig{
		Timeout:    cfg.Renderer.ImageTimeout,
		MaxWidthPt: cfg.Renderer.MaxImageWidthPt,
	})
	renderer := render.New(logger, fetcher, render.Config{
		SparseThreshold: cfg.Renderer.SparseThreshold,
		FooterText:      cfg.Renderer.FooterText,
	})

	// 6. Conversation store
	store, err := conversation.NewStore(cfg.Conversation.MaxSessions, cfg.Conversation.MaxExchanges)
	if err != nil {
		logger.Error(ctx, "Failed to create conversation store: ", err)
		return
	}

	// 7. Planner domain
	plannerUC := usecase.New(logger, planAgent, chatAgent, extractor, renderer, store)
	plannerHandler := plannerHTTP.New(logger, plannerUC, plannerHTTP.Features{
		Planner:     planAgent != nil,
		Chat:        chatAgent != nil,
		FlightTools: hasAmadeus,
		ImageSearch: search != nil,
		MissingKeys: cfg.MissingKeys(),
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PlannerHandler: plannerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
