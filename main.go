package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/loanassist-poc/server/internal/core"
	"github.com/loanassist-poc/server/internal/loan/agents"
	"github.com/loanassist-poc/server/internal/loan/model"
	"github.com/loanassist-poc/server/internal/loan/reply"
	"github.com/loanassist-poc/server/internal/loan/repo"
	"github.com/loanassist-poc/server/internal/loan/sanction"
	"github.com/loanassist-poc/server/internal/loan/underwriting"
	"github.com/loanassist-poc/server/internal/server"
	logx "github.com/loanassist-poc/server/pkg/logger"
	pkgredis "github.com/loanassist-poc/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider (optional; replies degrade to templates without it)
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Service configs
	Server     model.ServerConfig
	Session    model.SessionConfig
	Generation model.GenerationModelConfig
	Prompt     model.PromptConfig
	Policy     model.PolicyConfig
	Sanction   model.SanctionConfig
}

// seeder is implemented by customer stores that can load the demo book.
type seeder interface {
	Seed(ctx context.Context, customers []model.CustomerRecord, offers []model.Offer) error
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		logx.Warn().Err(err).Msg("could not load .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	ttl, err := time.ParseDuration(cfg.Session.TTL)
	if err != nil {
		logx.Fatal().Err(err).Str("ttl", cfg.Session.TTL).Msg("invalid SESSION_TTL")
	}

	// Stores: Redis when reachable, in-memory fallback otherwise so the
	// service still runs for local demos.
	var (
		sessions  model.SessionRepository
		customers model.CustomerRepository
		offers    model.OfferRepository
		seedStore seeder
	)
	if rdb, err := cfg.Redis.New(); err != nil {
		logx.Warn().Err(err).Msg("redis unavailable; using in-memory stores")
		sessions = repo.NewMemorySessionRepository()
		mem := repo.NewMemoryCustomerRepository()
		customers, offers, seedStore = mem, mem, mem
	} else {
		defer rdb.Close()
		sessions = repo.NewRedisSessionRepository(rdb, ttl)
		rc := repo.NewRedisCustomerRepository(rdb)
		customers, offers, seedStore = rc, rc, rc
	}

	if err := seedStore.Seed(ctx, repo.SeedCustomers(), repo.SeedOffers()); err != nil {
		logx.Fatal().Err(err).Msg("failed to seed customer store")
	}

	var generator reply.Generator = reply.Disabled{}
	if cfg.APIKey == "" {
		logx.Warn().Msg("GEMINI_API_KEY not set; replies use deterministic templates")
	} else if g, err := reply.NewGeminiGenerator(ctx, cfg.APIKey, cfg.BaseURL, cfg.Generation, cfg.Session.History.MaxTurns); err != nil {
		logx.Warn().Err(err).Msg("generation model unavailable; replies use deterministic templates")
	} else {
		generator = g
	}

	orch := agents.NewOrchestrator(agents.Deps{
		Customers: customers,
		Offers:    offers,
		Engine:    underwriting.NewEngine(cfg.Policy),
		Generator: generator,
		Renderer:  sanction.NewFileRenderer(cfg.Sanction.OutputDir),
		Policy:    cfg.Policy,
		Prompt:    cfg.Prompt,
		Sanction:  cfg.Sanction,
	}, sessions)

	srv := server.New(server.Config{
		Port:        cfg.Server.Port,
		Policy:      cfg.Policy,
		SanctionDir: cfg.Sanction.OutputDir,
	}, orch, customers, offers, sessions)

	logx.Info().Int("port", cfg.Server.Port).Msg("loan assistant listening")
	if err := srv.Run(); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}
