// Package server exposes the conversation orchestrator and the mock
// collaborator APIs over HTTP.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/loanassist-poc/server/internal/loan/agents"
	"github.com/loanassist-poc/server/internal/loan/model"
)

type Config struct {
	Port        int
	Policy      model.PolicyConfig
	SanctionDir string
}

type Server struct {
	cfg       Config
	engine    *gin.Engine
	orch      *agents.Orchestrator
	customers model.CustomerRepository
	offers    model.OfferRepository
	sessions  model.SessionRepository
}

func New(cfg Config, orch *agents.Orchestrator, customers model.CustomerRepository, offers model.OfferRepository, sessions model.SessionRepository) *Server {
	s := &Server{
		cfg:       cfg,
		engine:    gin.New(),
		orch:      orch,
		customers: customers,
		offers:    offers,
		sessions:  sessions,
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/api/health", s.handleHealth)
	s.engine.POST("/api/chat", s.handleChat)
	s.engine.POST("/api/upload/salary-slip", s.handleSalarySlipUpload)
	s.engine.GET("/api/download/:filename", s.handleDownload)

	mock := s.engine.Group("/api/mock")
	mock.GET("/crm/customer/:phone", s.handleCustomerByPhone)
	mock.GET("/credit/score/:customer_id", s.handleCreditScore)
	mock.GET("/offer/preapproved/:customer_id", s.handlePreapprovedOffer)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	return s.engine.Run(fmt.Sprintf(":%d", s.cfg.Port))
}
