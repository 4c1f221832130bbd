// Package agents holds the specialized conversation handlers and the
// orchestrator that dispatches one turn to the routed handler.
package agents

import (
	"context"

	"github.com/loanassist-poc/server/internal/loan/model"
	"github.com/loanassist-poc/server/internal/loan/reply"
	"github.com/loanassist-poc/server/internal/loan/sanction"
	"github.com/loanassist-poc/server/internal/loan/underwriting"
)

// Deps are the collaborators shared by all handlers.
type Deps struct {
	Customers model.CustomerRepository
	Offers    model.OfferRepository
	Engine    *underwriting.Engine
	Generator reply.Generator
	Renderer  sanction.Renderer
	Policy    model.PolicyConfig
	Prompt    model.PromptConfig
	Sanction  model.SanctionConfig
}

// Response is one handler's contribution to the turn: the reply text and a
// hint about which handler should take the next turn. An empty Next marks
// the terminal state.
type Response struct {
	Message string
	Next    model.Agent
}

// Handler consumes one conversation turn. Handlers mutate the session
// state they are given; recoverable conditions (missing prerequisites,
// lookups that miss) are expressed as clarifying responses, never as
// errors. An error return is reserved for genuinely unexpected failures.
type Handler interface {
	Handle(ctx context.Context, message string, state *model.SessionState) (Response, error)
}
