package agents

import (
	"context"

	"github.com/loanassist-poc/server/internal/loan/model"
	"github.com/loanassist-poc/server/internal/loan/reply"
	"github.com/loanassist-poc/server/internal/loan/router"
	logx "github.com/loanassist-poc/server/pkg/logger"
)

// SalesAgent drives the open-ended part of the conversation. It is the
// only handler that phrases replies through the generation collaborator;
// on any generation failure it degrades to the deterministic fallback.
type SalesAgent struct {
	deps Deps
}

func NewSalesAgent(deps Deps) *SalesAgent {
	return &SalesAgent{deps: deps}
}

func (a *SalesAgent) Handle(ctx context.Context, message string, state *model.SessionState) (Response, error) {
	text, err := a.deps.Generator.Generate(ctx, reply.SalesSystemPrompt(a.deps.Prompt), state.History, message)
	if err != nil {
		logx.Warn().Err(err).Msg("generation unavailable; using fallback reply")
		text = reply.SalesFallback(message, a.deps.Prompt)
	}

	next := model.AgentSales
	if router.HasPhoneNumber(message) || router.WantsVerification(message) {
		next = model.AgentVerification
	}

	return Response{Message: text, Next: next}, nil
}

var _ Handler = (*SalesAgent)(nil)
