package agents

import (
	"context"

	"github.com/loanassist-poc/server/internal/loan/intent"
	"github.com/loanassist-poc/server/internal/loan/model"
	"github.com/loanassist-poc/server/internal/loan/router"
	logx "github.com/loanassist-poc/server/pkg/logger"
)

const apologyReply = "I apologize for the technical difficulty. Let me help you with your loan application. Could you please tell me: 1) How much loan you need? 2) Your registered phone number?"

// Orchestrator runs one conversation turn: extract intent, route, dispatch
// to the selected handler, merge state, reply. Each turn is stateless apart
// from the session state the caller resends (with a TTL-bounded server-side
// snapshot as a convenience for reconnecting clients).
type Orchestrator struct {
	deps     Deps
	sessions model.SessionRepository
	handlers map[model.Agent]Handler
}

func NewOrchestrator(deps Deps, sessions model.SessionRepository) *Orchestrator {
	return &Orchestrator{
		deps:     deps,
		sessions: sessions,
		handlers: map[model.Agent]Handler{
			model.AgentSales:        NewSalesAgent(deps),
			model.AgentVerification: NewVerificationAgent(deps),
			model.AgentUnderwriting: NewUnderwritingAgent(deps),
			model.AgentSanction:     NewSanctionAgent(deps),
		},
	}
}

// Turn processes one inbound message. It never returns an error: any
// unexpected failure is converted into an apology that re-asks for the two
// facts needed to resume, so the session always has a valid next step.
func (o *Orchestrator) Turn(ctx context.Context, req model.TurnRequest) (resp model.TurnResponse) {
	state := req.State

	defer func() {
		if r := recover(); r != nil {
			logx.Error().Str("session_id", req.SessionID).Msgf("panic recovered in turn: %v", r)
			if state == nil {
				state = model.NewSessionState()
			}
			resp = model.TurnResponse{
				Reply:     apologyReply,
				NextAgent: model.AgentSales,
				State:     state,
				Metadata:  map[string]any{"error": "internal"},
			}
		}
	}()

	if state == nil {
		state = o.loadState(ctx, req.SessionID)
	}

	state.ApplyIntent(intent.Extract(req.Message, state.LoanIntent))

	agent := router.Route(req.Message, state)
	state.CurrentAgent = agent

	logx.Debug().
		Str("session_id", req.SessionID).
		Str("agent", string(agent)).
		Str("customer_id", state.CustomerID).
		Bool("has_amount", state.LoanIntent.HasAmount()).
		Msg("routing turn")

	res, err := o.handlers[agent].Handle(ctx, req.Message, state)
	if err != nil {
		logx.Error().Err(err).Str("agent", string(agent)).Msg("handler failed")
		res = Response{Message: apologyReply, Next: model.AgentSales}
	}

	state.AppendUser(req.Message)
	state.AppendAssistant(res.Message)

	o.saveState(ctx, req.SessionID, state)

	metadata := map[string]any{"agent": string(agent)}
	if state.Underwriting != nil {
		metadata["decision"] = string(state.Underwriting.Decision)
	}

	return model.TurnResponse{
		Reply:     res.Message,
		NextAgent: res.Next,
		State:     state,
		Metadata:  metadata,
	}
}

func (o *Orchestrator) loadState(ctx context.Context, sessionID string) *model.SessionState {
	if o.sessions == nil || sessionID == "" {
		return model.NewSessionState()
	}
	state, err := o.sessions.Load(ctx, sessionID)
	if err != nil {
		logx.Warn().Err(err).Str("session_id", sessionID).Msg("session load failed; starting fresh")
		return model.NewSessionState()
	}
	return state
}

func (o *Orchestrator) saveState(ctx context.Context, sessionID string, state *model.SessionState) {
	if o.sessions == nil || sessionID == "" {
		return
	}
	if err := o.sessions.Save(ctx, sessionID, state); err != nil {
		logx.Warn().Err(err).Str("session_id", sessionID).Msg("session save failed")
	}
}
