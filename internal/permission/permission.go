package permission

import (
	"context"

	"nexusfile/internal/logging"
	"nexusfile/internal/plan"
)

// Action is the policy outcome for an operation kind.
type Action string

const (
	// ActionAllow permits the operation without asking.
	ActionAllow Action = "allow"
	// ActionAsk requires explicit user confirmation.
	ActionAsk Action = "ask"
	// ActionDeny rejects the operation outright.
	ActionDeny Action = "deny"
)

// PromptHandler asks the user to confirm an operation. It receives the
// already-rendered description of what will happen and returns whether
// the user approved.
type PromptHandler func(ctx context.Context, description string) (bool, error)

// Manager decides whether operations may run. Read-only operations are
// allowed silently; mutations require confirmation through the prompt
// handler. Any failure to obtain an answer denies.
type Manager struct {
	rules   map[string]Action
	handler PromptHandler
}

// NewManager creates a manager with the default policy: searches run
// freely, moves ask.
func NewManager() *Manager {
	return &Manager{
		rules: map[string]Action{
			plan.OpSearch: ActionAllow,
			plan.OpMove:   ActionAsk,
		},
	}
}

// SetPromptHandler installs the confirmation callback. Without one, every
// operation that asks is denied.
func (m *Manager) SetPromptHandler(h PromptHandler) {
	m.handler = h
}

// Check decides whether the named operation may run. The description is
// shown to the user when confirmation is required.
func (m *Manager) Check(ctx context.Context, opName, description string) (bool, error) {
	action, ok := m.rules[opName]
	if !ok {
		logging.Warn("permission check for unknown operation", "operation", opName)
		return false, nil
	}

	switch action {
	case ActionAllow:
		return true, nil
	case ActionDeny:
		logging.Info("operation denied by policy", "operation", opName)
		return false, nil
	case ActionAsk:
		return m.ask(ctx, opName, description)
	default:
		return false, nil
	}
}

func (m *Manager) ask(ctx context.Context, opName, description string) (bool, error) {
	if m.handler == nil {
		logging.Warn("no prompt handler installed, denying", "operation", opName)
		return false, nil
	}

	approved, err := m.handler(ctx, description)
	if err != nil {
		// Fail closed: an unanswerable prompt is a rejection.
		logging.Warn("confirmation prompt failed, denying", "operation", opName, "error", err)
		return false, nil
	}

	logging.Info("confirmation result", "operation", opName, "approved", approved)
	return approved, nil
}
