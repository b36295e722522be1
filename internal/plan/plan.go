package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// Operation names form a closed grammar. Anything the model proposes
// outside these two kinds is rejected, never interpreted.
const (
	OpSearch = "search_files"
	OpMove   = "move_files"
)

// SearchOp is a validated request to find files.
type SearchOp struct {
	Pattern   string
	Root      string
	Recursive bool
	Keyword   string
}

// MoveOp is a validated request to relocate files. An empty Sources list
// means "the files found by the preceding search in the same plan".
type MoveOp struct {
	Sources     []string
	Destination string
}

// Operation is a tagged variant: exactly one of Search or Move is set,
// discriminated by Kind.
type Operation struct {
	Kind   string
	Search *SearchOp
	Move   *MoveOp
}

// Plan is a candidate sequence of operations proposed by the intent
// resolver. It is untrusted until approved, immutable once rendered, and
// discarded after execution or rejection.
type Plan struct {
	ID         string
	Request    string
	Ops        []Operation
	Commentary string
	CreatedAt  time.Time
}

// HasMutation reports whether any operation in the plan mutates the
// filesystem.
func (p *Plan) HasMutation() bool {
	for _, op := range p.Ops {
		if op.Kind == OpMove {
			return true
		}
	}
	return false
}

// UnknownOperationError reports an operation name outside the closed grammar.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation: %q", e.Name)
}

// InvalidArgumentError reports a missing or mistyped operation argument.
type InvalidArgumentError struct {
	Op      string
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Field, e.Message)
}

// FromCalls validates model function calls against the closed grammar and
// builds a plan. The first call outside the grammar fails the whole plan.
func FromCalls(request string, calls []*genai.FunctionCall) (*Plan, error) {
	p := &Plan{
		ID:        uuid.NewString(),
		Request:   request,
		CreatedAt: time.Now(),
	}

	for _, call := range calls {
		if call == nil {
			continue
		}
		op, err := fromCall(call)
		if err != nil {
			return nil, err
		}
		p.Ops = append(p.Ops, op)
	}

	return p, nil
}

func fromCall(call *genai.FunctionCall) (Operation, error) {
	switch call.Name {
	case OpSearch:
		return searchFromArgs(call.Args)
	case OpMove:
		return moveFromArgs(call.Args)
	default:
		return Operation{}, &UnknownOperationError{Name: call.Name}
	}
}

func searchFromArgs(args map[string]any) (Operation, error) {
	pattern, _ := GetString(args, "pattern")
	keyword, _ := GetString(args, "search_term")
	if pattern == "" && keyword == "" {
		return Operation{}, &InvalidArgumentError{
			Op:      OpSearch,
			Field:   "pattern",
			Message: "is required",
		}
	}

	return Operation{
		Kind: OpSearch,
		Search: &SearchOp{
			Pattern:   pattern,
			Root:      GetStringDefault(args, "root_path", "."),
			Recursive: GetBoolDefault(args, "recursive", true),
			Keyword:   keyword,
		},
	}, nil
}

func moveFromArgs(args map[string]any) (Operation, error) {
	dest, ok := GetString(args, "destination")
	if !ok || dest == "" {
		return Operation{}, &InvalidArgumentError{
			Op:      OpMove,
			Field:   "destination",
			Message: "is required",
		}
	}

	sources, err := GetStringSlice(args, "sources")
	if err != nil {
		return Operation{}, &InvalidArgumentError{
			Op:      OpMove,
			Field:   "sources",
			Message: err.Error(),
		}
	}

	return Operation{
		Kind: OpMove,
		Move: &MoveOp{
			Sources:     sources,
			Destination: dest,
		},
	}, nil
}
