package plan

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestFromCallsSearch(t *testing.T) {
	calls := []*genai.FunctionCall{{
		Name: OpSearch,
		Args: map[string]any{
			"pattern":   "*.jpg",
			"root_path": "~/Pictures",
			"recursive": true,
		},
	}}

	p, err := FromCalls("find my photos", calls)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "find my photos", p.Request)
	require.Len(t, p.Ops, 1)
	require.Equal(t, OpSearch, p.Ops[0].Kind)
	assert.Equal(t, "*.jpg", p.Ops[0].Search.Pattern)
	assert.Equal(t, "~/Pictures", p.Ops[0].Search.Root)
	assert.True(t, p.Ops[0].Search.Recursive)
	assert.False(t, p.HasMutation())
}

func TestFromCallsSearchDefaults(t *testing.T) {
	calls := []*genai.FunctionCall{{
		Name: OpSearch,
		Args: map[string]any{"search_term": "invoice"},
	}}

	p, err := FromCalls("", calls)
	require.NoError(t, err)

	op := p.Ops[0].Search
	assert.Equal(t, ".", op.Root)
	assert.True(t, op.Recursive, "recursion defaults on")
	assert.Equal(t, "invoice", op.Keyword)
}

func TestFromCallsMove(t *testing.T) {
	calls := []*genai.FunctionCall{{
		Name: OpMove,
		Args: map[string]any{
			// JSON decoding produces []any, not []string
			"sources":     []any{"/tmp/a.txt", "/tmp/b.txt"},
			"destination": "/tmp/archive",
		},
	}}

	p, err := FromCalls("", calls)
	require.NoError(t, err)

	require.Len(t, p.Ops, 1)
	require.Equal(t, OpMove, p.Ops[0].Kind)
	assert.Equal(t, []string{"/tmp/a.txt", "/tmp/b.txt"}, p.Ops[0].Move.Sources)
	assert.True(t, p.HasMutation())
}

func TestFromCallsUnknownOperation(t *testing.T) {
	calls := []*genai.FunctionCall{{
		Name: "delete_files",
		Args: map[string]any{"pattern": "*"},
	}}

	p, err := FromCalls("", calls)

	assert.Nil(t, p)
	var unknown *UnknownOperationError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "delete_files", unknown.Name)
}

func TestFromCallsMissingDestination(t *testing.T) {
	calls := []*genai.FunctionCall{{
		Name: OpMove,
		Args: map[string]any{"sources": []any{"/tmp/a.txt"}},
	}}

	_, err := FromCalls("", calls)

	var invalid *InvalidArgumentError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "destination", invalid.Field)
}

func TestFromCallsBadSourceElement(t *testing.T) {
	calls := []*genai.FunctionCall{{
		Name: OpMove,
		Args: map[string]any{
			"sources":     []any{"/tmp/a.txt", 42},
			"destination": "/tmp/archive",
		},
	}}

	_, err := FromCalls("", calls)

	var invalid *InvalidArgumentError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "sources", invalid.Field)
}

func TestRenderMovePreservesOrder(t *testing.T) {
	permutations := [][]string{
		{"/x/a", "/x/b", "/x/c"},
		{"/x/c", "/x/a", "/x/b"},
		{"/x/b", "/x/c", "/x/a"},
	}

	for _, sources := range permutations {
		rendered := RenderMove(sources, "/dest")

		last := -1
		for _, src := range sources {
			idx := strings.Index(rendered, src+"  →  /dest")
			require.GreaterOrEqual(t, idx, 0, "missing entry for %s", src)
			assert.Greater(t, idx, last, "order not preserved for %v", sources)
			last = idx
		}
	}
}

func TestRenderMoveNoDeduplication(t *testing.T) {
	rendered := RenderMove([]string{"/x/a", "/x/a"}, "/dest")
	assert.Equal(t, 2, strings.Count(rendered, "/x/a  →  /dest"))
	assert.Contains(t, rendered, fmt.Sprintf("%d file(s)", 2))
}
