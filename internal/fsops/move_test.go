package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexusfile/internal/config"
)

func TestMoveBatch(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "archive")
	a := filepath.Join(root, "a.txt")
	b := filepath.Join(root, "b.txt")
	writeFile(t, a)
	writeFile(t, b)

	result, err := Move([]string{a, b}, dest, MoveOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Moved)
	assert.Empty(t, result.Failures())
	assert.FileExists(t, filepath.Join(dest, "a.txt"))
	assert.FileExists(t, filepath.Join(dest, "b.txt"))
	assert.NoFileExists(t, a)
}

func TestMoveMissingSourceDoesNotAbortBatch(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "archive")
	a := filepath.Join(root, "a.txt")
	b := filepath.Join(root, "b.txt") // never created
	c := filepath.Join(root, "c.txt")
	writeFile(t, a)
	writeFile(t, c)

	result, err := Move([]string{a, b, c}, dest, MoveOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Moved)
	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, OutcomeMoved, result.Outcomes[0].Status)
	assert.Equal(t, OutcomeSourceMissing, result.Outcomes[1].Status)
	assert.Equal(t, b, result.Outcomes[1].Source)
	assert.Equal(t, OutcomeMoved, result.Outcomes[2].Status)
}

func TestMoveConservation(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "out")
	sources := []string{
		filepath.Join(root, "one.txt"),
		filepath.Join(root, "gone.txt"),
		filepath.Join(root, "two.txt"),
		filepath.Join(root, "also-gone.txt"),
	}
	writeFile(t, sources[0])
	writeFile(t, sources[2])

	result, err := Move(sources, dest, MoveOptions{})
	require.NoError(t, err)

	assert.Equal(t, len(sources), result.Moved+len(result.Failures()))
	assert.Len(t, result.Outcomes, len(sources))
}

func TestMoveIdempotence(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "archive")
	a := filepath.Join(root, "a.txt")
	writeFile(t, a)

	first, err := Move([]string{a}, dest, MoveOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, first.Moved)

	second, err := Move([]string{a}, dest, MoveOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, second.Moved)
	require.Len(t, second.Outcomes, 1)
	assert.Equal(t, OutcomeSourceMissing, second.Outcomes[0].Status)
}

func TestMoveDestinationUnavailable(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocked")
	writeFile(t, blocker) // regular file where the destination dir should go
	a := filepath.Join(root, "a.txt")
	writeFile(t, a)

	result, err := Move([]string{a}, blocker, MoveOptions{})

	assert.Nil(t, result)
	var unavailable *DestinationUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.FileExists(t, a, "no source may be touched when destination creation fails")
}

func TestMoveCollisionSkip(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "archive")
	a := filepath.Join(root, "a.txt")
	writeFile(t, a)
	require.NoError(t, os.MkdirAll(dest, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "a.txt"), []byte("old"), 0644))

	result, err := Move([]string{a}, dest, MoveOptions{OnCollision: config.CollisionSkip})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Moved)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, OutcomeMoveDenied, result.Outcomes[0].Status)
	assert.FileExists(t, a)

	data, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestMoveCollisionOverwrite(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "archive")
	a := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("new"), 0644))
	require.NoError(t, os.MkdirAll(dest, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "a.txt"), []byte("old"), 0644))

	result, err := Move([]string{a}, dest, MoveOptions{OnCollision: config.CollisionOverwrite})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Moved)
	data, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestMovePreservesInputOrder(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "out")
	sources := []string{
		filepath.Join(root, "c.txt"),
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
	}
	for _, s := range sources {
		writeFile(t, s)
	}

	result, err := Move(sources, dest, MoveOptions{})
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 3)
	for i, o := range result.Outcomes {
		assert.Equal(t, sources[i], o.Source)
	}
}
