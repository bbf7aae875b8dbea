package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store/jsonstore"
	"github.com/idilsaglam/tada/internal/todo"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), args, &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func storedItems(t *testing.T, path string) []model.Item {
	t.Helper()
	s, err := jsonstore.Open(path)
	require.NoError(t, err)
	raw, err := s.Get(context.Background(), todo.DefaultKey)
	require.NoError(t, err)
	items, err := todo.Decode(raw)
	require.NoError(t, err)
	return items
}

func TestAddAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")

	res := run(t, "--path", path, "add", "Buy", "milk")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "added #")

	res = run(t, "--path", path, "add", "Walk dog")
	require.Equal(t, 0, res.code, res.stderr)

	items := storedItems(t, path)
	require.Len(t, items, 2)
	assert.Equal(t, "Buy milk", items[0].Text)
	assert.Equal(t, "Walk dog", items[1].Text)
	assert.NotEqual(t, items[0].ID, items[1].ID)

	res = run(t, "--path", path, "ls")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Buy milk")
	assert.Contains(t, res.stdout, "Walk dog")
	assert.Contains(t, res.stdout, "Total 2")
	assert.Contains(t, res.stdout, fmt.Sprintf("#%d", items[0].ID))
}

func TestAddBlankIsANote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")

	res := run(t, "--path", path, "add", "   ")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "nothing added")
	assert.Empty(t, storedItems(t, path))
}

func TestDoneAndRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	require.Equal(t, 0, run(t, "--path", path, "add", "Buy milk").code)
	id := storedItems(t, path)[0].ID

	res := run(t, "--path", path, "done", fmt.Sprint(id))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, fmt.Sprintf("toggled #%d", id))
	assert.True(t, storedItems(t, path)[0].Completed)

	res = run(t, "--path", path, "ls", "--group")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Pending")
	assert.Contains(t, res.stdout, "Done")
	assert.Contains(t, res.stdout, "(none)")

	res = run(t, "--path", path, "rm", fmt.Sprint(id))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, fmt.Sprintf("removed #%d", id))
	assert.Empty(t, storedItems(t, path))
}

func TestUnknownIDIsANote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	require.Equal(t, 0, run(t, "--path", path, "add", "Buy milk").code)

	for _, sub := range []string{"done", "rm"} {
		res := run(t, "--path", path, sub, "42")
		assert.Equal(t, 0, res.code, sub)
		assert.Contains(t, res.stdout, "no item #42", sub)
	}
	items := storedItems(t, path)
	require.Len(t, items, 1)
	assert.False(t, items[0].Completed)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	require.Equal(t, 0, run(t, "--path", path, "add", "a").code)
	require.Equal(t, 0, run(t, "--path", path, "add", "b").code)

	res := run(t, "--path", path, "clear")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, storedItems(t, path))

	res = run(t, "--path", path, "ls")
	assert.Contains(t, res.stdout, "no items")
}

func TestUsageErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")

	cases := map[string][]string{
		"unknown subcommand": {"--path", path, "bogus"},
		"unknown flag":       {"--path", path, "ls", "--nope"},
		"add without text":   {"--path", path, "add"},
		"done not a number":  {"--path", path, "done", "abc"},
		"rm missing id":      {"--path", path, "rm"},
		"bad theme":          {"--path", path, "--theme", "purple", "ls"},
		"bad backend":        {"--path", path, "--store", "redis", "ls"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			res := run(t, args...)
			assert.Equal(t, 2, res.code)
			assert.Contains(t, res.stderr, "✖")
			assert.Contains(t, res.stderr, "Usage:")
		})
	}
}

func TestSQLiteBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.db")

	res := run(t, "--store", "sqlite", "--path", path, "add", "Buy milk")
	require.Equal(t, 0, res.code, res.stderr)

	res = run(t, "--store", "sqlite", "--path", path, "ls")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Buy milk")
}

func TestConfigFileAndLogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.json")
	logPath := filepath.Join(dir, "tada.log")
	cfgPath := filepath.Join(dir, "tada.yaml")
	cfg := fmt.Sprintf("store:\n  path: %q\n  key: groceries\nlog:\n  level: debug\n  file: %q\n", path, logPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	res := run(t, "--config", cfgPath, "add", "Buy milk")
	require.Equal(t, 0, res.code, res.stderr)

	s, err := jsonstore.Open(path)
	require.NoError(t, err)
	raw, err := s.Get(context.Background(), "groceries")
	require.NoError(t, err)
	items, err := todo.Decode(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "store opened")
}

func TestMissingConfigFileFails(t *testing.T) {
	res := run(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "ls")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "✖")
}
