package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRunArgsDefaults(t *testing.T) {
	cfg := New("")
	cfg.PHPThreads.SetValue("")

	args := cfg.BuildRunArgs(false)

	assert.Equal(t, []string{"--host", "127.0.0.1", "--port", "8000"}, args)
	assert.NotContains(t, args, "--https")
	assert.NotContains(t, args, "--worker")
	assert.NotContains(t, args, "--watch")
	assert.NotContains(t, args, "--no-compression")
}

func TestBuildRunArgsCompression(t *testing.T) {
	t.Run("off adds negated flag", func(t *testing.T) {
		cfg := New("")
		cfg.Compression.Toggle()
		assert.Contains(t, cfg.BuildRunArgs(false), "--no-compression")
	})

	t.Run("on adds no flag at all", func(t *testing.T) {
		cfg := New("")
		args := cfg.BuildRunArgs(false)
		assert.NotContains(t, args, "--compression")
		assert.NotContains(t, args, "--no-compression")
	})
}

func TestBuildRunArgsDocrootMadeAbsolute(t *testing.T) {
	cfg := New("public")

	args := cfg.BuildRunArgs(false)

	idx := indexOf(args, "--docroot")
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx+1, len(args))
	assert.True(t, filepath.IsAbs(args[idx+1]), "docroot should be absolute, got %q", args[idx+1])
}

func TestBuildRunArgsWatchPatterns(t *testing.T) {
	cfg := New("")
	cfg.ExtraWatch.SetValue("*.php, templates/**, ")

	args := cfg.BuildRunArgs(false)

	assert.Equal(t, 2, countOf(args, "--watch-pattern"))
	assert.Contains(t, args, "*.php")
	assert.Contains(t, args, "templates/**")
}

func TestBuildRunArgsDryRunAndExtras(t *testing.T) {
	cfg := New("")
	cfg.ExtraArgs.SetValue(`--env "APP_DEBUG=1"`)

	args := cfg.BuildRunArgs(true)

	dashIdx := indexOf(args, "--")
	dryIdx := indexOf(args, "--dry-run")
	require.GreaterOrEqual(t, dashIdx, 0)
	require.GreaterOrEqual(t, dryIdx, 0)
	assert.Less(t, dryIdx, dashIdx, "--dry-run comes before the -- separator")
	assert.Equal(t, []string{"--env", "APP_DEBUG=1"}, args[dashIdx+1:])
}

func TestBuildInitArgs(t *testing.T) {
	t.Run("bare", func(t *testing.T) {
		cfg := New("")
		assert.Equal(t, []string{"--init"}, cfg.BuildInitArgs())
	})

	t.Run("domain implies save", func(t *testing.T) {
		cfg := New("")
		cfg.Domain.SetValue("myapp.localhost")
		args := cfg.BuildInitArgs()
		assert.Contains(t, args, "--domain")
		assert.Equal(t, "--save", args[len(args)-1])
	})

	t.Run("docroot without domain has no save", func(t *testing.T) {
		cfg := New("public")
		args := cfg.BuildInitArgs()
		assert.Contains(t, args, "--docroot")
		assert.NotContains(t, args, "--save")
	})
}

func TestSplitShellWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "a b c", []string{"a", "b", "c"}},
		{"quoted", `--flag "two words"`, []string{"--flag", "two words"}},
		{"malformed falls back to fields", `--flag "unterminated`, []string{"--flag", `"unterminated`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitShellWords(tt.input))
		})
	}
}

func TestFieldsOrderAndCount(t *testing.T) {
	cfg := New("")
	fields := cfg.Fields()
	require.Len(t, fields, 13)
	assert.Equal(t, "Host", fields[0].Label())
	assert.Equal(t, "Extra Args", fields[12].Label())
}

func indexOf(args []string, want string) int {
	for i, a := range args {
		if a == want {
			return i
		}
	}
	return -1
}

func countOf(args []string, want string) int {
	n := 0
	for _, a := range args {
		if a == want {
			n++
		}
	}
	return n
}
