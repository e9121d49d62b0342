package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FlushesLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "todo.log")
	cfgPath := filepath.Join(dir, "todo.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]\nlevel = \"info\"\nfile = \""+filepath.ToSlash(logPath)+"\"\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	for _, key := range []string{"TODO_CONFIG", "TODO_LOG_LEVEL", "TODO_LOG_FILE", "TODO_NO_BANNER"} {
		t.Setenv(key, "")
	}

	// stdin пуст: сессия завершается штатно, а логи должны оказаться в файле
	stdin := os.Stdin
	empty, err := os.Open(os.DevNull)
	require.NoError(t, err)
	os.Stdin = empty
	t.Cleanup(func() {
		os.Stdin = stdin
		empty.Close()
	})

	require.NoError(t, run(cfgPath))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Contains(t, string(data), "session finished")
}

func TestRun_BadConfig(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to load config")
}
