package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAnalyzeWith(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	tasksFile, catalogFile = "", ""
	t.Cleanup(func() { tasksFile, catalogFile = "", "" })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"analyze"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":"1","title":"Work Presentation","mood":"Stressed","start_time":"08:00","finish_time":"09:00"},
		{"id":"2","title":"Deep work","mood":"Focused","start_time":"13:00","finish_time":"15:30"}
	]`), 0o600))

	out, err := runAnalyzeWith(t, "", "--file", path)
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, map[string]any{"Stressed": float64(60), "Focused": float64(150)}, report["Productive Minutes per Mood"])
	assert.Equal(t, map[string]any{"Avoid Tasks": []any{"Work Presentation"}}, report["Avoid Tasks"])
}

func TestAnalyzeCommand_Stdin(t *testing.T) {
	out, err := runAnalyzeWith(t, `[]`, "--file", "-")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, map[string]any{}, report["Productive Minutes per Mood"])
}

func TestAnalyzeCommand_MalformedTime(t *testing.T) {
	_, err := runAnalyzeWith(t, `[{"id":"x","mood":"Focused","start_time":"9am"}]`, "--file", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "9am")
}
