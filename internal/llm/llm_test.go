package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtools/internal/config"
)

func TestNewRunner(t *testing.T) {
	t.Run("empty runner defaults to exec", func(t *testing.T) {
		runner, err := NewRunner(config.ModelConfig{Runner: "", Command: "ollama", Name: "m"}, nil)
		require.NoError(t, err)
		assert.IsType(t, &ExecRunner{}, runner)
	})

	t.Run("exec runner", func(t *testing.T) {
		runner, err := NewRunner(config.ModelConfig{Runner: "exec", Command: "ollama", Name: "m"}, nil)
		require.NoError(t, err)
		assert.IsType(t, &ExecRunner{}, runner)
	})

	t.Run("openai runner", func(t *testing.T) {
		runner, err := NewRunner(config.ModelConfig{Runner: "openai", Name: "m", APIKey: "k"}, nil)
		require.NoError(t, err)
		assert.IsType(t, &OpenAIRunner{}, runner)
	})

	t.Run("unknown runner", func(t *testing.T) {
		_, err := NewRunner(config.ModelConfig{Runner: "carrier-pigeon"}, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "carrier-pigeon")
	})
}

func TestExecRunner_Complete(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix shell scripts")
	}

	t.Run("missing runtime binary", func(t *testing.T) {
		runner := NewExecRunner(config.ModelConfig{
			Command: "definitely-not-a-real-model-runtime",
			Name:    "llama3.2",
		}, nil)

		_, err := runner.Complete(context.Background(), "list files")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLaunch)
		assert.Contains(t, err.Error(), "definitely-not-a-real-model-runtime")
	})

	t.Run("captures stdout", func(t *testing.T) {
		// echo stands in for the runtime, so the output is just the argv.
		runner := NewExecRunner(config.ModelConfig{Command: "echo", Name: "m"}, nil)

		out, err := runner.Complete(context.Background(), "list files")
		require.NoError(t, err)
		assert.Equal(t, "run m list files\n", out)
	})

	t.Run("nonzero exit still yields stdout", func(t *testing.T) {
		script := filepath.Join(t.TempDir(), "fakeruntime")
		err := os.WriteFile(script, []byte("#!/bin/sh\necho '{\"cmd\": \"ls\"}'\necho boom >&2\nexit 3\n"), 0755)
		require.NoError(t, err)

		runner := NewExecRunner(config.ModelConfig{Command: script, Name: "m"}, nil)

		out, err := runner.Complete(context.Background(), "list files")
		require.NoError(t, err)
		assert.Equal(t, "{\"cmd\": \"ls\"}\n", out)
	})

	t.Run("cancelled context", func(t *testing.T) {
		script := filepath.Join(t.TempDir(), "slowruntime")
		err := os.WriteFile(script, []byte("#!/bin/sh\nsleep 10\n"), 0755)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		runner := NewExecRunner(config.ModelConfig{Command: script, Name: "m"}, nil)

		_, err = runner.Complete(ctx, "list files")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestOpenAIRunner_Complete(t *testing.T) {
	t.Run("returns message content", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{
				"id": "chatcmpl-1",
				"object": "chat.completion",
				"choices": [
					{"index": 0, "message": {"role": "assistant", "content": "{\"cmd\": \"ls -la\"}"}, "finish_reason": "stop"}
				]
			}`)
		}))
		defer server.Close()

		runner := NewOpenAIRunner(config.ModelConfig{
			Name:    "llama3.2",
			APIKey:  "ollama",
			BaseURL: server.URL + "/v1",
		}, nil)

		out, err := runner.Complete(context.Background(), "list all files")
		require.NoError(t, err)
		assert.Equal(t, `{"cmd": "ls -la"}`, out)
		assert.Equal(t, "/v1/chat/completions", gotPath)
	})

	t.Run("endpoint error maps to launch failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"message": "model not found"}}`, http.StatusInternalServerError)
		}))
		defer server.Close()

		runner := NewOpenAIRunner(config.ModelConfig{
			Name:    "llama3.2",
			APIKey:  "ollama",
			BaseURL: server.URL + "/v1",
		}, nil)

		_, err := runner.Complete(context.Background(), "list all files")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLaunch)
	})

	t.Run("unreachable endpoint maps to launch failure", func(t *testing.T) {
		runner := NewOpenAIRunner(config.ModelConfig{
			Name:    "llama3.2",
			APIKey:  "ollama",
			BaseURL: "http://127.0.0.1:1/v1",
		}, nil)

		_, err := runner.Complete(context.Background(), "list all files")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLaunch)
	})

	t.Run("no choices yields empty response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`)
		}))
		defer server.Close()

		runner := NewOpenAIRunner(config.ModelConfig{
			Name:    "llama3.2",
			APIKey:  "ollama",
			BaseURL: server.URL + "/v1",
		}, nil)

		out, err := runner.Complete(context.Background(), "list all files")
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})
}
