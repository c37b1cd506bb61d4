package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIChatClientCall(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  {\"sentiment\":\"bullish\"}  "}}]}`))
	}))
	defer srv.Close()

	c := &OpenAIChatClient{BaseURL: srv.URL, Model: "llama3", Temperature: 0.2}
	out, err := c.CallWithMessages(context.Background(), "prompt text")
	require.NoError(t, err)

	assert.Equal(t, `{"sentiment":"bullish"}`, out, "surrounding whitespace must be trimmed")
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "llama3", gotBody["model"])
	assert.Equal(t, 0.2, gotBody["temperature"])

	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1, "exactly one user-role message")
	msg := msgs[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "prompt text", msg["content"])
}

func TestOpenAIChatClientNormalizesBaseURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	c := &OpenAIChatClient{BaseURL: srv.URL + "/v1/chat/completions/", Model: "llama3"}
	_, err := c.CallWithMessages(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "/v1/chat/completions", gotPath)
}

func TestOpenAIChatClientBackendErrors(t *testing.T) {
	t.Run("http error with envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"model not loaded","type":"server_error"}}`))
		}))
		defer srv.Close()

		c := &OpenAIChatClient{BaseURL: srv.URL, Model: "llama3"}
		_, err := c.CallWithMessages(context.Background(), "p")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status=500")
		assert.Contains(t, err.Error(), "model not loaded")
	})

	t.Run("empty choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		c := &OpenAIChatClient{BaseURL: srv.URL, Model: "llama3"}
		_, err := c.CallWithMessages(context.Background(), "p")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty choices")
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		c := &OpenAIChatClient{BaseURL: srv.URL, Model: "llama3"}
		_, err := c.CallWithMessages(context.Background(), "p")
		assert.Error(t, err)
	})
}

func TestBuildProviderFromConfig(t *testing.T) {
	p := BuildProviderFromConfig(ModelCfg{Model: " llama3 "}, 0)
	assert.Equal(t, "openai:llama3", p.ID())
}
