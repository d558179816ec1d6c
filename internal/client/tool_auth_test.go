package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

func TestToolAuthClient_Upsert(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/tools/tool-1/auth", request.URL.Path)

		var body tolstoy.ToolAuthUpsertRequest

		err := json.NewDecoder(request.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, tolstoy.ToolAuthTypeAPIKey, body.Type)
		assert.Equal(t, map[string]interface{}{"apiKey": "sk-123"}, body.Credentials)

		// Credentials never come back, only the configured flag.
		_ = json.NewEncoder(writer).Encode(tolstoy.ToolAuth{
			ToolID:     "tool-1",
			Type:       body.Type,
			Configured: true,
		})
	})

	auth, err := c.ToolAuth().Upsert(context.Background(), "tool-1", &tolstoy.ToolAuthUpsertRequest{
		Type:        tolstoy.ToolAuthTypeAPIKey,
		Credentials: map[string]interface{}{"apiKey": "sk-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "tool-1", auth.ToolID)
	assert.True(t, auth.Configured)
}

func TestToolAuthClient_Get(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/tools/tool-1/auth", request.URL.Path)
		_ = json.NewEncoder(writer).Encode(tolstoy.ToolAuth{
			ToolID:     "tool-1",
			Type:       tolstoy.ToolAuthTypeOAuth2,
			Configured: true,
			Scopes:     []string{"chat:write"},
		})
	})

	auth, err := c.ToolAuth().Get(context.Background(), "tool-1")
	require.NoError(t, err)
	assert.Equal(t, tolstoy.ToolAuthTypeOAuth2, auth.Type)
	assert.Equal(t, []string{"chat:write"}, auth.Scopes)
}

func TestToolAuthClient_Delete(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "/tools/tool-1/auth", request.URL.Path)
		writer.WriteHeader(http.StatusNoContent)
	})

	err := c.ToolAuth().Delete(context.Background(), "tool-1")
	require.NoError(t, err)
}
