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

func TestWebhooksClient(t *testing.T) {
	t.Parallel()

	t.Run("create returns signing secret", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/webhooks", request.URL.Path)

			var body tolstoy.WebhookCreateRequest

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "github-push", body.Name)
			assert.Equal(t, "flow-1", body.FlowID)

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(tolstoy.Webhook{
				Resource: tolstoy.Resource{ID: "hook-1"},
				Name:     body.Name,
				FlowID:   body.FlowID,
				URL:      "https://api.example.com/webhooks/hook-1/receive",
				Secret:   "whsec_abc",
				Enabled:  true,
			})
		})

		webhook, err := c.Webhooks().Create(context.Background(), &tolstoy.WebhookCreateRequest{
			Name:   "github-push",
			FlowID: "flow-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "hook-1", webhook.ID)
		assert.Equal(t, "whsec_abc", webhook.Secret)
		assert.True(t, webhook.Enabled)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/webhooks/hook-1", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(tolstoy.Webhook{Resource: tolstoy.Resource{ID: "hook-1"}, Name: "github-push"})
		})

		webhook, err := c.Webhooks().Get(context.Background(), "hook-1")
		require.NoError(t, err)
		assert.Equal(t, "github-push", webhook.Name)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/webhooks", request.URL.Path)
			assert.Equal(t, "50", request.URL.Query().Get("limit"))
			_ = json.NewEncoder(writer).Encode([]tolstoy.Webhook{{Resource: tolstoy.Resource{ID: "hook-1"}}})
		})

		webhooks, err := c.Webhooks().List(context.Background(), &tolstoy.ListOptions{Limit: 50})
		require.NoError(t, err)
		assert.Len(t, webhooks, 1)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/webhooks/hook-1", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		})

		err := c.Webhooks().Delete(context.Background(), "hook-1")
		require.NoError(t, err)
	})
}
