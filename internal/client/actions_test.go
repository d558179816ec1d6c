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

func TestActionsClient_Execute(t *testing.T) {
	t.Parallel()

	t.Run("successful execution", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/actions/action-1/execute", request.URL.Path)

			var body tolstoy.ActionExecuteRequest

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, map[string]interface{}{"channel": "#alerts"}, body.Inputs)

			_ = json.NewEncoder(writer).Encode(tolstoy.ActionResult{
				ActionID:   "action-1",
				Status:     "success",
				StatusCode: 200,
				Output:     map[string]interface{}{"ok": true},
			})
		})

		result, err := c.Actions().Execute(context.Background(), "action-1", &tolstoy.ActionExecuteRequest{
			Inputs: map[string]interface{}{"channel": "#alerts"},
		})
		require.NoError(t, err)
		assert.Equal(t, "success", result.Status)
		assert.Equal(t, map[string]interface{}{"ok": true}, result.Output)
	})

	t.Run("upstream failure is reported in the result", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(tolstoy.ActionResult{
				ActionID:   "action-1",
				Status:     "error",
				StatusCode: 502,
				Error:      "upstream timed out",
			})
		})

		result, err := c.Actions().Execute(context.Background(), "action-1", nil)
		require.NoError(t, err)
		assert.Equal(t, "error", result.Status)
		assert.Equal(t, "upstream timed out", result.Error)
	})
}

func TestActionsClient_CRUD(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/actions", request.URL.Path)

			var body tolstoy.ActionCreateRequest

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "tool-1", body.ToolID)

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(tolstoy.Action{
				Resource: tolstoy.Resource{ID: "action-1"},
				ToolID:   body.ToolID,
				Name:     body.Name,
			})
		})

		action, err := c.Actions().Create(context.Background(), &tolstoy.ActionCreateRequest{
			ToolID: "tool-1",
			Name:   "post-message",
		})
		require.NoError(t, err)
		assert.Equal(t, "action-1", action.ID)
	})

	t.Run("get and list", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/actions/action-1":
				_ = json.NewEncoder(writer).Encode(tolstoy.Action{Resource: tolstoy.Resource{ID: "action-1"}})
			case "/actions":
				_ = json.NewEncoder(writer).Encode([]tolstoy.Action{{Resource: tolstoy.Resource{ID: "action-1"}}})
			default:
				writer.WriteHeader(http.StatusNotFound)
			}
		})

		action, err := c.Actions().Get(context.Background(), "action-1")
		require.NoError(t, err)
		assert.Equal(t, "action-1", action.ID)

		actions, err := c.Actions().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Len(t, actions, 1)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/actions/action-1", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		})

		err := c.Actions().Delete(context.Background(), "action-1")
		require.NoError(t, err)
	})
}
