package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

func TestOAuthClient_Initiate(t *testing.T) {
	t.Parallel()

	t.Run("returns authorization URL", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/oauth/initiate", request.URL.Path)

			var body tolstoy.OAuthInitiateRequest

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "tool-1", body.ToolID)
			assert.Equal(t, []string{"chat:write"}, body.Scopes)

			_ = json.NewEncoder(writer).Encode(tolstoy.OAuthInitiateResponse{
				AuthorizationURL: "https://slack.com/oauth/v2/authorize?state=s1",
				State:            "s1",
			})
		})

		initiate, err := c.OAuth().Initiate(context.Background(), &tolstoy.OAuthInitiateRequest{
			ToolID: "tool-1",
			Scopes: []string{"chat:write"},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://slack.com/oauth/v2/authorize?state=s1", initiate.AuthorizationURL)
		assert.Equal(t, "s1", initiate.State)
	})

	t.Run("passes through validation errors", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(writer).Encode(tolstoy.ResponseError{
				Errors: []tolstoy.APIError{{Code: tolstoy.ErrorCodeValidation, Message: "toolId is required"}},
			})
		})

		_, err := c.OAuth().Initiate(context.Background(), &tolstoy.OAuthInitiateRequest{})
		require.Error(t, err)

		errResp := &tolstoy.ResponseError{}
		require.True(t, errors.As(err, &errResp))
		assert.Equal(t, 422, errResp.StatusCode)
		assert.Equal(t, tolstoy.ErrorCodeValidation, errResp.Errors[0].Code)
	})
}
