package tolstoyclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoyclient"
)

func recordingServer(t *testing.T) (*httptest.Server, *http.Header) {
	t.Helper()

	var seen http.Header

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = request.Header.Clone()
		_, _ = writer.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	return server, &seen
}

func TestNew_ConstructionShapesAreEquivalent(t *testing.T) {
	t.Parallel()

	server, seen := recordingServer(t)

	configClient, err := tolstoyclient.New(&tolstoy.Config{
		BaseURL:        server.URL,
		OrganizationID: "org-1",
		UserID:         "user-1",
		AuthToken:      "t1",
	})
	require.NoError(t, err)

	_, err = configClient.Flows().List(context.Background(), nil)
	require.NoError(t, err)

	fromConfig := seen.Clone()

	positionalClient, err := tolstoyclient.NewWithCredentials(server.URL, "org-1", "user-1", "t1")
	require.NoError(t, err)

	_, err = positionalClient.Flows().List(context.Background(), nil)
	require.NoError(t, err)

	fromPositional := seen.Clone()

	// Both shapes normalize to the same configuration, so the requests
	// they produce carry identical tenant headers.
	assert.Equal(t, fromConfig.Get("x-org-id"), fromPositional.Get("x-org-id"))
	assert.Equal(t, fromConfig.Get("x-user-id"), fromPositional.Get("x-user-id"))
	assert.Equal(t, fromConfig.Get("Authorization"), fromPositional.Get("Authorization"))
	assert.Equal(t, "org-1", fromPositional.Get("x-org-id"))
	assert.Equal(t, "user-1", fromPositional.Get("x-user-id"))
	assert.Equal(t, "Bearer t1", fromPositional.Get("Authorization"))
}

func TestNew_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		construct func() (tolstoy.Client, error)
	}{
		{
			name: "nil config",
			construct: func() (tolstoy.Client, error) {
				return tolstoyclient.New(nil)
			},
		},
		{
			name: "empty base URL in config",
			construct: func() (tolstoy.Client, error) {
				return tolstoyclient.New(&tolstoy.Config{AuthToken: "t1"})
			},
		},
		{
			name: "whitespace base URL in config",
			construct: func() (tolstoy.Client, error) {
				return tolstoyclient.New(&tolstoy.Config{BaseURL: "   "})
			},
		},
		{
			name: "empty base URL positional",
			construct: func() (tolstoy.Client, error) {
				return tolstoyclient.NewWithCredentials("", "org-1", "user-1", "t1")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			c, err := testCase.construct()
			require.Error(t, err)
			assert.Nil(t, c)

			configErr := &tolstoy.ConfigurationError{}
			assert.True(t, errors.As(err, &configErr))
		})
	}
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	server, seen := recordingServer(t)

	c, err := tolstoyclient.NewWithToken(server.URL, "t1")
	require.NoError(t, err)

	_, err = c.Flows().List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer t1", seen.Get("Authorization"))
	assert.Empty(t, seen.Get("x-org-id"))
	assert.Empty(t, seen.Get("x-user-id"))
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	t.Parallel()

	server, _ := recordingServer(t)

	// Trailing slashes are trimmed before paths are joined.
	c, err := tolstoyclient.New(&tolstoy.Config{BaseURL: server.URL + "/"})
	require.NoError(t, err)

	_, err = c.Flows().List(context.Background(), nil)
	require.NoError(t, err)
}

func TestNew_RawClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/custom/endpoint", request.URL.Path)
		assert.Equal(t, "Bearer t1", request.Header.Get("Authorization"))
		_, _ = writer.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	c, err := tolstoyclient.NewWithToken(server.URL, "t1")
	require.NoError(t, err)

	// Raw exposes the shared transport for endpoints without helpers.
	resp, err := c.Raw().Get(context.Background(), "/custom/endpoint", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
}
