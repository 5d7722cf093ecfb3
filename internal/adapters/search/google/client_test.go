package google

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/nova/internal/ports"
	portmocks "github.com/bnema/nova/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customsearch/v1", r.URL.Path)
		assert.Equal(t, "cse-key", r.URL.Query().Get("key"))
		assert.Equal(t, "engine-1", r.URL.Query().Get("cx"))
		assert.Equal(t, "ai", r.URL.Query().Get("q"))

		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func searchSecrets(t *testing.T) *portmocks.MockSecretStore {
	t.Helper()

	secrets := portmocks.NewMockSecretStore(t)
	secrets.EXPECT().Get(mock.Anything, ports.SecretSearchAPIKey).Return("cse-key", nil).Once()
	return secrets
}

func TestClientSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "html snippet is flattened",
			body: `{"items":[{"snippet":"raw","htmlSnippet":"<b>AI</b> is the study of&nbsp;agents &amp; minds<br>today"}]}`,
			want: "AI is the study of agents & minds today",
		},
		{
			name: "plain snippet fallback",
			body: `{"items":[{"snippet":"Artificial   intelligence\n overview"}]}`,
			want: "Artificial intelligence overview",
		},
		{
			name: "empty items",
			body: `{"items":[]}`,
			want: NoResults,
		},
		{
			name: "no items key",
			body: `{"searchInformation":{"totalResults":"0"}}`,
			want: NoResults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newSearchServer(t, http.StatusOK, tt.body)
			got, err := NewClient(server.URL, "engine-1", searchSecrets(t), server.Client()).Search(context.Background(), "ai")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientSearchSurfacesAPIError(t *testing.T) {
	t.Parallel()

	server := newSearchServer(t, http.StatusForbidden, `{"error":{"code":403,"message":"API key not valid."}}`)

	_, err := NewClient(server.URL, "engine-1", searchSecrets(t), server.Client()).Search(context.Background(), "ai")
	require.Error(t, err)
	assert.ErrorContains(t, err, "search api status 403: API key not valid.")
}

func TestClientSearchRequiresEngineID(t *testing.T) {
	t.Parallel()

	_, err := NewClient("", "", portmocks.NewMockSecretStore(t), nil).Search(context.Background(), "ai")
	require.ErrorIs(t, err, errMissingEngineID)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Go is fun", PlainText("<p>Go <i>is</i>\n\tfun</p>"))
	assert.Equal(t, "", PlainText(""))
}
