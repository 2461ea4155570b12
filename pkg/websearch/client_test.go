package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<html><body>
<div class="results">
  <div class="result">
    <h2><a class="result__a" href="/l/?uddg=https%3A%2F%2Fboulangerie-martin.fr%2F">Boulangerie Martin</a></h2>
    <a class="result__snippet">Boulangerie artisanale à Lyon, pain et viennoiseries.</a>
  </div>
  <div class="result">
    <h2><a class="result__a" href="https://other.example">Autre résultat</a></h2>
    <a class="result__snippet">Sans intérêt.</a>
  </div>
</div>
</body></html>`

func TestSearchTop_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/html/", r.URL.Path)
		assert.Equal(t, "boulangerie martin", r.URL.Query().Get("q"))
		assert.Equal(t, "fr-fr", r.URL.Query().Get("kl"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	res, err := client.SearchTop(context.Background(), "boulangerie martin")

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "Boulangerie Martin", res.Title)
	assert.Equal(t, "https://boulangerie-martin.fr/", res.URL)
	assert.Contains(t, res.Body, "Boulangerie artisanale")
}

func TestSearchTop_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><div class="no-results">Aucun résultat</div></body></html>`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	res, err := client.SearchTop(context.Background(), "zzzzz")

	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestSearchTop_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.SearchTop(context.Background(), "acme")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestResolveRedirect(t *testing.T) {
	assert.Equal(t, "https://boulangerie-martin.fr/",
		resolveRedirect("/l/?uddg=https%3A%2F%2Fboulangerie-martin.fr%2F"))
	assert.Equal(t, "https://direct.example/page",
		resolveRedirect("https://direct.example/page"))
}
