package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "BATIMEX", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [{
				"nom_complet": "BATIMEX SAS",
				"activite_principale": "41.20B",
				"libelle_activite_principale": "Construction de bâtiments",
				"siren": "123456789",
				"tranche_effectif_salarie": "22",
				"siege": {
					"adresse": "4 RUE DES LILAS 69001 LYON",
					"code_postal": "69001",
					"libelle_region": "Auvergne-Rhône-Alpes"
				}
			}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	records, err := client.Search(context.Background(), "BATIMEX")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "BATIMEX SAS", records[0].LegalName)
	assert.Equal(t, "41.20B", records[0].IndustryCode)
	assert.Equal(t, "4 RUE DES LILAS 69001 LYON", records[0].Address)
	assert.Equal(t, "Auvergne-Rhône-Alpes", records[0].Region)
	assert.Equal(t, "69001", records[0].PostalCode)
	assert.Equal(t, "22", records[0].HeadcountCode)
	assert.Equal(t, "123456789", records[0].Identifier)
}

func TestSearch_TopLevelAddressFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [{
				"nom_complet": "ACME",
				"adresse": "1 PLACE DE LA MAIRIE 75001 PARIS",
				"region": "Île-de-France"
			}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	records, err := client.Search(context.Background(), "ACME")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1 PLACE DE LA MAIRIE 75001 PARIS", records[0].Address)
	assert.Equal(t, "Île-de-France", records[0].Region)
}

func TestSearch_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	records, err := client.Search(context.Background(), "NOBODY")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSearch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Search(context.Background(), "ACME")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
