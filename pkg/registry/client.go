// Package registry queries the French company registry search API
// (recherche-entreprises.api.gouv.fr).
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"

	"github.com/leadpilot/sector-cli/internal/model"
)

const (
	defaultBaseURL = "https://recherche-entreprises.api.gouv.fr"
	defaultPerPage = 5
)

// Client performs company registry searches.
type Client interface {
	Search(ctx context.Context, query string) ([]model.RegistryRecord, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a registry search client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	NomComplet         string `json:"nom_complet"`
	ActivitePrincipale string `json:"activite_principale"`
	LibelleActivite    string `json:"libelle_activite_principale"`
	Siren              string `json:"siren"`
	Adresse            string `json:"adresse"`
	Region             string `json:"region"`
	TrancheEffectif    string `json:"tranche_effectif_salarie"`
	Siege              siege  `json:"siege"`
}

type siege struct {
	Adresse       string `json:"adresse"`
	CodePostal    string `json:"code_postal"`
	LibelleRegion string `json:"libelle_region"`
}

func (c *httpClient) Search(ctx context.Context, query string) ([]model.RegistryRecord, error) {
	u := fmt.Sprintf("%s/search?q=%s&per_page=%d", c.baseURL, url.QueryEscape(query), defaultPerPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, eris.Wrap(err, "registry: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "registry: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("registry: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result searchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal response")
	}

	records := make([]model.RegistryRecord, 0, len(result.Results))
	for _, r := range result.Results {
		address := r.Siege.Adresse
		if address == "" {
			address = r.Adresse
		}
		region := r.Siege.LibelleRegion
		if region == "" {
			region = r.Region
		}
		records = append(records, model.RegistryRecord{
			LegalName:     r.NomComplet,
			IndustryCode:  r.ActivitePrincipale,
			IndustryLabel: r.LibelleActivite,
			Address:       address,
			Region:        region,
			PostalCode:    r.Siege.CodePostal,
			HeadcountCode: r.TrancheEffectif,
			Identifier:    r.Siren,
		})
	}
	return records, nil
}
