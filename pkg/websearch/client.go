// Package websearch fetches the top web search result for a query from the
// DuckDuckGo HTML endpoint.
package websearch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://html.duckduckgo.com"

// Result is the top search hit for a query.
type Result struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Body  string `json:"body"`
}

// Client fetches the top search result for a query.
type Client interface {
	SearchTop(ctx context.Context, query string) (*Result, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default endpoint base URL.
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

// NewClient creates a DuckDuckGo HTML search client.
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

// SearchTop returns the first organic result, or (nil, nil) when the page
// carries no results.
func (c *httpClient) SearchTop(ctx context.Context, query string) (*Result, error) {
	u := fmt.Sprintf("%s/html/?q=%s&kl=fr-fr", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, eris.Wrap(err, "websearch: create request")
	}
	req.Header.Set("User-Agent", "sector-cli/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "websearch: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("websearch: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "websearch: parse html")
	}

	first := doc.Find("div.result").First()
	if first.Length() == 0 {
		return nil, nil
	}

	link := first.Find("a.result__a").First()
	title := strings.TrimSpace(link.Text())
	href, _ := link.Attr("href")
	body := strings.TrimSpace(first.Find(".result__snippet").Text())

	if title == "" && body == "" {
		return nil, nil
	}

	return &Result{
		Title: title,
		URL:   resolveRedirect(href),
		Body:  body,
	}, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg=<target> redirect links.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
