package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/nova/internal/ports"
	"golang.org/x/net/html"
)

const (
	DefaultBaseURL = "https://www.googleapis.com"
	searchPath     = "/customsearch/v1"
	maxBodyBytes   = 1 << 20
	defaultTimeout = 10 * time.Second

	NoResults = "No relevant results found."
)

var errMissingEngineID = errors.New("search engine id (search.cx) is not configured")

// Client queries a Google Programmable Search engine and returns the first
// result's snippet as plain text.
type Client struct {
	baseURL    string
	engineID   string
	secrets    ports.SecretStore
	httpClient *http.Client
}

var _ ports.SearchProvider = (*Client)(nil)

type searchResponse struct {
	Items *[]struct {
		Title       string `json:"title"`
		Snippet     string `json:"snippet"`
		HTMLSnippet string `json:"htmlSnippet"`
	} `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewClient(baseURL, engineID string, secrets ports.SecretStore, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		engineID:   engineID,
		secrets:    secrets,
		httpClient: httpClient,
	}
}

func (c *Client) Search(ctx context.Context, topic string) (string, error) {
	if c.engineID == "" {
		return "", errMissingEngineID
	}

	apiKey, err := c.secrets.Get(ctx, ports.SecretSearchAPIKey)
	if err != nil {
		return "", fmt.Errorf("load search api key: %w", err)
	}

	query := url.Values{}
	query.Set("key", apiKey)
	query.Set("cx", c.engineID)
	query.Set("q", topic)
	query.Set("num", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch search results: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read search response: %w", err)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode search response (status %d): %w", resp.StatusCode, err)
	}

	if payload.Error != nil || resp.StatusCode != http.StatusOK {
		message := "Unknown error"
		if payload.Error != nil && payload.Error.Message != "" {
			message = payload.Error.Message
		}
		return "", fmt.Errorf("search api status %d: %s", resp.StatusCode, message)
	}

	if payload.Items == nil || len(*payload.Items) == 0 {
		return NoResults, nil
	}

	first := (*payload.Items)[0]
	snippet := first.HTMLSnippet
	if snippet == "" {
		snippet = first.Snippet
	}

	text := PlainText(snippet)
	if text == "" {
		return NoResults, nil
	}
	return text, nil
}

// PlainText strips markup from an HTML fragment, decodes entities and
// collapses whitespace.
func PlainText(fragment string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(tokenizer.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "br" {
				b.WriteByte(' ')
			}
		}
	}
}
