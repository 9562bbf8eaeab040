package catfact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"purrfect-cats/internal/app"
)

// DefaultURL is the public cat fact endpoint.
const DefaultURL = "https://catfact.ninja/fact"

// maxBody caps how much of a response is read.
const maxBody = 64 << 10

var errEmptyFact = errors.New("response carried no fact")

type Client struct {
	URL  string
	HTTP *http.Client
}

func New(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{URL: url, HTTP: httpClient}
}

var _ app.FactFetcher = (*Client)(nil)

type factResponse struct {
	Fact string `json:"fact"`
}

// Fetch performs one GET and returns the fact field of the JSON body.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch fact failed: %s", resp.Status)
	}

	var out factResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode fact: %w", err)
	}
	fact := strings.TrimSpace(out.Fact)
	if fact == "" {
		return "", errEmptyFact
	}
	return fact, nil
}
