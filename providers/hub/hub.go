package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/kaptinlin/jsonrepair"
	"github.com/leofalp/benchmatch/internal/utils"
)

const (
	// defaultBaseURL is the canonical Hugging Face hub endpoint base.
	defaultBaseURL = "https://huggingface.co"

	// modelsEndpoint is the path of the model-search API.
	modelsEndpoint = "/api/models"

	// defaultUserAgent identifies this client to the hub.
	defaultUserAgent = "benchmatch-hub-client/1.0"

	// likesSort ranks search results by popularity, most-liked first.
	likesSort = "likes"
)

// Model is one repository returned by the search API.
type Model struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Likes     int    `json:"likes"`
	Downloads int    `json:"downloads"`
}

// Client talks to the hub search API. Use [New] to construct a ready-to-use
// instance.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New returns a Client initialized from environment variables. It reads
// HF_TOKEN for optional authentication and HF_API_BASE_URL for the endpoint
// base (defaulting to https://huggingface.co when unset).
func New() *Client {
	baseURL := os.Getenv("HF_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   os.Getenv("HF_TOKEN"),
		client:  &http.Client{},
	}
}

// WithBaseURL overrides the API base URL and returns the client so calls can
// be chained. Use this when targeting a proxy or local testing endpoint.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithToken sets the bearer token sent with requests, overriding HF_TOKEN.
func (c *Client) WithToken(token string) *Client {
	c.token = token
	return c
}

// WithHTTPClient replaces the default [http.Client], useful for injecting
// custom timeouts or test doubles.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.client = httpClient
	return c
}

// ListModels searches the hub for query and returns up to limit models sorted
// by likes, most popular first.
func (c *Client) ListModels(ctx context.Context, query string, limit int) ([]Model, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", likesSort)
	params.Set("direction", "-1")

	fullURL := c.baseURL + modelsEndpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer utils.CloseWithLog(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("non-2xx status %d: %s", resp.StatusCode, utils.TruncateString(string(body), 500))
	}

	models, err := decodeModels(body)
	if err != nil {
		return nil, err
	}
	return models, nil
}

// Search returns the ranked repo identifiers for query. It satisfies the
// matcher's search capability.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	models, err := c.ListModels(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// decodeModels unmarshals the search response. If strict decoding fails, the
// payload is repaired and decoding retried once, so a sloppy-but-salvageable
// response still yields candidates.
func decodeModels(body []byte) ([]Model, error) {
	var models []Model
	if err := json.Unmarshal(body, &models); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(body))
		if repairErr != nil {
			return nil, fmt.Errorf("error parsing response: %w (repair also failed: %v)", err, repairErr)
		}
		if err := json.Unmarshal([]byte(repaired), &models); err != nil {
			return nil, fmt.Errorf("error parsing repaired response: %w (preview: %s)", err, utils.TruncateString(string(body), 500))
		}
	}
	return models, nil
}
