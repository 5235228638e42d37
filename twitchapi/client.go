package twitchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the RapidAPI gateway fronting the Twitch data
	// endpoints. All lookups go through this single host.
	DefaultBaseURL = "https://twitch-api8.p.rapidapi.com"

	// apiHost is the value RapidAPI expects in the x-rapidapi-host
	// header, regardless of which URL the request is sent to.
	apiHost = "twitch-api8.p.rapidapi.com"

	defaultTimeout = 30 * time.Second

	// maxErrorBody caps how much of an error response is kept on the
	// returned APIError.
	maxErrorBody = 512
)

// Client represents a Twitch gateway API client. It holds no mutable
// state after construction and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	debug      bool
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Twitch gateway client. The RapidAPI key is the
// only required setting; everything else has defaults that options can
// override. No request is sent during construction.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigError{Reason: "RapidAPI key is required"}
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.debug {
		transport := client.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		client.httpClient.Transport = &debugTransport{
			transport: transport,
			logger:    client.logger,
		}
	}

	return client, nil
}

// fetch performs a single GET against the gateway and hands back the raw
// JSON body. Every lookup funnels through here, so URL construction,
// authentication headers, status handling and decoding live in one place.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		url += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &APIError{Message: "failed to create request", Err: err}
	}

	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", apiHost)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("url", url).
		Msg("Making Twitch API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       truncateBody(body),
		}
	}

	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return json.RawMessage(body), nil
}

// truncateBody keeps error payloads readable in logs and error messages
func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}

// debugTransport dumps requests and responses before delegating to the
// wrapped round tripper.
type debugTransport struct {
	transport http.RoundTripper
	logger    zerolog.Logger
}

func (t *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		t.logger.Debug().Msgf("twitch request:\n%s", dump)
	}

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		t.logger.Debug().Msgf("twitch response:\n%s", dump)
	}

	return resp, nil
}
