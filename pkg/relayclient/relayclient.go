// Package relayclient provides a client for the external relay service that
// executes signed transfer intents and pays its own gas.
package relayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/tanminhan00/GasZero-sub001/pkg/faults"
	"github.com/tanminhan00/GasZero-sub001/pkg/logger"
	"github.com/tanminhan00/GasZero-sub001/pkg/models"
)

// relayPath is the relay service endpoint path
const relayPath = "/api/relay"

// Client represents a relay service client
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a new relay service client
func New(endpoint string, log logger.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: createHTTPClient(),
		logger:     log,
	}
}

// Submit posts a signed relay request and returns the relay-issued transaction
// hash. Sent once per run; no retries inside the client.
func (c *Client) Submit(ctx context.Context, request models.RelayRequest) (string, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return "", faults.Errorf(faults.KindRelay, "failed to encode relay request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+relayPath, bytes.NewReader(body))
	if err != nil {
		return "", faults.Errorf(faults.KindRelay, "failed to build relay request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", faults.Errorf(faults.KindRelay, "relay request failed: %v", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Error("Failed to close response body: %v", err)
		}
	}(resp.Body)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", faults.Errorf(faults.KindRelay, "failed to read relay response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", faults.Errorf(faults.KindRelay, "unexpected status code: %d, body: %s",
			resp.StatusCode, string(bodyBytes))
	}

	var relayResp models.RelayResponse
	if err := json.Unmarshal(bodyBytes, &relayResp); err != nil {
		return "", faults.Errorf(faults.KindRelay, "failed to decode relay response: %v, body: %s",
			err, string(bodyBytes))
	}
	if relayResp.Hash == "" {
		return "", faults.Errorf(faults.KindRelay, "relay response carries no transaction hash, body: %s",
			string(bodyBytes))
	}

	c.logger.Debug("Relay accepted transfer from %s: %s", request.From, relayResp.Hash)
	return relayResp.Hash, nil
}

// Helper function to create an HTTP client with timeouts
func createHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
