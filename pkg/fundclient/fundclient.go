// Package fundclient provides a client for the external gas funding service.
package fundclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tanminhan00/GasZero-sub001/pkg/faults"
	"github.com/tanminhan00/GasZero-sub001/pkg/logger"
	"github.com/tanminhan00/GasZero-sub001/pkg/models"
)

// fundPath is the funding service endpoint path
const fundPath = "/api/fund-user-eth"

// Client represents a funding service client
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a new funding service client
func New(endpoint string, log logger.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: createHTTPClient(),
		logger:     log,
	}
}

// RequestFunding asks the service to send the user enough native currency for
// one approval transaction. Any non-2xx status is a rejection; the client
// never retries, since a duplicate request risks double funding.
func (c *Client) RequestFunding(ctx context.Context, user common.Address, reason models.FundingReason) error {
	body, err := json.Marshal(models.FundingRequest{
		UserAddress: user.Hex(),
		Reason:      reason,
	})
	if err != nil {
		return faults.Errorf(faults.KindFundingRejected, "failed to encode funding request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+fundPath, bytes.NewReader(body))
	if err != nil {
		return faults.Errorf(faults.KindFundingRejected, "failed to build funding request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return faults.Errorf(faults.KindFundingRejected, "funding request failed: %v", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Error("Failed to close response body: %v", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return faults.Errorf(faults.KindFundingRejected, "unexpected status code: %d, body: %s",
			resp.StatusCode, string(bodyBytes))
	}

	c.logger.Debug("Funding requested for %s (reason: %s)", user.Hex(), reason)
	return nil
}

// Helper function to create an HTTP client with timeouts
func createHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Endpoint returns the configured service endpoint
func (c *Client) Endpoint() string {
	return fmt.Sprintf("%s%s", c.endpoint, fundPath)
}
