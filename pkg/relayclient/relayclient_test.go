package relayclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanminhan00/GasZero-sub001/pkg/faults"
	"github.com/tanminhan00/GasZero-sub001/pkg/logger"
	"github.com/tanminhan00/GasZero-sub001/pkg/models"
)

func testRequest() models.RelayRequest {
	return models.RelayRequest{
		Chain:     8453,
		From:      "0x1111111111111111111111111111111111111111",
		To:        "0x2222222222222222222222222222222222222222",
		Token:     "USDC",
		Amount:    "10",
		Signature: "0xdeadbeef",
	}
}

func TestSubmit(t *testing.T) {
	var received models.RelayRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/relay", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(models.RelayResponse{Hash: "0xabc123"})
	}))
	defer server.Close()

	client := New(server.URL, &logger.EmptyLogger{})
	hash, err := client.Submit(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "0xabc123", hash)
	assert.Equal(t, testRequest(), received)
}

func TestSubmitRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid signature", http.StatusBadRequest)
	}))
	defer server.Close()

	client := New(server.URL, &logger.EmptyLogger{})
	_, err := client.Submit(context.Background(), testRequest())

	require.Error(t, err)
	assert.Equal(t, faults.KindRelay, faults.KindOf(err))
	assert.Contains(t, err.Error(), "invalid signature")
}

func TestSubmitMissingHash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, &logger.EmptyLogger{})
	_, err := client.Submit(context.Background(), testRequest())

	require.Error(t, err)
	assert.Equal(t, faults.KindRelay, faults.KindOf(err))
}

func TestSubmitMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := New(server.URL, &logger.EmptyLogger{})
	_, err := client.Submit(context.Background(), testRequest())

	require.Error(t, err)
	assert.Equal(t, faults.KindRelay, faults.KindOf(err))
}
