// Package rpc is a read-only Solana JSON-RPC 2.0 client.
//
// Every query that accepts a commitment is issued at "finalized". Calls are
// made one at a time and never retried; a failure is returned as a
// *QueryError.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmagro/solana-explorer/internal/log"
)

// Commitment is the server-side finality level of a query.
type Commitment string

// CommitmentFinalized is the only level solx requests.
const CommitmentFinalized Commitment = "finalized"

// Client sends JSON-RPC requests to a single endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	commitment Commitment
}

// NewClient creates a client for endpoint. timeout bounds each HTTP request.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		commitment: CommitmentFinalized,
	}
}

// Call executes method with params and decodes the "result" member into
// result. result may be a *json.RawMessage to keep the payload undecoded.
func (c *Client) Call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	if params == nil {
		params = []interface{}{}
	}

	body, err := json.Marshal(Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return &QueryError{Method: method, Kind: KindDecode, Err: err}
	}

	start := time.Now()
	resp, err := c.doRequest(ctx, method, body)
	log.RPC.Debug().
		Str("method", method).
		Str("endpoint", c.endpoint).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("rpc call")
	if err != nil {
		return err
	}

	if isNull(resp.Result) {
		return &QueryError{Method: method, Kind: KindNotFound, Message: "no result returned"}
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return &QueryError{Method: method, Kind: KindDecode, Err: err}
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method string, body []byte) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &QueryError{Method: method, Kind: KindTransport, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &QueryError{Method: method, Kind: KindTransport, Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &QueryError{Method: method, Kind: KindTransport, Err: err}
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return nil, &QueryError{Method: method, Kind: KindHTTP, Code: httpResp.StatusCode}
		}
		return nil, &QueryError{Method: method, Kind: KindDecode, Err: fmt.Errorf("invalid JSON response: %w", err)}
	}

	// Some gateways pair a JSON-RPC error body with a non-200 status; the
	// error object is the more useful of the two.
	if resp.Error != nil {
		return nil, &QueryError{Method: method, Kind: KindRPC, Code: resp.Error.Code, Message: resp.Error.Message}
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, &QueryError{Method: method, Kind: KindHTTP, Code: httpResp.StatusCode}
	}
	return &resp, nil
}

// commitmentConfig is the {"commitment": ...} object most methods accept.
func (c *Client) commitmentConfig() map[string]interface{} {
	return map[string]interface{}{"commitment": c.commitment}
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// notFound builds the error returned when a lookup yields a null value.
func notFound(method, format string, args ...interface{}) error {
	return &QueryError{Method: method, Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// asNotFound rewrites a generic null-result error with a specific message.
func asNotFound(err error, message string) error {
	var qe *QueryError
	if errors.As(err, &qe) && qe.Kind == KindNotFound {
		qe.Message = message
	}
	return err
}
