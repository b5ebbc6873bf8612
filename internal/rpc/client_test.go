package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcServer answers each JSON-RPC method with a canned "result" or "error"
// body and records the requests it saw.
type rpcServer struct {
	t         *testing.T
	responses map[string]string
	requests  []Request
}

func newRPCServer(t *testing.T, responses map[string]string) (*rpcServer, *Client) {
	t.Helper()
	s := &rpcServer{t: t, responses: responses}
	srv := httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(srv.Close)
	return s, NewClient(srv.URL, 5*time.Second)
}

func (s *rpcServer) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	require.NoError(s.t, err)

	var req Request
	require.NoError(s.t, json.Unmarshal(body, &req))
	s.requests = append(s.requests, req)

	member, ok := s.responses[req.Method]
	if !ok {
		member = `"error":{"code":-32601,"message":"Method not found"}`
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":1,`+member+`}`)
}

func (s *rpcServer) lastParams() []interface{} {
	require.NotEmpty(s.t, s.requests)
	return s.requests[len(s.requests)-1].Params
}

func TestGetAccountInfo(t *testing.T) {
	srv, client := newRPCServer(t, map[string]string{
		"getAccountInfo": `"result":{"context":{"slot":1},"value":{"lamports":5000000000,"owner":"11111111111111111111111111111111","data":["AAECAwQ=","base64"],"executable":false,"rentEpoch":18446744073709551615,"space":5}}`,
	})

	acct, err := client.GetAccountInfo(context.Background(), "Vote111111111111111111111111111111111111111", EncodingBase64)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000000000), acct.Lamports)
	assert.Equal(t, "11111111111111111111111111111111", acct.Owner)
	assert.Equal(t, 5, acct.DataLen())

	params := srv.lastParams()
	require.Len(t, params, 2)
	cfg := params[1].(map[string]interface{})
	assert.Equal(t, "finalized", cfg["commitment"])
	assert.Equal(t, "base64", cfg["encoding"])
}

func TestGetAccountInfoNotFound(t *testing.T) {
	_, client := newRPCServer(t, map[string]string{
		"getAccountInfo": `"result":{"context":{"slot":1},"value":null}`,
	})

	_, err := client.GetAccountInfo(context.Background(), "Vote111111111111111111111111111111111111111", EncodingBase64)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRemoteQuery))

	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, KindNotFound, qe.Kind)
	assert.Contains(t, err.Error(), "not found")
}

func TestCallRPCError(t *testing.T) {
	_, client := newRPCServer(t, map[string]string{
		"getHealth": `"error":{"code":-32005,"message":"Node is unhealthy"}`,
	})

	err := client.GetHealth(context.Background())
	require.Error(t, err)
	assert.True(t, IsRPCError(err))
	assert.Contains(t, err.Error(), "RPC error -32005: Node is unhealthy")
}

func TestCallHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.GetBlockHeight(context.Background())
	require.Error(t, err)

	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, KindHTTP, qe.Kind)
	assert.Equal(t, http.StatusTooManyRequests, qe.Code)
	assert.False(t, IsRPCError(err))
}

func TestCallTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second)
	_, err := client.GetVersion(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteQuery)

	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, KindTransport, qe.Kind)
}

func TestCallDecodeError(t *testing.T) {
	_, client := newRPCServer(t, map[string]string{
		"getBlockHeight": `"result":"not-a-number"`,
	})

	_, err := client.GetBlockHeight(context.Background())
	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, KindDecode, qe.Kind)
}

func TestGetBlockRequestShape(t *testing.T) {
	srv, client := newRPCServer(t, map[string]string{
		"getBlock": `"result":{"blockhash":"H1","previousBlockhash":"H0","parentSlot":99,"blockTime":1700000000,"blockHeight":90,"signatures":["s1","s2"],"rewards":[{"pubkey":"P","lamports":5000,"postBalance":10,"rewardType":"Fee","commission":null}]}`,
	})

	block, err := client.GetBlock(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, "H1", block.Blockhash)
	assert.Equal(t, []string{"s1", "s2"}, block.Signatures)
	require.Len(t, block.Rewards, 1)
	assert.Equal(t, int64(5000), block.Rewards[0].Lamports)
	assert.NotEmpty(t, block.Raw)

	params := srv.lastParams()
	assert.Equal(t, float64(100), params[0])
	cfg := params[1].(map[string]interface{})
	assert.Equal(t, "signatures", cfg["transactionDetails"])
	assert.Equal(t, true, cfg["rewards"])
	assert.Equal(t, "finalized", cfg["commitment"])
	assert.Equal(t, float64(0), cfg["maxSupportedTransactionVersion"])
}

func TestGetTransactionNotFound(t *testing.T) {
	_, client := newRPCServer(t, map[string]string{
		"getTransaction": `"result":null`,
	})

	_, err := client.GetTransaction(context.Background(), "sig", EncodingJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction sig not found")
}

func TestGetTransactionOptionalFields(t *testing.T) {
	tests := []struct {
		name      string
		meta      string
		wantUnits OptState
		wantLogs  OptState
	}{
		{
			name:      "present",
			meta:      `{"err":null,"fee":5000,"computeUnitsConsumed":1234,"logMessages":["a"]}`,
			wantUnits: Present,
			wantLogs:  Present,
		},
		{
			name:      "explicit null",
			meta:      `{"err":null,"fee":5000,"computeUnitsConsumed":null,"logMessages":null}`,
			wantUnits: Absent,
			wantLogs:  Absent,
		},
		{
			name:      "omitted",
			meta:      `{"err":null,"fee":5000}`,
			wantUnits: NotRequested,
			wantLogs:  NotRequested,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newRPCServer(t, map[string]string{
				"getTransaction": `"result":{"slot":7,"blockTime":null,"transaction":{"signatures":["s"],"message":{"accountKeys":[],"instructions":[]}},"meta":` + tt.meta + `}`,
			})
			tx, err := client.GetTransaction(context.Background(), "s", EncodingJSON)
			require.NoError(t, err)
			require.NotNil(t, tx.Meta)
			assert.Equal(t, tt.wantUnits, tx.Meta.ComputeUnitsConsumed.State())
			assert.Equal(t, tt.wantLogs, tx.Meta.LogMessages.State())
		})
	}
}

func TestGetTokenAccountsByOwnerFilter(t *testing.T) {
	srv, client := newRPCServer(t, map[string]string{
		"getTokenAccountsByOwner": `"result":{"context":{"slot":1},"value":[{"pubkey":"A1","account":{"lamports":1,"owner":"T","data":["","base64"],"executable":false,"rentEpoch":0}}]}`,
	})

	accts, err := client.GetTokenAccountsByOwner(context.Background(), "OWNER", "T", EncodingJSONParsed)
	require.NoError(t, err)
	require.Len(t, accts, 1)
	assert.Equal(t, "A1", accts[0].Pubkey)

	params := srv.lastParams()
	assert.Equal(t, "OWNER", params[0])
	assert.Equal(t, map[string]interface{}{"programId": "T"}, params[1])
	assert.Equal(t, "jsonParsed", params[2].(map[string]interface{})["encoding"])
}
