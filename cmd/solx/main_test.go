package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/solana-explorer/internal/config"
	"github.com/dmagro/solana-explorer/internal/ident"
	"github.com/dmagro/solana-explorer/internal/rpc"
)

const testAddress = "Vote111111111111111111111111111111111111111"

// fakeNode is a JSON-RPC endpoint answering from canned "result"/"error"
// members keyed by method.
type fakeNode struct {
	url      string
	requests atomic.Int32
}

func newFakeNode(t *testing.T, responses map[string]string) *fakeNode {
	t.Helper()
	n := &fakeNode{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.requests.Add(1)
		var req rpc.Request
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))

		member, ok := responses[req.Method]
		if !ok {
			member = `"error":{"code":-32601,"message":"Method not found"}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":1,`+member+`}`)
	}))
	t.Cleanup(srv.Close)
	n.url = srv.URL
	return n
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs solx with an isolated preference and settings file.
func execute(t *testing.T, prefsPath string, args ...string) result {
	t.Helper()
	dir := t.TempDir()
	if prefsPath == "" {
		prefsPath = filepath.Join(dir, config.PreferenceFileName)
	}
	base := []string{
		"--config-file", prefsPath,
		"--settings", filepath.Join(dir, "missing.yaml"),
		"--no-color",
	}

	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func readPrefs(t *testing.T, path string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestClusterSet(t *testing.T) {
	tests := []struct {
		name       string
		arg        string
		wantURL    string
		wantNote   bool
		wantStored string
	}{
		{"testnet", "testnet", config.TestnetURL, false, "testnet"},
		{"mainnet alias", "mainnet", config.MainnetBetaURL, false, "mainnet"},
		{"short alias", "d", config.DevnetURL, false, "d"},
		{"typo falls back to devnet", "maiinnet", config.DevnetURL, true, "maiinnet"},
		{"names are case sensitive", "MAINNET", config.DevnetURL, true, "MAINNET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.PreferenceFileName)
			res := execute(t, path, "cluster", "set", tt.arg)
			require.NoError(t, res.err)

			assert.Equal(t, map[string]string{"cluster": tt.wantStored, "rpc_url": tt.wantURL}, readPrefs(t, path))
			assert.Contains(t, res.stdout, "Cluster updated to: "+tt.wantStored)
			assert.Equal(t, tt.wantNote, strings.Contains(res.stderr, "DESIGN NOTE"))
		})
	}
}

func TestClusterSetIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.PreferenceFileName)
	require.NoError(t, execute(t, path, "cluster", "set", "testnet").err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, execute(t, path, "cluster", "set", "testnet").err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClusterSetPersistenceFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", config.PreferenceFileName)
	res := execute(t, path, "cluster", "set", "testnet")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, config.ErrPersistence)
}

func TestClusterGet(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		res := execute(t, "", "cluster", "get")
		require.NoError(t, res.err)
		assert.Equal(t, "Active Cluster: devnet (https://api.devnet.solana.com)\n", res.stdout)
	})

	t.Run("persisted", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.PreferenceFileName)
		require.NoError(t, execute(t, path, "cluster", "set", "m").err)
		res := execute(t, path, "cluster", "get")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Active Cluster: m (https://api.mainnet-beta.solana.com)")
	})

	t.Run("cluster flag", func(t *testing.T) {
		res := execute(t, "", "--cluster", "testnet", "cluster", "get")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, config.TestnetURL)
	})

	t.Run("url flag wins", func(t *testing.T) {
		res := execute(t, "", "--cluster", "testnet", "--url", "http://localhost:8899", "cluster", "get")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Active Cluster: custom (http://localhost:8899)")
	})
}

func TestInvalidURLFlag(t *testing.T) {
	res := execute(t, "", "--url", "ftp://example.com", "cluster", "get")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "--url")
}

func TestAccountInfo(t *testing.T) {
	node := newFakeNode(t, map[string]string{
		"getAccountInfo": `"result":{"context":{"slot":1},"value":{"lamports":5000000000,"owner":"11111111111111111111111111111111","data":["","base64"],"executable":false,"rentEpoch":0,"space":0}}`,
		"getBalance":     `"result":{"context":{"slot":1},"value":5000000000}`,
	})

	res := execute(t, "", "--url", node.url, "account", "info", testAddress)
	require.NoError(t, res.err)

	for _, want := range []string{testAddress, "5.000000000", "5000000000", "11111111111111111111111111111111", "Executable", "Data Size"} {
		assert.Contains(t, res.stdout, want)
	}
	assert.Equal(t, int32(2), node.requests.Load())
}

func TestInvalidIdentifierMakesNoRequests(t *testing.T) {
	node := newFakeNode(t, nil)

	for _, args := range [][]string{
		{"account", "info", "not-base58-0OIl"},
		{"tx", "info", testAddress},
		{"block", "info", "latest"},
		{"token", "mint", "abc"},
		{"stake", "info", ""},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			res := execute(t, "", append([]string{"--url", node.url}, args...)...)
			require.Error(t, res.err)
			assert.ErrorIs(t, res.err, ident.ErrInvalidIdentifier)
		})
	}
	assert.Equal(t, int32(0), node.requests.Load())
}

func TestRemoteQueryFailure(t *testing.T) {
	node := newFakeNode(t, map[string]string{
		"getGenesisHash": `"error":{"code":-32603,"message":"Internal error"}`,
	})

	res := execute(t, "", "--url", node.url, "cluster", "genesis")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, rpc.ErrRemoteQuery)
	assert.Contains(t, res.err.Error(), "Internal error")
}

func TestBlockVerbsShareRendering(t *testing.T) {
	sigs := make([]string, 25)
	for i := range sigs {
		sigs[i] = fmt.Sprintf("%q", fmt.Sprintf("sig%02d", i))
	}
	node := newFakeNode(t, map[string]string{
		"getBlock": `"result":{"blockhash":"BH","previousBlockhash":"PBH","parentSlot":99,"blockTime":null,"blockHeight":null,"signatures":[` +
			strings.Join(sigs, ",") + `],"rewards":[]}`,
	})

	var outputs []string
	for _, verb := range []string{"info", "get", "show"} {
		res := execute(t, "", "--url", node.url, "block", verb, "100")
		require.NoError(t, res.err, verb)
		assert.Contains(t, res.stdout, "...and 15 more transactions", verb)
		assert.Contains(t, res.stdout, "sig09", verb)
		assert.NotContains(t, res.stdout, "sig10", verb)
		outputs = append(outputs, res.stdout)
	}
	assert.Equal(t, outputs[0], outputs[1])
	assert.Equal(t, outputs[0], outputs[2])
}

func TestAccountStakeMatchesStakeInfo(t *testing.T) {
	node := newFakeNode(t, map[string]string{
		"getAccountInfo": `"result":{"context":{"slot":1},"value":{"lamports":1,"owner":"11111111111111111111111111111111","data":["","base64"],"executable":false,"rentEpoch":0}}`,
	})

	a := execute(t, "", "--url", node.url, "account", "stake", testAddress)
	b := execute(t, "", "--url", node.url, "stake", "info", testAddress)
	require.NoError(t, a.err)
	require.NoError(t, b.err)
	assert.Equal(t, a.stdout, b.stdout)
	assert.Contains(t, a.stdout, "owner mismatch")
}

func TestClusterHealth(t *testing.T) {
	t.Run("unhealthy node is a result", func(t *testing.T) {
		node := newFakeNode(t, map[string]string{
			"getHealth": `"error":{"code":-32005,"message":"Node is unhealthy"}`,
		})
		res := execute(t, "", "--url", node.url, "cluster", "health")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "UNHEALTHY (Node is unhealthy)")
	})

	t.Run("healthy", func(t *testing.T) {
		node := newFakeNode(t, map[string]string{"getHealth": `"result":"ok"`})
		res := execute(t, "", "--url", node.url, "cluster", "health")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "HEALTHY")
	})
}

func TestUsageErrors(t *testing.T) {
	tests := [][]string{
		{"account", "frobnicate"},
		{"account", "info"},
		{"block", "info", "1", "2"},
		{"nope"},
		{"cluster", "nodes", "--sort", "stake"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			res := execute(t, "", args...)
			assert.Error(t, res.err)
		})
	}
}

func TestNetworkDefaultsToStatus(t *testing.T) {
	node := newFakeNode(t, map[string]string{
		"getEpochInfo":   `"result":{"absoluteSlot":1000,"blockHeight":900,"epoch":2,"slotIndex":100,"slotsInEpoch":400}`,
		"getVersion":     `"result":{"solana-core":"2.0.1","feature-set":1}`,
		"getBlockHeight": `"result":900`,
	})

	bare := execute(t, "", "--url", node.url, "network")
	status := execute(t, "", "--url", node.url, "network", "status")
	require.NoError(t, bare.err)
	require.NoError(t, status.err)
	assert.Equal(t, bare.stdout, status.stdout)
	assert.Contains(t, bare.stdout, "Epoch Progress       : 25%")
}
