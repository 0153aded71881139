package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fundme-simulator/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode answers JSON-RPC calls from a method -> response body table.
type fakeNode struct {
	mu      sync.Mutex
	methods []string
	replies map[string]string
}

func newFakeNode(t *testing.T, replies map[string]string) (*fakeNode, *httptest.Server) {
	t.Helper()
	node := &fakeNode{replies: replies}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		node.mu.Lock()
		node.methods = append(node.methods, req.Method)
		node.mu.Unlock()

		reply, ok := node.replies[req.Method]
		if !ok {
			reply = `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"the method does not exist"}}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return node, srv
}

func (n *fakeNode) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.methods...)
}

func TestRPCProvider_RequestAccounts(t *testing.T) {
	node, srv := newFakeNode(t, map[string]string{
		"eth_requestAccounts": `{"jsonrpc":"2.0","id":1,"result":["0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"]}`,
	})

	p := NewRPCProvider(srv.URL, srv.Client())
	accounts, err := p.RequestAccounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"}, accounts)
	assert.Equal(t, []string{"eth_requestAccounts"}, node.calls())
}

func TestRPCProvider_FallsBackToEthAccounts(t *testing.T) {
	node, srv := newFakeNode(t, map[string]string{
		"eth_accounts": `{"jsonrpc":"2.0","id":2,"result":["0x1111111111111111111111111111111111111111"]}`,
	})

	p := NewRPCProvider(srv.URL, srv.Client())
	accounts, err := p.RequestAccounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"0x1111111111111111111111111111111111111111"}, accounts)
	assert.Equal(t, []string{"eth_requestAccounts", "eth_accounts"}, node.calls())
}

func TestRPCProvider_UserRejected(t *testing.T) {
	_, srv := newFakeNode(t, map[string]string{
		"eth_requestAccounts": `{"jsonrpc":"2.0","id":1,"error":{"code":4001,"message":"User rejected the request."}}`,
	})

	p := NewRPCProvider(srv.URL, srv.Client())
	_, err := p.RequestAccounts(context.Background())
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, 4001, rpcErr.Code)
}

func TestRPCProvider_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewRPCProvider(srv.URL, srv.Client())
	_, err := p.RequestAccounts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestRPCProvider_MalformedResult(t *testing.T) {
	_, srv := newFakeNode(t, map[string]string{
		"eth_requestAccounts": `{"jsonrpc":"2.0","id":1,"result":42}`,
	})

	p := NewRPCProvider(srv.URL, srv.Client())
	_, err := p.RequestAccounts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding eth_requestAccounts result")
}

func TestRPCProvider_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	p := NewRPCProvider(srv.URL, &http.Client{Timeout: 20 * time.Millisecond})
	_, err := p.RequestAccounts(context.Background())
	assert.Error(t, err)
}

func TestRPCProvider_Ping(t *testing.T) {
	_, srv := newFakeNode(t, map[string]string{
		"eth_chainId": `{"jsonrpc":"2.0","id":1,"result":"0xaa36a7"}`,
	})

	p := NewRPCProvider(srv.URL, srv.Client())
	assert.NoError(t, p.Ping(context.Background()))
	assert.Equal(t, "wallet-rpc", p.Name())
}

func TestStaticProvider_ReturnsCopy(t *testing.T) {
	p := NewStaticProvider("0xaaa", "0xbbb")

	accounts, err := p.RequestAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0xaaa", "0xbbb"}, accounts)

	accounts[0] = "mutated"
	again, _ := p.RequestAccounts(context.Background())
	assert.Equal(t, "0xaaa", again[0])
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(config.WalletConfig{Provider: config.ProviderNone})
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewProvider(config.WalletConfig{Provider: config.ProviderStatic, Accounts: []string{"0xabc"}})
	require.NoError(t, err)
	assert.IsType(t, &StaticProvider{}, p)

	p, err = NewProvider(config.WalletConfig{Provider: config.ProviderRPC, RPCURL: "http://localhost:8545", Timeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &RPCProvider{}, p)

	_, err = NewProvider(config.WalletConfig{Provider: "hardware"})
	assert.Error(t, err)
}
