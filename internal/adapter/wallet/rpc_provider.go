package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
)

// JSON-RPC error code for an unsupported method.
const rpcMethodNotFound = -32601

const maxRPCResponseBytes = 1 << 20

// RPCError is an error object returned by the JSON-RPC endpoint.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// RPCProvider requests accounts from an Ethereum JSON-RPC endpoint
// (a node or wallet bridge exposing eth_requestAccounts).
type RPCProvider struct {
	url    string
	client *http.Client
	nextID atomic.Uint64
}

// NewRPCProvider creates a provider talking to url.
func NewRPCProvider(url string, client *http.Client) *RPCProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &RPCProvider{url: url, client: client}
}

// RequestAccounts calls eth_requestAccounts, falling back to eth_accounts
// on endpoints that do not implement it.
func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	err := p.call(ctx, "eth_requestAccounts", &accounts)

	var rpcErr *RPCError
	if errors.As(err, &rpcErr) && rpcErr.Code == rpcMethodNotFound {
		accounts = nil
		err = p.call(ctx, "eth_accounts", &accounts)
	}
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Ping checks that the endpoint answers eth_chainId.
func (p *RPCProvider) Ping(ctx context.Context) error {
	var chainID string
	return p.call(ctx, "eth_chainId", &chainID)
}

// Name returns the dependency name.
func (p *RPCProvider) Name() string {
	return "wallet-rpc"
}

func (p *RPCProvider) call(ctx context.Context, method string, out interface{}) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      p.nextID.Add(1),
		Method:  method,
		Params:  []interface{}{},
	})
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("calling %s: unexpected status %d", method, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRPCResponseBytes)).Decode(&rpcResp); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if len(rpcResp.Result) == 0 {
		return fmt.Errorf("%s: empty result", method)
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("decoding %s result: %w", method, err)
	}
	return nil
}
