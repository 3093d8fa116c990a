package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
)

// Client wraps an Ethereum RPC client
type Client struct {
	*ethclient.Client
	URL string
}

// ConnectResult holds the result of an RPC connection attempt
type ConnectResult struct {
	Client *Client
	Error  error
}

// Connect attempts to connect to an Ethereum RPC endpoint
func Connect(url string) ConnectResult {
	return ConnectWithTimeout(url, 8*time.Second)
}

// ConnectWithTimeout attempts to connect with a custom timeout
func ConnectWithTimeout(url string, timeout time.Duration) ConnectResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return ConnectResult{Client: nil, Error: err}
	}

	return ConnectResult{
		Client: &Client{
			Client: client,
			URL:    url,
		},
		Error: nil,
	}
}

// GasQuote is a suggested gas price at a point in time
type GasQuote struct {
	Wei       *big.Int
	FetchedAt time.Time
}

// Gwei formats the quote in gwei with two decimals
func (q GasQuote) Gwei() string {
	return FormatGwei(q.Wei)
}

// SuggestGasPrice asks the node for its gas price suggestion
func SuggestGasPrice(client *Client) (GasQuote, error) {
	return SuggestGasPriceWithTimeout(client, 8*time.Second)
}

// SuggestGasPriceWithTimeout asks for a gas price with a custom timeout
func SuggestGasPriceWithTimeout(client *Client, timeout time.Duration) (GasQuote, error) {
	if client == nil || client.Client == nil {
		return GasQuote{}, fmt.Errorf("no RPC client (set ETH_RPC_URL or INFURA_API_KEY)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	wei, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return GasQuote{}, fmt.Errorf("suggest gas price: %w", err)
	}
	return GasQuote{Wei: wei, FetchedAt: time.Now()}, nil
}

// FormatGwei renders a wei amount as gwei
func FormatGwei(wei *big.Int) string {
	if wei == nil {
		return "-"
	}
	gwei := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.GWei))
	return gwei.Text('f', 2) + " gwei"
}
