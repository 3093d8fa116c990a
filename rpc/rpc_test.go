package rpc

import (
	"math/big"
	"os"
	"testing"
	"time"
)

func TestConnect(t *testing.T) {
	// Get RPC URL from environment
	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		t.Skip("ETH_RPC_URL not set, skipping connection test")
	}

	t.Run("successful connection", func(t *testing.T) {
		result := Connect(rpcURL)

		if result.Error != nil {
			t.Fatalf("Failed to connect to RPC: %v", result.Error)
		}
		if result.Client == nil {
			t.Fatal("Client is nil despite no error")
		}
		if result.Client.URL != rpcURL {
			t.Errorf("Expected URL %s, got %s", rpcURL, result.Client.URL)
		}
	})

	t.Run("gas price", func(t *testing.T) {
		result := ConnectWithTimeout(rpcURL, 10*time.Second)
		if result.Error != nil {
			t.Fatalf("Failed to connect with custom timeout: %v", result.Error)
		}

		quote, err := SuggestGasPrice(result.Client)
		if err != nil {
			t.Fatalf("SuggestGasPrice failed: %v", err)
		}
		if quote.Wei == nil || quote.Wei.Sign() <= 0 {
			t.Errorf("Expected positive gas price, got %v", quote.Wei)
		}
		t.Logf("Suggested gas price: %s", quote.Gwei())
	})
}

func TestSuggestGasPrice_NoClient(t *testing.T) {
	if _, err := SuggestGasPrice(nil); err == nil {
		t.Fatal("expected error without a client")
	}
	if _, err := SuggestGasPrice(&Client{}); err == nil {
		t.Fatal("expected error with an empty client")
	}
}

func TestFormatGwei(t *testing.T) {
	tests := []struct {
		wei  *big.Int
		want string
	}{
		{nil, "-"},
		{big.NewInt(0), "0.00 gwei"},
		{big.NewInt(1_000_000_000), "1.00 gwei"},
		{big.NewInt(12_345_000_000), "12.35 gwei"},
	}
	for _, tt := range tests {
		if got := FormatGwei(tt.wei); got != tt.want {
			t.Errorf("FormatGwei(%v) = %q, want %q", tt.wei, got, tt.want)
		}
	}
}
