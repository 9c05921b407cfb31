package tradegate

import (
	"testing"
)

func TestNewClient(t *testing.T) {
	c, err := NewClient("127.0.0.1:50051")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if c.GatewayClient == nil {
		t.Fatal("expected non-nil gateway client")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
