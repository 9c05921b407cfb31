// Package tradegate provides a Go SDK for the gateway: a connection
// wrapper around the generated-style client with session helpers.
package tradegate

import (
	"context"

	"google.golang.org/grpc"

	"tradegate/internal/wire"
)

// Client owns a connection to one gateway process.
type Client struct {
	conn *grpc.ClientConn
	*wire.GatewayClient
}

// NewClient dials target and returns a ready client. Target accepts
// the usual gRPC forms, including "unix://" addresses.
func NewClient(target string) (*Client, error) {
	conn, err := wire.NewConn(target)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, GatewayClient: wire.NewGatewayClient(conn)}, nil
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// LoginAndSubscribe logs in and enables order-event delivery in one
// call, returning the session's accounts.
func (c *Client) LoginAndSubscribe(ctx context.Context, apiKey, secretKey string) ([]*wire.Account, error) {
	resp, err := c.Login(ctx, &wire.LoginRequest{APIKey: apiKey, SecretKey: secretKey})
	if err != nil {
		return nil, err
	}
	if _, err := c.SubscribeTrade(ctx, &wire.SubscribeTradeRequest{}); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}
