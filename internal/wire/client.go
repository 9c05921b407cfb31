package wire

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// retryServiceConfig retries UNAVAILABLE, which surfaces while the
// gateway process is restarting.
const retryServiceConfig = `{"methodConfig": [{
	"name": [{"service": "` + ServiceName + `"}],
	"retryPolicy": {
		"MaxAttempts": 3,
		"InitialBackoff": "0.1s",
		"MaxBackoff": "1s",
		"BackoffMultiplier": 2,
		"RetryableStatusCodes": ["UNAVAILABLE"]
	}
}]}`

// NewConn opens a client connection to a gateway at target, wired for
// the gateway's JSON codec. Target accepts the usual gRPC forms,
// including "unix://" addresses.
func NewConn(target string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultServiceConfig(retryServiceConfig),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", target, err)
	}
	return conn, nil
}

// GatewayClient is the client-side counterpart of GatewayServer.
type GatewayClient struct {
	cc grpc.ClientConnInterface
}

// NewGatewayClient wraps an existing connection.
func NewGatewayClient(cc grpc.ClientConnInterface) *GatewayClient {
	return &GatewayClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, name string, req any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+name, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *GatewayClient) Login(ctx context.Context, req *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, "Login", req, opts...)
}

func (c *GatewayClient) Logout(ctx context.Context, req *Empty, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, "Logout", req, opts...)
}

func (c *GatewayClient) GetUsage(ctx context.Context, req *Empty, opts ...grpc.CallOption) (*UsageStatus, error) {
	return invoke[UsageStatus](ctx, c.cc, "GetUsage", req, opts...)
}

func (c *GatewayClient) ListAccounts(ctx context.Context, req *Empty, opts ...grpc.CallOption) (*ListAccountsResponse, error) {
	return invoke[ListAccountsResponse](ctx, c.cc, "ListAccounts", req, opts...)
}

func (c *GatewayClient) GetAccountBalance(ctx context.Context, req *Empty, opts ...grpc.CallOption) (*AccountBalance, error) {
	return invoke[AccountBalance](ctx, c.cc, "GetAccountBalance", req, opts...)
}

func (c *GatewayClient) PlaceOrder(ctx context.Context, req *PlaceOrderRequest, opts ...grpc.CallOption) (*Trade, error) {
	return invoke[Trade](ctx, c.cc, "PlaceOrder", req, opts...)
}

func (c *GatewayClient) PlaceComboOrder(ctx context.Context, req *PlaceComboOrderRequest, opts ...grpc.CallOption) (*ComboTrade, error) {
	return invoke[ComboTrade](ctx, c.cc, "PlaceComboOrder", req, opts...)
}

func (c *GatewayClient) UpdateOrder(ctx context.Context, req *UpdateOrderRequest, opts ...grpc.CallOption) (*Trade, error) {
	return invoke[Trade](ctx, c.cc, "UpdateOrder", req, opts...)
}

func (c *GatewayClient) CancelOrder(ctx context.Context, req *CancelOrderRequest, opts ...grpc.CallOption) (*Trade, error) {
	return invoke[Trade](ctx, c.cc, "CancelOrder", req, opts...)
}

func (c *GatewayClient) CancelComboOrder(ctx context.Context, req *CancelComboOrderRequest, opts ...grpc.CallOption) (*ComboTrade, error) {
	return invoke[ComboTrade](ctx, c.cc, "CancelComboOrder", req, opts...)
}

func (c *GatewayClient) UpdateStatus(ctx context.Context, req *UpdateStatusRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "UpdateStatus", req, opts...)
}

func (c *GatewayClient) UpdateComboStatus(ctx context.Context, req *UpdateStatusRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "UpdateComboStatus", req, opts...)
}

func (c *GatewayClient) ListTrades(ctx context.Context, req *Empty, opts ...grpc.CallOption) (*ListTradesResponse, error) {
	return invoke[ListTradesResponse](ctx, c.cc, "ListTrades", req, opts...)
}

func (c *GatewayClient) ListComboTrades(ctx context.Context, req *Empty, opts ...grpc.CallOption) (*ListComboTradesResponse, error) {
	return invoke[ListComboTradesResponse](ctx, c.cc, "ListComboTrades", req, opts...)
}

func (c *GatewayClient) GetOrderDealRecords(ctx context.Context, req *GetOrderDealRecordsRequest, opts ...grpc.CallOption) (*GetOrderDealRecordsResponse, error) {
	return invoke[GetOrderDealRecordsResponse](ctx, c.cc, "GetOrderDealRecords", req, opts...)
}

func (c *GatewayClient) ListPositions(ctx context.Context, req *ListPositionsRequest, opts ...grpc.CallOption) (*ListPositionsResponse, error) {
	return invoke[ListPositionsResponse](ctx, c.cc, "ListPositions", req, opts...)
}

func (c *GatewayClient) ListPositionDetail(ctx context.Context, req *ListPositionDetailRequest, opts ...grpc.CallOption) (*ListPositionDetailResponse, error) {
	return invoke[ListPositionDetailResponse](ctx, c.cc, "ListPositionDetail", req, opts...)
}

func (c *GatewayClient) ListProfitLoss(ctx context.Context, req *ListProfitLossRequest, opts ...grpc.CallOption) (*ListProfitLossResponse, error) {
	return invoke[ListProfitLossResponse](ctx, c.cc, "ListProfitLoss", req, opts...)
}

func (c *GatewayClient) ListProfitLossDetail(ctx context.Context, req *ListProfitLossDetailRequest, opts ...grpc.CallOption) (*ListProfitLossDetailResponse, error) {
	return invoke[ListProfitLossDetailResponse](ctx, c.cc, "ListProfitLossDetail", req, opts...)
}

func (c *GatewayClient) ListProfitLossSummary(ctx context.Context, req *ListProfitLossSummaryRequest, opts ...grpc.CallOption) (*ListProfitLossSummaryResponse, error) {
	return invoke[ListProfitLossSummaryResponse](ctx, c.cc, "ListProfitLossSummary", req, opts...)
}

func (c *GatewayClient) GetSettlements(ctx context.Context, req *GetSettlementsRequest, opts ...grpc.CallOption) (*GetSettlementsResponse, error) {
	return invoke[GetSettlementsResponse](ctx, c.cc, "GetSettlements", req, opts...)
}

func (c *GatewayClient) ListSettlements(ctx context.Context, req *GetSettlementsRequest, opts ...grpc.CallOption) (*GetSettlementsResponse, error) {
	return invoke[GetSettlementsResponse](ctx, c.cc, "ListSettlements", req, opts...)
}

func (c *GatewayClient) GetMargin(ctx context.Context, req *GetMarginRequest, opts ...grpc.CallOption) (*Margin, error) {
	return invoke[Margin](ctx, c.cc, "GetMargin", req, opts...)
}

func (c *GatewayClient) GetTradingLimits(ctx context.Context, req *GetTradingLimitsRequest, opts ...grpc.CallOption) (*TradingLimits, error) {
	return invoke[TradingLimits](ctx, c.cc, "GetTradingLimits", req, opts...)
}

func (c *GatewayClient) GetStockReserveSummary(ctx context.Context, req *GetStockReserveSummaryRequest, opts ...grpc.CallOption) (*ReserveStocksSummaryResponse, error) {
	return invoke[ReserveStocksSummaryResponse](ctx, c.cc, "GetStockReserveSummary", req, opts...)
}

func (c *GatewayClient) GetStockReserveDetail(ctx context.Context, req *GetStockReserveDetailRequest, opts ...grpc.CallOption) (*ReserveStocksDetailResponse, error) {
	return invoke[ReserveStocksDetailResponse](ctx, c.cc, "GetStockReserveDetail", req, opts...)
}

func (c *GatewayClient) ReserveStock(ctx context.Context, req *ReserveStockRequest, opts ...grpc.CallOption) (*ReserveStockResponse, error) {
	return invoke[ReserveStockResponse](ctx, c.cc, "ReserveStock", req, opts...)
}

func (c *GatewayClient) GetEarmarkingDetail(ctx context.Context, req *GetEarmarkingDetailRequest, opts ...grpc.CallOption) (*EarmarkStocksDetailResponse, error) {
	return invoke[EarmarkStocksDetailResponse](ctx, c.cc, "GetEarmarkingDetail", req, opts...)
}

func (c *GatewayClient) ReserveEarmarking(ctx context.Context, req *ReserveEarmarkingRequest, opts ...grpc.CallOption) (*ReserveEarmarkingResponse, error) {
	return invoke[ReserveEarmarkingResponse](ctx, c.cc, "ReserveEarmarking", req, opts...)
}

func (c *GatewayClient) GetSnapshots(ctx context.Context, req *GetSnapshotsRequest, opts ...grpc.CallOption) (*GetSnapshotsResponse, error) {
	return invoke[GetSnapshotsResponse](ctx, c.cc, "GetSnapshots", req, opts...)
}

func (c *GatewayClient) GetTicks(ctx context.Context, req *GetTicksRequest, opts ...grpc.CallOption) (*Ticks, error) {
	return invoke[Ticks](ctx, c.cc, "GetTicks", req, opts...)
}

func (c *GatewayClient) GetKbars(ctx context.Context, req *GetKbarsRequest, opts ...grpc.CallOption) (*Kbars, error) {
	return invoke[Kbars](ctx, c.cc, "GetKbars", req, opts...)
}

func (c *GatewayClient) GetDailyQuotes(ctx context.Context, req *GetDailyQuotesRequest, opts ...grpc.CallOption) (*DailyQuotes, error) {
	return invoke[DailyQuotes](ctx, c.cc, "GetDailyQuotes", req, opts...)
}

func (c *GatewayClient) CreditEnquires(ctx context.Context, req *CreditEnquiresRequest, opts ...grpc.CallOption) (*CreditEnquiresResponse, error) {
	return invoke[CreditEnquiresResponse](ctx, c.cc, "CreditEnquires", req, opts...)
}

func (c *GatewayClient) GetShortStockSources(ctx context.Context, req *GetShortStockSourcesRequest, opts ...grpc.CallOption) (*GetShortStockSourcesResponse, error) {
	return invoke[GetShortStockSourcesResponse](ctx, c.cc, "GetShortStockSources", req, opts...)
}

func (c *GatewayClient) GetScanners(ctx context.Context, req *GetScannersRequest, opts ...grpc.CallOption) (*GetScannersResponse, error) {
	return invoke[GetScannersResponse](ctx, c.cc, "GetScanners", req, opts...)
}

func (c *GatewayClient) GetPunish(ctx context.Context, req *Empty, opts ...grpc.CallOption) (*Punish, error) {
	return invoke[Punish](ctx, c.cc, "GetPunish", req, opts...)
}

func (c *GatewayClient) GetNotice(ctx context.Context, req *Empty, opts ...grpc.CallOption) (*Notice, error) {
	return invoke[Notice](ctx, c.cc, "GetNotice", req, opts...)
}

func (c *GatewayClient) FetchContracts(ctx context.Context, req *FetchContractsRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "FetchContracts", req, opts...)
}

func (c *GatewayClient) GetCAExpireTime(ctx context.Context, req *GetCAExpireTimeRequest, opts ...grpc.CallOption) (*GetCAExpireTimeResponse, error) {
	return invoke[GetCAExpireTimeResponse](ctx, c.cc, "GetCAExpireTime", req, opts...)
}

func (c *GatewayClient) SubscribeTrade(ctx context.Context, req *SubscribeTradeRequest, opts ...grpc.CallOption) (*SubscribeTradeResponse, error) {
	return invoke[SubscribeTradeResponse](ctx, c.cc, "SubscribeTrade", req, opts...)
}

func (c *GatewayClient) UnsubscribeTrade(ctx context.Context, req *UnsubscribeTradeRequest, opts ...grpc.CallOption) (*UnsubscribeTradeResponse, error) {
	return invoke[UnsubscribeTradeResponse](ctx, c.cc, "UnsubscribeTrade", req, opts...)
}
