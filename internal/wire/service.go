package wire

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "tradegate.v1.Gateway"

// GatewayServer is the server-side contract of the gateway service: one
// method per trading or market-data operation.
type GatewayServer interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, req *Empty) (*LogoutResponse, error)
	GetUsage(ctx context.Context, req *Empty) (*UsageStatus, error)
	ListAccounts(ctx context.Context, req *Empty) (*ListAccountsResponse, error)
	GetAccountBalance(ctx context.Context, req *Empty) (*AccountBalance, error)

	PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*Trade, error)
	PlaceComboOrder(ctx context.Context, req *PlaceComboOrderRequest) (*ComboTrade, error)
	UpdateOrder(ctx context.Context, req *UpdateOrderRequest) (*Trade, error)
	CancelOrder(ctx context.Context, req *CancelOrderRequest) (*Trade, error)
	CancelComboOrder(ctx context.Context, req *CancelComboOrderRequest) (*ComboTrade, error)
	UpdateStatus(ctx context.Context, req *UpdateStatusRequest) (*Empty, error)
	UpdateComboStatus(ctx context.Context, req *UpdateStatusRequest) (*Empty, error)
	ListTrades(ctx context.Context, req *Empty) (*ListTradesResponse, error)
	ListComboTrades(ctx context.Context, req *Empty) (*ListComboTradesResponse, error)
	GetOrderDealRecords(ctx context.Context, req *GetOrderDealRecordsRequest) (*GetOrderDealRecordsResponse, error)

	ListPositions(ctx context.Context, req *ListPositionsRequest) (*ListPositionsResponse, error)
	ListPositionDetail(ctx context.Context, req *ListPositionDetailRequest) (*ListPositionDetailResponse, error)
	ListProfitLoss(ctx context.Context, req *ListProfitLossRequest) (*ListProfitLossResponse, error)
	ListProfitLossDetail(ctx context.Context, req *ListProfitLossDetailRequest) (*ListProfitLossDetailResponse, error)
	ListProfitLossSummary(ctx context.Context, req *ListProfitLossSummaryRequest) (*ListProfitLossSummaryResponse, error)
	GetSettlements(ctx context.Context, req *GetSettlementsRequest) (*GetSettlementsResponse, error)
	ListSettlements(ctx context.Context, req *GetSettlementsRequest) (*GetSettlementsResponse, error)
	GetMargin(ctx context.Context, req *GetMarginRequest) (*Margin, error)
	GetTradingLimits(ctx context.Context, req *GetTradingLimitsRequest) (*TradingLimits, error)

	GetStockReserveSummary(ctx context.Context, req *GetStockReserveSummaryRequest) (*ReserveStocksSummaryResponse, error)
	GetStockReserveDetail(ctx context.Context, req *GetStockReserveDetailRequest) (*ReserveStocksDetailResponse, error)
	ReserveStock(ctx context.Context, req *ReserveStockRequest) (*ReserveStockResponse, error)
	GetEarmarkingDetail(ctx context.Context, req *GetEarmarkingDetailRequest) (*EarmarkStocksDetailResponse, error)
	ReserveEarmarking(ctx context.Context, req *ReserveEarmarkingRequest) (*ReserveEarmarkingResponse, error)

	GetSnapshots(ctx context.Context, req *GetSnapshotsRequest) (*GetSnapshotsResponse, error)
	GetTicks(ctx context.Context, req *GetTicksRequest) (*Ticks, error)
	GetKbars(ctx context.Context, req *GetKbarsRequest) (*Kbars, error)
	GetDailyQuotes(ctx context.Context, req *GetDailyQuotesRequest) (*DailyQuotes, error)
	CreditEnquires(ctx context.Context, req *CreditEnquiresRequest) (*CreditEnquiresResponse, error)
	GetShortStockSources(ctx context.Context, req *GetShortStockSourcesRequest) (*GetShortStockSourcesResponse, error)
	GetScanners(ctx context.Context, req *GetScannersRequest) (*GetScannersResponse, error)
	GetPunish(ctx context.Context, req *Empty) (*Punish, error)
	GetNotice(ctx context.Context, req *Empty) (*Notice, error)

	FetchContracts(ctx context.Context, req *FetchContractsRequest) (*Empty, error)
	GetCAExpireTime(ctx context.Context, req *GetCAExpireTimeRequest) (*GetCAExpireTimeResponse, error)
	SubscribeTrade(ctx context.Context, req *SubscribeTradeRequest) (*SubscribeTradeResponse, error)
	UnsubscribeTrade(ctx context.Context, req *UnsubscribeTradeRequest) (*UnsubscribeTradeResponse, error)
}

// handler adapts one typed service method into the grpc.MethodDesc
// handler shape, decoding the request and threading any interceptor.
func handler[Req, Resp any](name string, call func(GatewayServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	full := "/" + ServiceName + "/" + name
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GatewayServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(GatewayServer), ctx, req.(*Req))
		})
	}
}

func method[Req, Resp any](name string, call func(GatewayServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{MethodName: name, Handler: handler(name, call)}
}

// ServiceDesc is the hand-maintained service descriptor. Keep the method
// list in sync with GatewayServer.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GatewayServer)(nil),
	Methods: []grpc.MethodDesc{
		method("Login", GatewayServer.Login),
		method("Logout", GatewayServer.Logout),
		method("GetUsage", GatewayServer.GetUsage),
		method("ListAccounts", GatewayServer.ListAccounts),
		method("GetAccountBalance", GatewayServer.GetAccountBalance),
		method("PlaceOrder", GatewayServer.PlaceOrder),
		method("PlaceComboOrder", GatewayServer.PlaceComboOrder),
		method("UpdateOrder", GatewayServer.UpdateOrder),
		method("CancelOrder", GatewayServer.CancelOrder),
		method("CancelComboOrder", GatewayServer.CancelComboOrder),
		method("UpdateStatus", GatewayServer.UpdateStatus),
		method("UpdateComboStatus", GatewayServer.UpdateComboStatus),
		method("ListTrades", GatewayServer.ListTrades),
		method("ListComboTrades", GatewayServer.ListComboTrades),
		method("GetOrderDealRecords", GatewayServer.GetOrderDealRecords),
		method("ListPositions", GatewayServer.ListPositions),
		method("ListPositionDetail", GatewayServer.ListPositionDetail),
		method("ListProfitLoss", GatewayServer.ListProfitLoss),
		method("ListProfitLossDetail", GatewayServer.ListProfitLossDetail),
		method("ListProfitLossSummary", GatewayServer.ListProfitLossSummary),
		method("GetSettlements", GatewayServer.GetSettlements),
		method("ListSettlements", GatewayServer.ListSettlements),
		method("GetMargin", GatewayServer.GetMargin),
		method("GetTradingLimits", GatewayServer.GetTradingLimits),
		method("GetStockReserveSummary", GatewayServer.GetStockReserveSummary),
		method("GetStockReserveDetail", GatewayServer.GetStockReserveDetail),
		method("ReserveStock", GatewayServer.ReserveStock),
		method("GetEarmarkingDetail", GatewayServer.GetEarmarkingDetail),
		method("ReserveEarmarking", GatewayServer.ReserveEarmarking),
		method("GetSnapshots", GatewayServer.GetSnapshots),
		method("GetTicks", GatewayServer.GetTicks),
		method("GetKbars", GatewayServer.GetKbars),
		method("GetDailyQuotes", GatewayServer.GetDailyQuotes),
		method("CreditEnquires", GatewayServer.CreditEnquires),
		method("GetShortStockSources", GatewayServer.GetShortStockSources),
		method("GetScanners", GatewayServer.GetScanners),
		method("GetPunish", GatewayServer.GetPunish),
		method("GetNotice", GatewayServer.GetNotice),
		method("FetchContracts", GatewayServer.FetchContracts),
		method("GetCAExpireTime", GatewayServer.GetCAExpireTime),
		method("SubscribeTrade", GatewayServer.SubscribeTrade),
		method("UnsubscribeTrade", GatewayServer.UnsubscribeTrade),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterGatewayServer registers srv with the gRPC registrar.
func RegisterGatewayServer(s grpc.ServiceRegistrar, srv GatewayServer) {
	s.RegisterService(&ServiceDesc, srv)
}
