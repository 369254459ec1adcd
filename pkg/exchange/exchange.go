package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/rs/zerolog"

	"nbx/internal/transport"
	"nbx/pkg/core"
)

// Exchange is a client for the exchange REST API. The credential header and
// base URL are computed once at construction and are immutable for the
// client's lifetime, which makes the client safe for concurrent use.
type Exchange struct {
	config     *core.Config
	httpClient *transport.Client
	logger     zerolog.Logger
}

// ClientOption is a functional option for configuring the Exchange.
type ClientOption func(*clientOptions)

type clientOptions struct {
	logger zerolog.Logger
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// New creates a new Exchange client with the given configuration.
// When credentials are present, the Basic Authorization header is encoded
// once and attached to every request.
func New(config *core.Config, opts ...ClientOption) (*Exchange, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &clientOptions{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	headers := map[string]string{
		"Accept": "application/json",
	}
	if config.Credentials != nil {
		headers["Authorization"] = "Basic " + config.Credentials.BasicAuth()
	}

	httpClient := transport.NewClient(&transport.Config{
		BaseURL: config.BaseURL(),
		Timeout: config.Timeout,
		Headers: headers,
	}, options.logger)

	return &Exchange{
		config:     config,
		httpClient: httpClient,
		logger:     options.logger,
	}, nil
}

// Close releases resources used by the client.
func (e *Exchange) Close() error {
	return e.httpClient.Close()
}

// do executes the request and decodes the response body into out.
// Non-2xx responses become *core.APIError with the raw body preserved;
// transport faults propagate as wrapped errors from the HTTP client.
func (e *Exchange) do(ctx context.Context, req *core.Request, out any) error {
	if req.Signed && e.config.Credentials == nil {
		return core.ErrNoCredentials
	}

	resp, err := e.httpClient.Do(ctx, req)
	if err != nil {
		return err
	}

	if resp.IsError() {
		return core.NewAPIError(resp.StatusCode, resp.Body)
	}

	if out == nil {
		return nil
	}
	if err := resp.Unmarshal(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// signedParams stamps the parameter set for a signed call. The timestamp is
// captured fresh on every invocation, never reused.
func signedParams(params core.Params, o *Options) core.Params {
	if params == nil {
		params = make(core.Params)
	}
	params["timestamp"] = time.Now().UnixMilli()
	if o.ReceiveWindow > 0 {
		params["receiveWindow"] = o.ReceiveWindow.Milliseconds()
	}
	return params
}

// GetExchangeInfo fetches the current trading rules and symbol information.
// Also serves as a connectivity check for the REST API.
func (e *Exchange) GetExchangeInfo(ctx context.Context) (*ExchangeInfo, error) {
	req := core.NewRequest(core.OpExchangeInfo)

	var info ExchangeInfo
	if err := e.do(ctx, req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetDepth fetches the order book depth for a symbol.
func (e *Exchange) GetDepth(ctx context.Context, symbol core.Symbol, opts ...Option) (*Depth, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"symbol": symbol.String(),
	}
	if options.Limit > 0 {
		params["limit"] = options.Limit
	}

	req := core.NewRequest(core.OpDepth).SetQueryParams(params)

	var depth Depth
	if err := e.do(ctx, req, &depth); err != nil {
		return nil, err
	}
	return &depth, nil
}

// GetTrades fetches recent trades for a symbol. With WithTradeID set, trades
// with id >= tradeID are returned instead of the most recent.
func (e *Exchange) GetTrades(ctx context.Context, symbol core.Symbol, opts ...Option) ([]TradeRecord, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"symbol": symbol.String(),
	}
	if options.Limit > 0 {
		params["limit"] = options.Limit
	}
	if options.TradeID > 0 {
		params["tradeId"] = options.TradeID
	}

	req := core.NewRequest(core.OpTrades).SetQueryParams(signedParams(params, options))

	var trades []TradeRecord
	if err := e.do(ctx, req, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// GetKlines fetches candlestick bars for a symbol at the given interval.
func (e *Exchange) GetKlines(ctx context.Context, symbol core.Symbol, interval core.Interval, opts ...Option) ([]Kline, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"symbol":   symbol.String(),
		"interval": interval.String(),
	}
	if options.Limit > 0 {
		params["limit"] = options.Limit
	}
	if !options.StartTime.IsZero() {
		params["startTime"] = options.StartTime.UnixMilli()
	}
	if !options.EndTime.IsZero() {
		params["endTime"] = options.EndTime.UnixMilli()
	}

	req := core.NewRequest(core.OpKlines).SetQueryParams(params)

	var klines []Kline
	if err := e.do(ctx, req, &klines); err != nil {
		return nil, err
	}
	return klines, nil
}

// GetTickerDay fetches 24-hour rolling window statistics for a symbol.
func (e *Exchange) GetTickerDay(ctx context.Context, symbol core.Symbol) (*DayTicker, error) {
	req := core.NewRequest(core.OpTickerDay).SetQuery("symbol", symbol.String())

	var ticker DayTicker
	if err := e.do(ctx, req, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// GetTickerPrice fetches the latest traded price for a symbol.
func (e *Exchange) GetTickerPrice(ctx context.Context, symbol core.Symbol) (*PriceTicker, error) {
	req := core.NewRequest(core.OpTickerPrice).SetQuery("symbol", symbol.String())

	var ticker PriceTicker
	if err := e.do(ctx, req, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// GetTickerBook fetches the best bid and ask for a symbol.
func (e *Exchange) GetTickerBook(ctx context.Context, symbol core.Symbol) (*BookTicker, error) {
	req := core.NewRequest(core.OpTickerBook).SetQuery("symbol", symbol.String())

	var ticker BookTicker
	if err := e.do(ctx, req, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// GetTickerSupply fetches the circulating supply for an asset.
func (e *Exchange) GetTickerSupply(ctx context.Context, asset core.Asset) (*SupplyTicker, error) {
	req := core.NewRequest(core.OpTickerSupply).SetQuery("asset", asset.String())

	var ticker SupplyTicker
	if err := e.do(ctx, req, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// NewOrder submits a new order. Price is mandatory for limit orders and is
// supplied with WithPrice; when absent, the price key is omitted from the
// outgoing body entirely. No client-side validation is performed: the
// exchange's rejection surfaces as an *core.APIError.
func (e *Exchange) NewOrder(ctx context.Context, symbol core.Symbol, side core.OrderSide, orderType core.OrderType, quantity apd.Decimal, opts ...Option) (*Order, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"symbol":   symbol.String(),
		"side":     side.String(),
		"type":     orderType.String(),
		"quantity": quantity.String(),
	}
	if options.Price != nil {
		params["price"] = options.Price.String()
	}

	req := core.NewRequest(core.OpPlaceOrder).SetBody(signedParams(params, options))

	var order Order
	if err := e.do(ctx, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// LimitBuy places a limit buy order. Pure alias over NewOrder.
func (e *Exchange) LimitBuy(ctx context.Context, symbol core.Symbol, price, quantity apd.Decimal, opts ...Option) (*Order, error) {
	return e.NewOrder(ctx, symbol, core.SideBuy, core.TypeLimit, quantity, append(opts, WithPrice(price))...)
}

// LimitSell places a limit sell order. Pure alias over NewOrder.
func (e *Exchange) LimitSell(ctx context.Context, symbol core.Symbol, price, quantity apd.Decimal, opts ...Option) (*Order, error) {
	return e.NewOrder(ctx, symbol, core.SideSell, core.TypeLimit, quantity, append(opts, WithPrice(price))...)
}

// MarketBuy places a market buy order. Pure alias over NewOrder.
func (e *Exchange) MarketBuy(ctx context.Context, symbol core.Symbol, quantity apd.Decimal, opts ...Option) (*Order, error) {
	return e.NewOrder(ctx, symbol, core.SideBuy, core.TypeMarket, quantity, opts...)
}

// MarketSell places a market sell order. Pure alias over NewOrder.
func (e *Exchange) MarketSell(ctx context.Context, symbol core.Symbol, quantity apd.Decimal, opts ...Option) (*Order, error) {
	return e.NewOrder(ctx, symbol, core.SideSell, core.TypeMarket, quantity, opts...)
}

// GetOrder fetches the status of an order.
func (e *Exchange) GetOrder(ctx context.Context, symbol core.Symbol, orderID int64, opts ...Option) (*Order, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"symbol":  symbol.String(),
		"orderId": orderID,
	}

	req := core.NewRequest(core.OpGetOrder).SetQueryParams(signedParams(params, options))

	var order Order
	if err := e.do(ctx, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder cancels an active order. The exchange requires the parameters
// as a JSON body on the DELETE request.
func (e *Exchange) CancelOrder(ctx context.Context, symbol core.Symbol, orderID int64, opts ...Option) (*Order, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"symbol":  symbol.String(),
		"orderId": orderID,
	}

	req := core.NewRequest(core.OpCancelOrder).SetBody(signedParams(params, options))

	var order Order
	if err := e.do(ctx, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOpenOrders fetches all open orders for a symbol.
func (e *Exchange) GetOpenOrders(ctx context.Context, symbol core.Symbol, opts ...Option) ([]Order, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"symbol": symbol.String(),
	}

	req := core.NewRequest(core.OpOpenOrders).SetQueryParams(signedParams(params, options))

	var orders []Order
	if err := e.do(ctx, req, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAllOrders fetches orders for a symbol: active, canceled or filled.
// With WithOrderID set, orders with id >= orderID are returned instead of the
// most recent.
func (e *Exchange) GetAllOrders(ctx context.Context, symbol core.Symbol, opts ...Option) ([]Order, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"symbol": symbol.String(),
	}
	if options.OrderID > 0 {
		params["orderId"] = options.OrderID
	}
	if options.Limit > 0 {
		params["limit"] = options.Limit
	}

	req := core.NewRequest(core.OpAllOrders).SetQueryParams(signedParams(params, options))

	var orders []Order
	if err := e.do(ctx, req, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAccountInfo fetches current account information.
func (e *Exchange) GetAccountInfo(ctx context.Context, opts ...Option) (*AccountInfo, error) {
	options := ApplyOptions(opts...)

	req := core.NewRequest(core.OpAccountInfo).SetQueryParams(signedParams(nil, options))

	var info AccountInfo
	if err := e.do(ctx, req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetAccountLimits fetches the account's withdrawal limits.
func (e *Exchange) GetAccountLimits(ctx context.Context, opts ...Option) (*AccountLimits, error) {
	options := ApplyOptions(opts...)

	req := core.NewRequest(core.OpAccountLimits).SetQueryParams(signedParams(nil, options))

	var limits AccountLimits
	if err := e.do(ctx, req, &limits); err != nil {
		return nil, err
	}
	return &limits, nil
}

// GetAccountTrades fetches trades executed by the account for a symbol.
// With WithTradeID set, trades with id >= tradeID are returned instead of the
// most recent.
func (e *Exchange) GetAccountTrades(ctx context.Context, symbol core.Symbol, opts ...Option) ([]AccountTrade, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"symbol": symbol.String(),
	}
	if options.Limit > 0 {
		params["limit"] = options.Limit
	}
	if options.TradeID > 0 {
		params["tradeId"] = options.TradeID
	}

	req := core.NewRequest(core.OpAccountTrades).SetQueryParams(signedParams(params, options))

	var trades []AccountTrade
	if err := e.do(ctx, req, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// GetOrderTrades fetches the trades that filled a specific order.
func (e *Exchange) GetOrderTrades(ctx context.Context, symbol core.Symbol, orderID int64, opts ...Option) ([]AccountTrade, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"symbol":  symbol.String(),
		"orderId": orderID,
	}

	req := core.NewRequest(core.OpOrderTrades).SetQueryParams(signedParams(params, options))

	var trades []AccountTrade
	if err := e.do(ctx, req, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// GenerateDepositAddress requests a fresh deposit address for an asset.
func (e *Exchange) GenerateDepositAddress(ctx context.Context, asset core.Asset, opts ...Option) (*DepositAddress, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"asset": asset.String(),
	}

	req := core.NewRequest(core.OpDepositAddress).SetBody(signedParams(params, options))

	var address DepositAddress
	if err := e.do(ctx, req, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// Withdraw submits a withdrawal of the given amount to the given address.
func (e *Exchange) Withdraw(ctx context.Context, asset core.Asset, address string, amount apd.Decimal, opts ...Option) (*WithdrawalReceipt, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"asset":   asset.String(),
		"address": address,
		"amount":  amount.String(),
	}

	req := core.NewRequest(core.OpWithdraw).SetBody(signedParams(params, options))

	var receipt WithdrawalReceipt
	if err := e.do(ctx, req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// GetDepositHistory fetches the deposit history for an asset.
func (e *Exchange) GetDepositHistory(ctx context.Context, asset core.Asset, opts ...Option) ([]Deposit, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"asset": asset.String(),
	}
	if !options.StartTime.IsZero() {
		params["startTime"] = options.StartTime.UnixMilli()
	}
	if !options.EndTime.IsZero() {
		params["endTime"] = options.EndTime.UnixMilli()
	}

	req := core.NewRequest(core.OpDepositHistory).SetQueryParams(signedParams(params, options))

	var deposits []Deposit
	if err := e.do(ctx, req, &deposits); err != nil {
		return nil, err
	}
	return deposits, nil
}

// GetWithdrawHistory fetches the withdrawal history for an asset.
func (e *Exchange) GetWithdrawHistory(ctx context.Context, asset core.Asset, opts ...Option) ([]Withdrawal, error) {
	options := ApplyOptions(opts...)

	params := core.Params{
		"asset": asset.String(),
	}
	if !options.StartTime.IsZero() {
		params["startTime"] = options.StartTime.UnixMilli()
	}
	if !options.EndTime.IsZero() {
		params["endTime"] = options.EndTime.UnixMilli()
	}

	req := core.NewRequest(core.OpWithdrawHistory).SetQueryParams(signedParams(params, options))

	var withdrawals []Withdrawal
	if err := e.do(ctx, req, &withdrawals); err != nil {
		return nil, err
	}
	return withdrawals, nil
}

// GetDNSSettings fetches the DNS records for a Handshake domain.
func (e *Exchange) GetDNSSettings(ctx context.Context, domain string) (*DNSSettings, error) {
	req := core.NewRequest(core.OpDNSSettings)
	req.SetPath(fmt.Sprintf("%s/%s", req.Path, domain))

	var settings DNSSettings
	if err := e.do(ctx, req, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateDNSSettings replaces the DNS records for a Handshake domain.
func (e *Exchange) UpdateDNSSettings(ctx context.Context, domain string, records []DNSRecord) (*DNSUpdateResult, error) {
	req := core.NewRequest(core.OpUpdateDNSSettings)
	req.SetPath(fmt.Sprintf("%s/%s", req.Path, domain))
	req.SetBody(core.Params{"records": records})

	var result DNSUpdateResult
	if err := e.do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
