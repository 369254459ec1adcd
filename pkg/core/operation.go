package core

import "net/http"

// Operation represents a type of action that can be performed on the exchange.
type Operation int

// Operation constants define all supported exchange operations.
const (
	// OpExchangeInfo retrieves trading rules and symbol information.
	OpExchangeInfo Operation = iota
	// OpDepth retrieves the current order book depth.
	OpDepth
	// OpTrades retrieves recent trades for a symbol.
	OpTrades
	// OpKlines retrieves candlestick/OHLCV data.
	OpKlines
	// OpTickerDay retrieves 24-hour rolling window statistics.
	OpTickerDay
	// OpTickerPrice retrieves the latest traded price.
	OpTickerPrice
	// OpTickerBook retrieves the best bid and ask.
	OpTickerBook
	// OpTickerSupply retrieves circulating supply for an asset.
	OpTickerSupply
	// OpPlaceOrder submits a new order to the exchange.
	OpPlaceOrder
	// OpGetOrder retrieves details of a specific order.
	OpGetOrder
	// OpCancelOrder cancels an existing order.
	OpCancelOrder
	// OpOpenOrders retrieves all open orders for a symbol.
	OpOpenOrders
	// OpAllOrders retrieves historical orders for a symbol.
	OpAllOrders
	// OpAccountInfo retrieves account balances and permissions.
	OpAccountInfo
	// OpAccountLimits retrieves withdrawal limits for the account.
	OpAccountLimits
	// OpAccountTrades retrieves trades executed by the account.
	OpAccountTrades
	// OpOrderTrades retrieves trades belonging to a single order.
	OpOrderTrades
	// OpDepositAddress generates a deposit address for an asset.
	OpDepositAddress
	// OpWithdraw submits a withdrawal request.
	OpWithdraw
	// OpDepositHistory retrieves deposit history for an asset.
	OpDepositHistory
	// OpWithdrawHistory retrieves withdrawal history for an asset.
	OpWithdrawHistory
	// OpDNSSettings retrieves DNS records for a Handshake domain.
	OpDNSSettings
	// OpUpdateDNSSettings replaces DNS records for a Handshake domain.
	OpUpdateDNSSettings
)

// String returns the string representation of the operation.
func (o Operation) String() string {
	return [...]string{
		"EXCHANGE_INFO",
		"DEPTH",
		"TRADES",
		"KLINES",
		"TICKER_DAY",
		"TICKER_PRICE",
		"TICKER_BOOK",
		"TICKER_SUPPLY",
		"PLACE_ORDER",
		"GET_ORDER",
		"CANCEL_ORDER",
		"OPEN_ORDERS",
		"ALL_ORDERS",
		"ACCOUNT_INFO",
		"ACCOUNT_LIMITS",
		"ACCOUNT_TRADES",
		"ORDER_TRADES",
		"DEPOSIT_ADDRESS",
		"WITHDRAW",
		"DEPOSIT_HISTORY",
		"WITHDRAW_HISTORY",
		"DNS_SETTINGS",
		"UPDATE_DNS_SETTINGS",
	}[o]
}

// Endpoint describes the fixed HTTP mapping of an operation: the verb, the
// path relative to the API base URL, and whether the call carries a
// per-request timestamp for replay protection.
type Endpoint struct {
	Method string
	Path   string
	Signed bool
}

// endpoints is the closed mapping from operation to REST endpoint.
var endpoints = [...]Endpoint{
	OpExchangeInfo:      {http.MethodGet, "/info", false},
	OpDepth:             {http.MethodGet, "/depth", false},
	OpTrades:            {http.MethodGet, "/trade", true},
	OpKlines:            {http.MethodGet, "/ticker/klines", false},
	OpTickerDay:         {http.MethodGet, "/ticker/day", false},
	OpTickerPrice:       {http.MethodGet, "/ticker/price", false},
	OpTickerBook:        {http.MethodGet, "/ticker/book", false},
	OpTickerSupply:      {http.MethodGet, "/ticker/supply", false},
	OpPlaceOrder:        {http.MethodPost, "/order", true},
	OpGetOrder:          {http.MethodGet, "/order", true},
	OpCancelOrder:       {http.MethodDelete, "/order", true},
	OpOpenOrders:        {http.MethodGet, "/order/open", true},
	OpAllOrders:         {http.MethodGet, "/order/all", true},
	OpAccountInfo:       {http.MethodGet, "/account", true},
	OpAccountLimits:     {http.MethodGet, "/account/limits", true},
	OpAccountTrades:     {http.MethodGet, "/trade/account", true},
	OpOrderTrades:       {http.MethodGet, "/trade/order", true},
	OpDepositAddress:    {http.MethodPost, "/deposit/address", true},
	OpWithdraw:          {http.MethodPost, "/withdraw", true},
	OpDepositHistory:    {http.MethodGet, "/deposit/history", true},
	OpWithdrawHistory:   {http.MethodGet, "/withdraw/history", true},
	OpDNSSettings:       {http.MethodGet, "/dns/domains", false},
	OpUpdateDNSSettings: {http.MethodPut, "/dns/domains", false},
}

// Endpoint returns the REST endpoint descriptor for the operation.
func (o Operation) Endpoint() Endpoint {
	return endpoints[o]
}
