package exchange

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"

	"nbx/pkg/core"
)

// SymbolInfo describes the trading rules for a single symbol.
type SymbolInfo struct {
	Symbol         string           `json:"symbol"`
	Status         string           `json:"status"`
	BaseAsset      string           `json:"baseAsset"`
	BasePrecision  int              `json:"basePrecision"`
	QuoteAsset     string           `json:"quoteAsset"`
	QuotePrecision int              `json:"quotePrecision"`
	OrderTypes     []core.OrderType `json:"orderTypes"`
}

// ExchangeInfo is the current exchange trading rules and symbol information.
type ExchangeInfo struct {
	Timezone   string       `json:"timezone"`
	ServerTime int64        `json:"serverTime"`
	Symbols    []SymbolInfo `json:"symbols"`
}

// PriceLevel is a single order book level. The exchange transmits levels as
// two-element arrays of decimal strings: [price, quantity].
type PriceLevel struct {
	Price    apd.Decimal
	Quantity apd.Decimal
}

// UnmarshalJSON implements json.Unmarshaler for PriceLevel.
func (l *PriceLevel) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := sonic.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("unmarshal price level: %w", err)
	}
	if _, _, err := l.Price.SetString(pair[0]); err != nil {
		return fmt.Errorf("parse price %q: %w", pair[0], err)
	}
	if _, _, err := l.Quantity.SetString(pair[1]); err != nil {
		return fmt.Errorf("parse quantity %q: %w", pair[1], err)
	}
	return nil
}

// Depth is an order book snapshot for a symbol.
type Depth struct {
	LastEventID int64        `json:"lastEventId"`
	Bids        []PriceLevel `json:"bids"`
	Asks        []PriceLevel `json:"asks"`
}

// TradeRecord is a single public trade.
type TradeRecord struct {
	TradeID       int64       `json:"tradeId"`
	Price         apd.Decimal `json:"price"`
	Quantity      apd.Decimal `json:"quantity"`
	QuoteQuantity apd.Decimal `json:"quoteQuantity"`
	CreatedAt     int64       `json:"createdAt"`
	IsBuyerMaker  bool        `json:"isBuyerMaker"`
}

// Kline is a single candlestick bar.
type Kline struct {
	OpenTime       int64       `json:"openTime"`
	CloseTime      int64       `json:"closeTime"`
	OpenPrice      apd.Decimal `json:"openPrice"`
	HighPrice      apd.Decimal `json:"highPrice"`
	LowPrice       apd.Decimal `json:"lowPrice"`
	ClosePrice     apd.Decimal `json:"closePrice"`
	Volume         apd.Decimal `json:"volume"`
	QuoteVolume    apd.Decimal `json:"quoteVolume"`
	NumberOfTrades int64       `json:"numberOfTrades"`
}

// DayTicker is the 24-hour rolling window statistics for a symbol.
type DayTicker struct {
	VolumeWeightedAveragePrice apd.Decimal `json:"volumeWeightedAveragePrice"`
	PriceChange                apd.Decimal `json:"priceChange"`
	PriceChangePercent         apd.Decimal `json:"priceChangePercent"`
	OpenPrice                  apd.Decimal `json:"openPrice"`
	HighPrice                  apd.Decimal `json:"highPrice"`
	LowPrice                   apd.Decimal `json:"lowPrice"`
	ClosePrice                 apd.Decimal `json:"closePrice"`
	Volume                     apd.Decimal `json:"volume"`
	QuoteVolume                apd.Decimal `json:"quoteVolume"`
	OpenTime                   int64       `json:"openTime"`
	CloseTime                  int64       `json:"closeTime"`
	FirstTradeID               int64       `json:"firstTradeId"`
	LastTradeID                int64       `json:"lastTradeId"`
	NumberOfTrades             int64       `json:"numberOfTrades"`
}

// PriceTicker is the latest traded price for a symbol.
type PriceTicker struct {
	Price apd.Decimal `json:"price"`
}

// BookTicker is the best bid and ask for a symbol.
type BookTicker struct {
	BidPrice    apd.Decimal `json:"bidPrice"`
	BidQuantity apd.Decimal `json:"bidQuantity"`
	AskPrice    apd.Decimal `json:"askPrice"`
	AskQuantity apd.Decimal `json:"askQuantity"`
}

// SupplyTicker is the circulating supply information for an asset.
type SupplyTicker struct {
	Height            int64       `json:"height"`
	CirculatingSupply apd.Decimal `json:"circulatingSupply"`
	TotalSupply       apd.Decimal `json:"totalSupply"`
}

// Fill is a single execution against an order.
type Fill struct {
	Price           apd.Decimal `json:"price"`
	Quantity        apd.Decimal `json:"quantity"`
	QuoteQuantity   apd.Decimal `json:"quoteQuantity"`
	Commission      apd.Decimal `json:"commission"`
	CommissionAsset string      `json:"commissionAsset"`
}

// Order is the state of an order as reported by the exchange. Fills is only
// populated on the immediate response to order placement.
type Order struct {
	OrderID          int64            `json:"orderId"`
	CreatedAt        int64            `json:"createdAt"`
	UpdatedAt        int64            `json:"updatedAt,omitempty"`
	Price            apd.Decimal      `json:"price"`
	OriginalQuantity apd.Decimal      `json:"originalQuantity"`
	ExecutedQuantity apd.Decimal      `json:"executedQuantity"`
	Status           core.OrderStatus `json:"status"`
	Type             core.OrderType   `json:"type"`
	Side             core.OrderSide   `json:"side"`
	Fills            []Fill           `json:"fills,omitempty"`
}

// Balance is the account balance for a single asset.
type Balance struct {
	Asset          string      `json:"asset"`
	Unlocked       apd.Decimal `json:"unlocked"`
	LockedInOrders apd.Decimal `json:"lockedInOrders"`
	CanDeposit     bool        `json:"canDeposit"`
	CanWithdraw    bool        `json:"canWithdraw"`
}

// AccountInfo is the account state: fees, permissions and per-asset balances.
// Fees are expressed in basis points.
type AccountInfo struct {
	MakerFee int64     `json:"makerFee"`
	TakerFee int64     `json:"takerFee"`
	CanTrade bool      `json:"canTrade"`
	Balances []Balance `json:"balances"`
}

// WithdrawalLimit is the rolling withdrawal allowance for a single asset.
type WithdrawalLimit struct {
	Asset           string      `json:"asset"`
	TotalWithdrawn  apd.Decimal `json:"totalWithdrawn"`
	WithdrawalLimit apd.Decimal `json:"withdrawalLimit"`
}

// AccountLimits is the withdrawal limit window for the account.
type AccountLimits struct {
	StartTime        int64             `json:"startTime"`
	EndTime          int64             `json:"endTime"`
	WithdrawalLimits []WithdrawalLimit `json:"withdrawalLimits"`
}

// AccountTrade is a trade executed by the account.
type AccountTrade struct {
	TradeID         int64       `json:"tradeId"`
	OrderID         int64       `json:"orderId"`
	Price           apd.Decimal `json:"price"`
	Quantity        apd.Decimal `json:"quantity"`
	QuoteQuantity   apd.Decimal `json:"quoteQuantity"`
	Commission      apd.Decimal `json:"commission"`
	CommissionAsset string      `json:"commissionAsset"`
	CreatedAt       int64       `json:"createdAt"`
	IsBuyer         bool        `json:"isBuyer"`
	IsMaker         bool        `json:"isMaker"`
}

// DepositAddress is a generated deposit address for an asset.
type DepositAddress struct {
	Address string `json:"address"`
	Success bool   `json:"success"`
	Asset   string `json:"asset"`
}

// WithdrawalReceipt is the immediate acknowledgement of a withdrawal request.
type WithdrawalReceipt struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Deposit is a single entry in the deposit history.
type Deposit struct {
	Asset     string      `json:"asset"`
	Amount    apd.Decimal `json:"amount"`
	Address   string      `json:"address"`
	TxHash    string      `json:"txHash"`
	CreatedAt int64       `json:"createdAt"`
}

// Withdrawal is a single entry in the withdrawal history.
type Withdrawal struct {
	ID        string      `json:"id"`
	Asset     string      `json:"asset"`
	Amount    apd.Decimal `json:"amount"`
	MinerFee  apd.Decimal `json:"minerFee"`
	Address   string      `json:"address"`
	TxHash    string      `json:"txHash"`
	CreatedAt int64       `json:"createdAt"`
}

// DNSRecord is a single DNS record on a Handshake domain.
type DNSRecord struct {
	Type  string `json:"type"`
	Host  string `json:"host"`
	Value string `json:"value"`
	TTL   int    `json:"ttl,omitempty"`
}

// DNSSettings is the DNS state of a Handshake domain.
type DNSSettings struct {
	Success        bool        `json:"success"`
	CurrentHeight  int64       `json:"currentHeight"`
	UpToDate       bool        `json:"upToDate"`
	CanUseSimpleUI bool        `json:"canUseSimpleUi"`
	RawNameState   string      `json:"rawNameState"`
	Fee            string      `json:"fee"`
	Records        []DNSRecord `json:"records"`
}

// DNSUpdateResult is the acknowledgement of a DNS record update.
type DNSUpdateResult struct {
	Success      bool        `json:"success"`
	TxHash       string      `json:"txHash"`
	RawNameState string      `json:"rawNameState"`
	Records      []DNSRecord `json:"records"`
}
