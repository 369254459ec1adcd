package core

// Symbol represents a trading pair listed on the exchange.
type Symbol int

// Trading pairs currently listed on the exchange.
const (
	// SymbolHNSBTC is the Handshake/Bitcoin trading pair.
	SymbolHNSBTC Symbol = iota
)

// String returns the wire representation of the symbol ("HNSBTC").
func (s Symbol) String() string {
	return [...]string{"HNSBTC"}[s]
}

// MarshalJSON implements json.Marshaler for Symbol.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Symbol.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"HNSBTC"`, `"hnsbtc"`:
		*s = SymbolHNSBTC
	}
	return nil
}

// Asset represents a single currency traded on the exchange.
type Asset int

// Assets supported for trading, deposit and withdrawal.
const (
	// AssetHNS is Handshake.
	AssetHNS Asset = iota
	// AssetBTC is Bitcoin.
	AssetBTC
)

// String returns the wire representation of the asset ("HNS" or "BTC").
func (a Asset) String() string {
	return [...]string{"HNS", "BTC"}[a]
}

// MarshalJSON implements json.Marshaler for Asset.
func (a Asset) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Asset.
func (a *Asset) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"HNS"`, `"hns"`:
		*a = AssetHNS
	case `"BTC"`, `"btc"`:
		*a = AssetBTC
	}
	return nil
}

// OrderSide represents the direction of an order (buy or sell).
type OrderSide int

// Order side constants define the direction of a trade.
const (
	// SideBuy indicates an order to purchase the base asset.
	SideBuy OrderSide = iota
	// SideSell indicates an order to sell the base asset.
	SideSell
)

// String returns the wire representation of the order side ("BUY" or "SELL").
func (s OrderSide) String() string {
	return [...]string{"BUY", "SELL"}[s]
}

// MarshalJSON implements json.Marshaler for OrderSide.
func (s OrderSide) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderSide.
// It accepts both uppercase and lowercase formats.
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"BUY"`, `"buy"`:
		*s = SideBuy
	case `"SELL"`, `"sell"`:
		*s = SideSell
	}
	return nil
}

// OrderType represents the type of order to place on the exchange.
// The wire representation is the exchange's short code, not the Go name.
type OrderType int

// Order type constants define how an order is executed.
const (
	// TypeLimit executes at a specified price or better. Wire value "LMT".
	TypeLimit OrderType = iota
	// TypeMarket executes immediately at the best available price. Wire value "MKT".
	TypeMarket
)

// String returns the wire representation of the order type ("LMT" or "MKT").
func (t OrderType) String() string {
	return [...]string{"LMT", "MKT"}[t]
}

// MarshalJSON implements json.Marshaler for OrderType.
func (t OrderType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderType.
func (t *OrderType) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"LMT"`, `"lmt"`:
		*t = TypeLimit
	case `"MKT"`, `"mkt"`:
		*t = TypeMarket
	}
	return nil
}

// OrderStatus represents the current state of an order as reported by the exchange.
type OrderStatus int

// Order status constants define the lifecycle state of an order.
const (
	// StatusNew indicates the order has been accepted by the exchange.
	StatusNew OrderStatus = iota
	// StatusPartiallyFilled indicates the order has been partially filled.
	StatusPartiallyFilled
	// StatusFilled indicates the order has been completely filled.
	StatusFilled
	// StatusCanceled indicates the order has been canceled.
	StatusCanceled
)

// String returns the wire representation of the order status.
func (s OrderStatus) String() string {
	return [...]string{"NEW", "PARTIALLY_FILLED", "FILLED", "CANCELED"}[s]
}

// IsTerminal returns true if the order is in a terminal state.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusFilled || s == StatusCanceled
}

// MarshalJSON implements json.Marshaler for OrderStatus.
func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderStatus.
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"NEW"`, `"new"`:
		*s = StatusNew
	case `"PARTIALLY_FILLED"`, `"partially_filled"`:
		*s = StatusPartiallyFilled
	case `"FILLED"`, `"filled"`:
		*s = StatusFilled
	case `"CANCELED"`, `"canceled"`:
		*s = StatusCanceled
	}
	return nil
}

// Interval represents a candlestick aggregation period.
type Interval int

// Kline aggregation intervals supported by the exchange.
const (
	OneMinute Interval = iota
	FiveMinutes
	FifteenMinutes
	OneHour
	FourHours
	TwelveHours
	OneDay
	OneWeek
)

// String returns the wire representation of the interval (e.g. "5m", "1h").
func (i Interval) String() string {
	return [...]string{"1m", "5m", "15m", "1h", "4h", "12h", "1d", "1w"}[i]
}

// MarshalJSON implements json.Marshaler for Interval.
func (i Interval) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Interval.
func (i *Interval) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"1m"`:
		*i = OneMinute
	case `"5m"`:
		*i = FiveMinutes
	case `"15m"`:
		*i = FifteenMinutes
	case `"1h"`:
		*i = OneHour
	case `"4h"`:
		*i = FourHours
	case `"12h"`:
		*i = TwelveHours
	case `"1d"`:
		*i = OneDay
	case `"1w"`:
		*i = OneWeek
	}
	return nil
}
