package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// InstrumentSnapshot holds the latest observed values for one tracked index.
// High52w and Drawdown are only populated for price indices; the volatility
// index carries its level in Current.
type InstrumentSnapshot struct {
	Symbol   string
	Current  float64
	High52w  float64
	Drawdown float64 // percent vs High52w, negative below the high
}

// MarketSnapshot is the full market picture built fresh on each run. Entries
// are nil when the corresponding fetch failed or returned no data.
type MarketSnapshot struct {
	Primary    *InstrumentSnapshot
	Broad      *InstrumentSnapshot
	Volatility *InstrumentSnapshot
	FetchedAt  time.Time
}

// Empty reports whether every fetch failed.
func (s *MarketSnapshot) Empty() bool {
	return s.Primary == nil && s.Broad == nil && s.Volatility == nil
}
