package collector

import (
	"time"

	"go.uber.org/zap"

	"crashwatch/internal/model"
)

// SymbolSet names the three tracked instruments.
type SymbolSet struct {
	Primary    string
	Broad      string
	Volatility string
}

// Collector builds a MarketSnapshot from the configured fetcher. Individual
// fetch failures are logged and skipped; the snapshot carries what succeeded.
type Collector struct {
	Fetcher Fetcher
	Symbols SymbolSet
	Log     *zap.SugaredLogger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbols SymbolSet, log *zap.SugaredLogger) *Collector {
	return &Collector{Fetcher: fetcher, Symbols: symbols, Log: log}
}

// Collect fetches all tracked instruments. The result may be partial; callers
// must check Empty before treating it as usable.
func (c *Collector) Collect() *model.MarketSnapshot {
	snap := &model.MarketSnapshot{FetchedAt: time.Now()}
	snap.Primary = c.fetchIndex(c.Symbols.Primary)
	snap.Broad = c.fetchIndex(c.Symbols.Broad)
	snap.Volatility = c.fetchLevel(c.Symbols.Volatility)
	return snap
}

// fetchIndex retrieves a price index with its 52-week high and drawdown.
func (c *Collector) fetchIndex(symbol string) *model.InstrumentSnapshot {
	current, high, err := c.Fetcher.FetchInstrument(symbol)
	if err != nil {
		c.Log.Warnf("fetch %s failed, skipping: %v", symbol, err)
		return nil
	}
	if high <= 0 {
		c.Log.Warnf("fetch %s returned no 52-week high, skipping", symbol)
		return nil
	}
	return &model.InstrumentSnapshot{
		Symbol:   symbol,
		Current:  current,
		High52w:  high,
		Drawdown: (current - high) / high * 100,
	}
}

// fetchLevel retrieves the volatility index, which has no drawdown.
func (c *Collector) fetchLevel(symbol string) *model.InstrumentSnapshot {
	current, _, err := c.Fetcher.FetchInstrument(symbol)
	if err != nil {
		c.Log.Warnf("fetch %s failed, skipping: %v", symbol, err)
		return nil
	}
	return &model.InstrumentSnapshot{Symbol: symbol, Current: current}
}
