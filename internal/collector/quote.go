package collector

import (
	"fmt"

	"github.com/piquette/finance-go/quote"
)

// QuoteFetcher implements Fetcher using the finance-go quote endpoint. It
// relies on the exchange-provided 52-week high instead of scanning daily
// history, so a single request per symbol suffices.
type QuoteFetcher struct{}

// NewQuoteFetcher creates a new quote fetcher.
func NewQuoteFetcher() *QuoteFetcher {
	return &QuoteFetcher{}
}

func (f *QuoteFetcher) Name() string { return "quote" }

func (f *QuoteFetcher) FetchInstrument(symbol string) (float64, float64, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return 0, 0, fmt.Errorf("quote fetch %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return 0, 0, fmt.Errorf("quote: no data for %s", symbol)
	}
	return q.RegularMarketPrice, q.FiftyTwoWeekHigh, nil
}
