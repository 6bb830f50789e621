package collector

// Fetcher retrieves the current price and trailing 52-week high for a symbol.
// The high is meaningless for the volatility index and callers ignore it.
type Fetcher interface {
	FetchInstrument(symbol string) (current, high52w float64, err error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Current float64
	High    float64
	// PerSymbol overrides the flat values for specific symbols.
	PerSymbol map[string][2]float64
	// Errs makes FetchInstrument fail for specific symbols.
	Errs map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchInstrument(symbol string) (float64, float64, error) {
	if err, ok := m.Errs[symbol]; ok {
		return 0, 0, err
	}
	if v, ok := m.PerSymbol[symbol]; ok {
		return v[0], v[1], nil
	}
	return m.Current, m.High, nil
}
