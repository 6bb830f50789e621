package notifier

import (
	"strings"
	"testing"

	"crashwatch/internal/model"
)

func testSnapshot() *model.MarketSnapshot {
	return &model.MarketSnapshot{
		Primary:    &model.InstrumentSnapshot{Symbol: "^NDX", Current: 15600, High52w: 20000, Drawdown: -22},
		Broad:      &model.InstrumentSnapshot{Symbol: "^GSPC", Current: 5060, High52w: 5500, Drawdown: -8},
		Volatility: &model.InstrumentSnapshot{Symbol: "^VIX", Current: 25},
	}
}

func TestFormatInitialAlert(t *testing.T) {
	trigger := "NASDAQ100 が 52週高値比 -20.0% を超える下落に突入しました。"
	msg := FormatInitialAlert(testSnapshot(), trigger)

	for _, want := range []string{
		"暴落監視レポート",
		"初回検知トリガー",
		trigger,
		"NASDAQ100: 15600.00 (-22.00%)",
		"S&P500: 5060.00 (-8.00%)",
		"VIX指数: 25.00",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("initial alert missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatContinuationAlert(t *testing.T) {
	msg := FormatContinuationAlert(testSnapshot())

	if !strings.Contains(msg, "継続中") {
		t.Errorf("continuation alert missing status marker:\n%s", msg)
	}
	if !strings.Contains(msg, "NASDAQ100 -22.00% / S&P500 -8.00% / VIX 25.00") {
		t.Errorf("continuation alert missing condensed line:\n%s", msg)
	}
	if strings.Contains(msg, "初回検知トリガー") {
		t.Error("continuation alert must not repeat the trigger section")
	}
}

func TestFormat_MissingInstruments(t *testing.T) {
	snap := &model.MarketSnapshot{
		Primary:    &model.InstrumentSnapshot{Symbol: "^NDX", Current: 15600, High52w: 20000, Drawdown: -22},
		Volatility: &model.InstrumentSnapshot{Symbol: "^VIX", Current: 35},
	}
	msg := FormatInitialAlert(snap, "trigger")
	if !strings.Contains(msg, "S&P500: N/A (N/A%)") {
		t.Errorf("missing broad index should render as N/A:\n%s", msg)
	}
}
