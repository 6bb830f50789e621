package strategy

import (
	"fmt"

	"crashwatch/internal/model"
)

// Thresholds defines the crash-condition parameters. Drawdowns are percent
// and negative.
type Thresholds struct {
	MajorDrawdown float64
	MinorDrawdown float64
	Volatility    float64
}

// DefaultThresholds matches the long-standing -20 / -15 / 30 rule.
var DefaultThresholds = Thresholds{
	MajorDrawdown: -20.0,
	MinorDrawdown: -15.0,
	Volatility:    30.0,
}

// Evaluate applies the two crash conditions to a market snapshot and returns
// whether a crash is in effect plus a description of the trigger. The first
// matching condition wins.
//
// 1. primary drawdown at or below the major threshold
// 2. primary drawdown at or below the minor threshold AND volatility at or
//    above its threshold
//
// Without both the primary and volatility instruments no judgement is made.
func Evaluate(snap *model.MarketSnapshot, th Thresholds) (bool, string) {
	if snap.Primary == nil || snap.Volatility == nil {
		return false, ""
	}

	drawdown := snap.Primary.Drawdown
	vix := snap.Volatility.Current

	if drawdown <= th.MajorDrawdown {
		return true, fmt.Sprintf("NASDAQ100 が 52週高値比 %.1f%% を超える下落に突入しました。", th.MajorDrawdown)
	}

	if drawdown <= th.MinorDrawdown && vix >= th.Volatility {
		return true, fmt.Sprintf("NASDAQ100 が %.1f%% 下落、かつ VIX指数が %.1f を超えました。", th.MinorDrawdown, th.Volatility)
	}

	return false, ""
}
