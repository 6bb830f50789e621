package notifier

import (
	"fmt"
	"strings"

	"crashwatch/internal/model"
)

func formatPrice(ins *model.InstrumentSnapshot) string {
	if ins == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", ins.Current)
}

func formatDrawdown(ins *model.InstrumentSnapshot) string {
	if ins == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", ins.Drawdown)
}

// FormatInitialAlert builds the full report sent when a crash is first
// detected.
func FormatInitialAlert(snap *model.MarketSnapshot, trigger string) string {
	var b strings.Builder

	b.WriteString("【米国株式市場・暴落監視レポート】\n\n")
	b.WriteString("■ 市場状態\n💥 投入検討\n\n")
	b.WriteString("■ 初回検知トリガー\n")
	b.WriteString(trigger)
	b.WriteString("\n\n■ 市場データ\n")
	b.WriteString(fmt.Sprintf("NASDAQ100: %s (%s%%)\n", formatPrice(snap.Primary), formatDrawdown(snap.Primary)))
	b.WriteString(fmt.Sprintf("S&P500: %s (%s%%)\n", formatPrice(snap.Broad), formatDrawdown(snap.Broad)))
	b.WriteString(fmt.Sprintf("VIX指数: %s\n", formatPrice(snap.Volatility)))
	b.WriteString("\n■ 補足\n価格下落と市場心理の悪化が同時に発生しています。")

	return b.String()
}

// FormatContinuationAlert builds the condensed status line sent while a crash
// persists.
func FormatContinuationAlert(snap *model.MarketSnapshot) string {
	var b strings.Builder

	b.WriteString("【米国株式市場・暴落監視レポート】\n\n")
	b.WriteString("■ 市場状態\n⚠️ 投入検討（継続中）\n\n")
	b.WriteString(fmt.Sprintf("NASDAQ100 %s%% / S&P500 %s%% / VIX %s",
		formatDrawdown(snap.Primary), formatDrawdown(snap.Broad), formatPrice(snap.Volatility)))

	return b.String()
}
