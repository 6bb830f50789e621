package collector

import (
	"errors"
	"math"

	"crashwatch/internal/model"
)

// lookbackSessions is roughly one year of trading days.
const lookbackSessions = 252

// trailingHigh scans the most recent sessions daily bars and returns the
// highest daily high. When fewer bars are available the whole series is used.
func trailingHigh(dailyBars []model.OHLCV, sessions int) (float64, error) {
	if len(dailyBars) == 0 {
		return 0, errors.New("no daily bars provided")
	}
	start := len(dailyBars) - sessions
	if start < 0 {
		start = 0
	}
	high := math.Inf(-1)
	for _, b := range dailyBars[start:] {
		if b.High > high {
			high = b.High
		}
	}
	return high, nil
}
