package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FormatDuration formats duration into human readable format (e.g., "2d3h", "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	if duration < 24*time.Hour {
		h := int(duration.Hours())
		m := int(duration.Minutes()) % 60

		return fmt.Sprintf("%dh%dm", h, m)
	}

	d := int(duration.Hours()) / 24
	h := int(duration.Hours()) % 24

	return fmt.Sprintf("%dd%dh", d, h)
}

// FormatPrice renders an amount as dollars with two decimals, e.g. "$9.99".
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
