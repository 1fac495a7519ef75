package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "days and hours", duration: 6*24*time.Hour + 23*time.Hour + 59*time.Minute, expected: "6d23h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "9.99", expected: "$9.99"},
		{amount: "10", expected: "$10.00"},
		{amount: "0.005", expected: "$0.01"},
		{amount: "1234.5", expected: "$1234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			t.Parallel()

			if got := FormatPrice(decimal.RequireFromString(tt.amount)); got != tt.expected {
				t.Fatalf("FormatPrice(%s) = %s, want %s", tt.amount, got, tt.expected)
			}
		})
	}
}
