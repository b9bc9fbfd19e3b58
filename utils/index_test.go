package utils

import (
	"math"
	"testing"

	"restaurant_manager/constants"
)

func TestCalculateGrowth(t *testing.T) {
	tests := []struct {
		name      string
		today     float64
		yesterday float64
		want      float64
	}{
		{"bothZero", 0, 0, 0},
		{"fromZero", 500, 0, 100},
		{"doubled", 200, 100, 100},
		{"halved", 50, 100, -50},
		{"flat", 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGrowth(tt.today, tt.yesterday)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateGrowth(%v, %v) = %v, want %v", tt.today, tt.yesterday, got, tt.want)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantZero bool
	}{
		{"valid", "2026-08-30", false},
		{"empty", "", true},
		{"malformed", "30/08/2026", true},
		{"dateTime", "2026-08-30T10:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDay(tt.in)
			if got.IsZero() != tt.wantZero {
				t.Errorf("ParseDay(%q).IsZero() = %v, want %v", tt.in, got.IsZero(), tt.wantZero)
			}
		})
	}
}

func TestIsValidValueOfConstant(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		values []string
		want   bool
	}{
		{"exact", "PENDING", constants.ORDER_STATUS, true},
		{"lowercase", "preparing", constants.ORDER_STATUS, true},
		{"unknown", "SHIPPED", constants.ORDER_STATUS, false},
		{"role", "waiter", constants.ROLE, true},
		{"tableStatus", "occupied", constants.TABLE_STATUS, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidValueOfConstant(tt.value, tt.values); got != tt.want {
				t.Errorf("IsValidValueOfConstant(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
