package engine

import (
	"math"
	"testing"

	"smartsignals/internal/types"
)

func TestClassifyBias(t *testing.T) {
	cases := []struct {
		sentiment float64
		want      types.Stance
	}{
		{1.0, types.Bullish},
		{0.21, types.Bullish},
		{0.20, types.Bullish}, // boundary is inclusive on the bias side
		{0.19, types.Neutral},
		{0.0, types.Neutral},
		{-0.19, types.Neutral},
		{-0.20, types.Bearish},
		{-0.21, types.Bearish},
		{-1.0, types.Bearish},
	}
	for _, tc := range cases {
		if got := ClassifyBias(tc.sentiment); got != tc.want {
			t.Errorf("ClassifyBias(%v) = %v, want %v", tc.sentiment, got, tc.want)
		}
	}
}

func TestConfirmations(t *testing.T) {
	cases := []struct {
		bias, trend, momentum types.Stance
		want                  int
	}{
		{types.Bullish, types.Bullish, types.Bullish, 2},
		{types.Bullish, types.Bullish, types.Neutral, 1},
		{types.Bullish, types.Bearish, types.Bearish, 0},
		{types.Bearish, types.Bearish, types.Bearish, 2},
		{types.Bearish, types.Neutral, types.Bearish, 1},
		// Neutral bias has nothing to confirm, even with agreeing stances.
		{types.Neutral, types.Neutral, types.Neutral, 0},
		{types.Unknown, types.Unknown, types.Unknown, 0},
	}
	for _, tc := range cases {
		if got := Confirmations(tc.bias, tc.trend, tc.momentum); got != tc.want {
			t.Errorf("Confirmations(%v, %v, %v) = %d, want %d", tc.bias, tc.trend, tc.momentum, got, tc.want)
		}
	}
}

func TestSureness(t *testing.T) {
	if got := Sureness(0, 0); got != 20.0 {
		t.Errorf("Sureness(0, 0) = %v, want 20", got)
	}
	if got := Sureness(1.0, 2); got != 100.0 {
		t.Errorf("Sureness(1, 2) = %v, want 100", got)
	}
	if got := Sureness(-1.0, 2); got != 100.0 {
		t.Errorf("Sureness(-1, 2) = %v, want 100", got)
	}
	// Magnitude above 1 is capped before weighting.
	if got := Sureness(3.5, 2); got != 100.0 {
		t.Errorf("Sureness(3.5, 2) = %v, want 100", got)
	}
	if got := Sureness(0.5, 1); math.Abs(got-60.0) > 1e-9 {
		t.Errorf("Sureness(0.5, 1) = %v, want 60", got)
	}
	for s := -1.0; s <= 1.0; s += 0.1 {
		for conf := 0; conf <= 2; conf++ {
			got := Sureness(s, conf)
			if got < 0 || got > 100 {
				t.Fatalf("Sureness(%v, %d) = %v, outside [0, 100]", s, conf, got)
			}
		}
	}
}
