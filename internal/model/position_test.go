package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPositionRecordJSONRoundTrip(t *testing.T) {
	original := PositionRecord{
		ID:           "pos-1",
		Liquidity:    2148,
		CurrentPrice: 1.0,
		PriceA:       0.9090909090909091,
		PriceB:       1.1,
		Decimals0:    6,
		Decimals1:    18,
		TickSpacing:  10,
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded PositionRecord
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", original, decoded)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"integer", 100, "100"},
		{"fraction", 99.9229, "99.9229"},
		{"zero", 0, "0"},
		{"small", 0.000551413, "0.000551413"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.value); got != tt.want {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
