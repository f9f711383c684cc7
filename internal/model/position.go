package model

import (
	"encoding/json"
)

// PositionRecord is one concentrated-liquidity position to value, as read
// from the input JSONL. Prices are quoted in token1 per token0 smallest
// units at the stated decimal precision.
type PositionRecord struct {
	ID           string  `json:"id"`
	Liquidity    float64 `json:"liquidity"`
	CurrentPrice float64 `json:"current_price"`
	PriceA       float64 `json:"price_a"`
	PriceB       float64 `json:"price_b"`
	Decimals0    int     `json:"decimals0"`
	Decimals1    int     `json:"decimals1"`
	TickSpacing  int     `json:"tick_spacing"`
}

// MarshalJSON ensures PositionRecord is encoded with stable field names.
func (pr PositionRecord) MarshalJSON() ([]byte, error) {
	type Alias PositionRecord
	return json.Marshal(Alias(pr))
}

// UnmarshalJSON decodes a PositionRecord from JSON.
func (pr *PositionRecord) UnmarshalJSON(data []byte) error {
	type Alias PositionRecord
	var a Alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*pr = PositionRecord(a)
	return nil
}
