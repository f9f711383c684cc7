package eval

import (
	"fmt"
	"time"

	"liquidityMath/internal/model"
	"liquidityMath/liquidity"
	"liquidityMath/tick"
	"liquidityMath/token"
)

// Value computes the worth of one position record. Tick spacing defaults
// to 1 when the record leaves it unset.
func Value(rec model.PositionRecord, at time.Time) (model.ValuationRecord, error) {
	dec := token.Decimals{Token0: rec.Decimals0, Token1: rec.Decimals1}
	spacing := rec.TickSpacing
	if spacing == 0 {
		spacing = 1
	}

	amount0, amount1, err := liquidity.Amounts(rec.Liquidity, rec.CurrentPrice, rec.PriceA, rec.PriceB, dec)
	if err != nil {
		return model.ValuationRecord{}, fmt.Errorf("amounts: %w", err)
	}

	tickA, err := tick.FromPrice(rec.PriceA, spacing, dec)
	if err != nil {
		return model.ValuationRecord{}, fmt.Errorf("tick for price_a: %w", err)
	}
	tickB, err := tick.FromPrice(rec.PriceB, spacing, dec)
	if err != nil {
		return model.ValuationRecord{}, fmt.Errorf("tick for price_b: %w", err)
	}
	tickLower, tickUpper := tickA, tickB
	if tickLower > tickUpper {
		tickLower, tickUpper = tickUpper, tickLower
	}

	currentTick, err := tick.FromPrice(rec.CurrentPrice, spacing, dec)
	if err != nil {
		return model.ValuationRecord{}, fmt.Errorf("current tick: %w", err)
	}

	x96, err := tick.PriceToSqrtX96(rec.CurrentPrice, dec)
	if err != nil {
		return model.ValuationRecord{}, fmt.Errorf("sqrt price x96: %w", err)
	}

	lower, upper := rec.PriceA, rec.PriceB
	if lower > upper {
		lower, upper = upper, lower
	}

	return model.ValuationRecord{
		PositionID:   rec.ID,
		Amount0:      model.FormatAmount(amount0),
		Amount1:      model.FormatAmount(amount1),
		CurrentTick:  currentTick,
		TickLower:    tickLower,
		TickUpper:    tickUpper,
		SqrtPriceX96: x96.String(),
		InRange:      rec.CurrentPrice > lower && rec.CurrentPrice < upper,
		Decimals0:    rec.Decimals0,
		Decimals1:    rec.Decimals1,
		ComputedAt:   at.UTC().Format(time.RFC3339),
	}, nil
}
