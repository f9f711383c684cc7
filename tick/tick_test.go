package tick

import (
	"errors"
	"math"
	"testing"

	"liquidityMath/token"
)

func TestFromPriceReference(t *testing.T) {
	got, err := FromPrice(0.000551413, 10, token.Decimals{Token0: 6, Token1: 18})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 201290 {
		t.Fatalf("tick = %d, want 201290", got)
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name    string
		tick    int
		spacing int
		want    int
	}{
		{"tie_rounds_up", 45, 10, 50},
		{"below_tie", 44, 10, 40},
		{"negative_tie_rounds_down", -45, 10, -50},
		{"negative_below_tie", -44, 10, -40},
		{"already_aligned", 60, 60, 60},
		{"zero", 0, 200, 0},
		{"spacing_one", 7, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nearest(tt.tick, tt.spacing); got != tt.want {
				t.Errorf("Nearest(%d, %d) = %d, want %d", tt.tick, tt.spacing, got, tt.want)
			}
		})
	}
}

func TestNearestIdempotent(t *testing.T) {
	for _, spacing := range []int{1, 10, 60, 200} {
		for tickIndex := -500; tickIndex <= 500; tickIndex += 7 {
			once := Nearest(tickIndex, spacing)
			if twice := Nearest(once, spacing); twice != once {
				t.Fatalf("Nearest(Nearest(%d, %d)) = %d, want %d", tickIndex, spacing, twice, once)
			}
		}
	}
}

func TestTickPriceRoundTrip(t *testing.T) {
	decs := []token.Decimals{
		{Token0: 18, Token1: 18},
		{Token0: 6, Token1: 18},
		{Token0: 18, Token1: 8},
	}

	for _, dec := range decs {
		for _, tickIndex := range []int{-201290, -60, -1, 0, 1, 60, 887, 201290} {
			price, err := ToPrice(tickIndex, dec)
			if err != nil {
				t.Fatalf("ToPrice(%d): %v", tickIndex, err)
			}
			back, err := FromPrice(price, 1, dec)
			if err != nil {
				t.Fatalf("FromPrice(%v): %v", price, err)
			}
			if back != tickIndex {
				t.Fatalf("round trip tick %d (decimals %+v) gave %d", tickIndex, dec, back)
			}
		}
	}
}

func TestToPriceAtZeroTick(t *testing.T) {
	price, err := ToPrice(0, token.Decimals{Token0: 6, Token1: 18})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(price-1e-12) > 1e-24 {
		t.Fatalf("price = %v, want 1e-12", price)
	}
}

func TestFromPriceValidation(t *testing.T) {
	dec := token.Default()

	if _, err := FromPrice(0, 10, dec); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("zero price: got %v, want ErrInvalidPrice", err)
	}
	if _, err := FromPrice(-2, 10, dec); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("negative price: got %v, want ErrInvalidPrice", err)
	}
	if _, err := FromPrice(1.0, 0, dec); !errors.Is(err, ErrInvalidTickSpacing) {
		t.Errorf("zero spacing: got %v, want ErrInvalidTickSpacing", err)
	}
	if _, err := FromPrice(1.0, -10, dec); !errors.Is(err, ErrInvalidTickSpacing) {
		t.Errorf("negative spacing: got %v, want ErrInvalidTickSpacing", err)
	}
	bad := token.Decimals{Token0: 18, Token1: -1}
	if _, err := FromPrice(1.0, 10, bad); !errors.Is(err, token.ErrInvalidDecimals) {
		t.Errorf("negative decimals: got %v, want ErrInvalidDecimals", err)
	}
	if _, err := ToPrice(100, bad); !errors.Is(err, token.ErrInvalidDecimals) {
		t.Errorf("negative decimals: got %v, want ErrInvalidDecimals", err)
	}
}
