package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"liquidityMath/internal/model"
)

// Store provides Postgres persistence for position valuations.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertValuations inserts or updates valuation records.
func (s *Store) UpsertValuations(ctx context.Context, valuations []model.ValuationRecord) error {
	if len(valuations) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, v := range valuations {
		batch.Queue(`
			INSERT INTO position_valuations (
				position_id, amount0, amount1, current_tick, tick_lower, tick_upper,
				sqrt_price_x96, in_range, decimals0, decimals1, computed_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now())
			ON CONFLICT (position_id, computed_at)
			DO UPDATE SET
				amount0 = EXCLUDED.amount0,
				amount1 = EXCLUDED.amount1,
				current_tick = EXCLUDED.current_tick,
				tick_lower = EXCLUDED.tick_lower,
				tick_upper = EXCLUDED.tick_upper,
				sqrt_price_x96 = EXCLUDED.sqrt_price_x96,
				in_range = EXCLUDED.in_range,
				decimals0 = EXCLUDED.decimals0,
				decimals1 = EXCLUDED.decimals1,
				updated_at = now()
		`,
			v.PositionID,
			v.Amount0,
			v.Amount1,
			v.CurrentTick,
			v.TickLower,
			v.TickUpper,
			v.SqrtPriceX96,
			v.InRange,
			v.Decimals0,
			v.Decimals1,
			v.ComputedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range valuations {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// PutValuationBatch adapts UpsertValuations to the storage.Storage interface.
func (s *Store) PutValuationBatch(valuations []model.ValuationRecord) error {
	return s.UpsertValuations(context.Background(), valuations)
}
