package eval

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"liquidityMath/internal/model"
	"liquidityMath/internal/storage"
)

// RunConfig holds runtime settings for batch valuation.
type RunConfig struct {
	Input     string
	BatchSize int
}

// Runner streams position records from a JSONL file, values them, and
// writes valuation batches to storage.
type Runner struct {
	cfg     RunConfig
	storage storage.Storage
	logger  *zap.Logger
	now     func() time.Time
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, storageSink storage.Storage, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:     cfg,
		storage: storageSink,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes the valuation loop. Malformed or invalid records are logged
// and skipped rather than aborting the whole file.
func (r *Runner) Run(ctx context.Context) error {
	if r.storage == nil {
		return fmt.Errorf("storage is nil")
	}
	if r.cfg.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if r.cfg.BatchSize <= 0 {
		r.cfg.BatchSize = 1000
	}

	file, err := os.Open(r.cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	computedAt := r.now()
	batch := make([]model.ValuationRecord, 0, r.cfg.BatchSize)
	var total, valued, failed int

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var record model.PositionRecord
		if err := json.Unmarshal(line, &record); err != nil {
			failed++
			r.logger.Warn("decode position record", zap.Error(err))
			continue
		}

		valuation, err := Value(record, computedAt)
		if err != nil {
			failed++
			r.logger.Warn("value position", zap.Error(err), zap.String("position", record.ID))
			continue
		}

		batch = append(batch, valuation)
		valued++

		if len(batch) >= r.cfg.BatchSize {
			if err := r.storage.PutValuationBatch(batch); err != nil {
				return fmt.Errorf("store valuations: %w", err)
			}
			batch = batch[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}

	if len(batch) > 0 {
		if err := r.storage.PutValuationBatch(batch); err != nil {
			return fmt.Errorf("store valuations: %w", err)
		}
	}

	r.logger.Info("eval complete",
		zap.Int("total", total),
		zap.Int("valued", valued),
		zap.Int("failed", failed),
	)

	return nil
}
