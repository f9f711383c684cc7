package storage

import "liquidityMath/internal/model"

// Storage persists valuation batches.
type Storage interface {
	PutValuationBatch(valuations []model.ValuationRecord) error
}
