package storage

import "liquidityMath/internal/model"

// Multi fans a valuation batch out to every sink in order.
type Multi []Storage

func (m Multi) PutValuationBatch(valuations []model.ValuationRecord) error {
	for _, sink := range m {
		if err := sink.PutValuationBatch(valuations); err != nil {
			return err
		}
	}
	return nil
}
