package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"liquidityMath/internal/model"
)

func TestJsonlStorageAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "valuations.jsonl")
	sink := NewJsonlStorage(path)

	first := []model.ValuationRecord{
		{PositionID: "a", Amount0: "99.9229", Amount1: "0", TickLower: -950, TickUpper: 950},
	}
	second := []model.ValuationRecord{
		{PositionID: "b", Amount0: "0", Amount1: "48.77", InRange: true},
	}

	if err := sink.PutValuationBatch(first); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if err := sink.PutValuationBatch(second); err != nil {
		t.Fatalf("second batch: %v", err)
	}
	if err := sink.PutValuationBatch(nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	var got []model.ValuationRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec model.ValuationRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("decode line: %v", err)
		}
		got = append(got, rec)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan output: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].PositionID != "a" || got[1].PositionID != "b" {
		t.Fatalf("unexpected ids: %s, %s", got[0].PositionID, got[1].PositionID)
	}
}

type countingSink struct {
	calls int
	fail  bool
}

func (c *countingSink) PutValuationBatch(valuations []model.ValuationRecord) error {
	c.calls++
	if c.fail {
		return fmt.Errorf("sink failed")
	}
	return nil
}

func TestMultiFansOut(t *testing.T) {
	a := &countingSink{}
	b := &countingSink{}
	multi := Multi{a, b}

	if err := multi.PutValuationBatch([]model.ValuationRecord{{PositionID: "x"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Fatalf("expected one call per sink, got %d and %d", a.calls, b.calls)
	}

	failing := Multi{&countingSink{fail: true}, b}
	if err := failing.PutValuationBatch([]model.ValuationRecord{{PositionID: "y"}}); err == nil {
		t.Fatalf("expected error from failing sink")
	}
	if b.calls != 1 {
		t.Fatalf("later sink should not run after failure, calls = %d", b.calls)
	}
}
