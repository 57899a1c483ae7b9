package logfilter

import (
	"testing"
	"time"

	"alcyxob/exercise-tracker/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleLog() []domain.Entry {
	return []domain.Entry{
		{Description: "run", Duration: 30, Date: date("2024-01-01")},
		{Description: "swim", Duration: 20, Date: date("2024-02-01")},
	}
}

func TestApplyNoOptionsReturnsEverything(t *testing.T) {
	result := Apply(sampleLog(), Options{})

	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}
	if len(result.Entries) != 2 {
		t.Errorf("len(Entries) = %d, want 2", len(result.Entries))
	}
}

func TestApplyFromBound(t *testing.T) {
	from := date("2024-01-15")
	result := Apply(sampleLog(), Options{From: &from})

	if result.Count != 1 {
		t.Fatalf("Count = %d, want 1", result.Count)
	}
	if result.Entries[0].Description != "swim" {
		t.Errorf("Entries[0].Description = %q, want %q", result.Entries[0].Description, "swim")
	}
}

func TestApplyFromIsInclusive(t *testing.T) {
	from := date("2024-02-01")
	result := Apply(sampleLog(), Options{From: &from})

	if result.Count != 1 {
		t.Errorf("Count = %d, want 1 (entry dated exactly at from must be kept)", result.Count)
	}
}

func TestApplyToIsExclusive(t *testing.T) {
	to := date("2024-02-01")
	result := Apply(sampleLog(), Options{To: &to})

	if result.Count != 1 {
		t.Fatalf("Count = %d, want 1 (entry dated exactly at to must be dropped)", result.Count)
	}
	if result.Entries[0].Description != "run" {
		t.Errorf("Entries[0].Description = %q, want %q", result.Entries[0].Description, "run")
	}
}

func TestApplyLimitKeepsStoredOrder(t *testing.T) {
	result := Apply(sampleLog(), Options{Limit: 1})

	if result.Count != 2 {
		t.Errorf("Count = %d, want 2 (limit must not change the count)", result.Count)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(result.Entries))
	}
	if result.Entries[0].Description != "run" {
		t.Errorf("Entries[0].Description = %q, want first stored entry %q", result.Entries[0].Description, "run")
	}
}

func TestApplyCountInvariantUnderLimit(t *testing.T) {
	from := date("2023-12-01")
	to := date("2024-03-01")

	base := Apply(sampleLog(), Options{From: &from, To: &to})
	for _, limit := range []int{-1, 0, 1, 2, 100} {
		limited := Apply(sampleLog(), Options{From: &from, To: &to, Limit: limit})
		if limited.Count != base.Count {
			t.Errorf("Limit %d: Count = %d, want %d", limit, limited.Count, base.Count)
		}
	}
}

func TestApplyNonPositiveLimitMeansNoLimit(t *testing.T) {
	for _, limit := range []int{0, -1, -100} {
		result := Apply(sampleLog(), Options{Limit: limit})
		if len(result.Entries) != 2 {
			t.Errorf("Limit %d: len(Entries) = %d, want 2", limit, len(result.Entries))
		}
	}
}

func TestApplyTighteningBoundsNeverGrowsResult(t *testing.T) {
	log := []domain.Entry{
		{Description: "a", Date: date("2024-01-01")},
		{Description: "b", Date: date("2024-02-01")},
		{Description: "c", Date: date("2024-03-01")},
		{Description: "d", Date: date("2024-04-01")},
	}

	wideFrom, wideTo := date("2023-01-01"), date("2025-01-01")
	narrowFrom, narrowTo := date("2024-01-15"), date("2024-03-15")

	wide := Apply(log, Options{From: &wideFrom, To: &wideTo})
	narrow := Apply(log, Options{From: &narrowFrom, To: &narrowTo})

	if narrow.Count > wide.Count {
		t.Fatalf("narrow Count %d > wide Count %d", narrow.Count, wide.Count)
	}
	// Every narrow entry must also be in the wide result.
	for _, n := range narrow.Entries {
		found := false
		for _, w := range wide.Entries {
			if w.Description == n.Description {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("entry %q in narrow result but not in wide result", n.Description)
		}
	}
}

func TestApplyEmptyLog(t *testing.T) {
	result := Apply(nil, Options{})

	if result.Count != 0 {
		t.Errorf("Count = %d, want 0", result.Count)
	}
	if result.Entries == nil {
		t.Error("Entries is nil, want empty slice")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	log := sampleLog()
	from := date("2024-01-15")
	Apply(log, Options{From: &from, Limit: 1})

	if len(log) != 2 || log[0].Description != "run" || log[1].Description != "swim" {
		t.Errorf("input log was mutated: %+v", log)
	}
}
