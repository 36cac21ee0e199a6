package history

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"daycalc/internal/calculator"
)

func newTestStore(t *testing.T, ts time.Time) *Store {
	t.Helper()
	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing history metrics: %v", err)
	}
	s := NewStore()
	s.now = func() time.Time { return ts }
	return s
}

func TestAppendFilesUnderCurrentDay(t *testing.T) {
	ts := time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC)
	s := newTestStore(t, ts)

	rec := s.Append(context.Background(), 5, 3, calculator.OpAdd, 8)

	if rec.ID == uuid.Nil {
		t.Fatal("expected record to be assigned an ID")
	}
	if !rec.Timestamp.Equal(ts) {
		t.Fatalf("Timestamp = %v, want %v", rec.Timestamp, ts)
	}
	if rec.A != 5 || rec.B != 3 || rec.Op != calculator.OpAdd || rec.Result != 8 {
		t.Fatalf("unexpected record %+v", rec)
	}

	if got := s.Today(); got != 15 {
		t.Fatalf("Today() = %d, want 15", got)
	}

	dh, ok := s.Day(15)
	if !ok {
		t.Fatal("expected day 15 to have history")
	}
	if len(dh.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(dh.Records))
	}
	if dh.Records[0].ID != rec.ID {
		t.Fatalf("stored record ID %v, want %v", dh.Records[0].ID, rec.ID)
	}

	want := DayStats{Count: 1, Sum: 8, Min: 8, Max: 8, Average: 8}
	if dh.Stats != want {
		t.Fatalf("Stats = %+v, want %+v", dh.Stats, want)
	}
}

func TestStatsUpdateIncrementally(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	s := newTestStore(t, ts)

	steps := []struct {
		a, b   float64
		op     calculator.Op
		result float64
		want   DayStats
	}{
		{a: 10, b: 2, op: calculator.OpDivide, result: 5, want: DayStats{Count: 1, Sum: 5, Min: 5, Max: 5, Average: 5}},
		{a: 4, b: 4, op: calculator.OpMultiply, result: 16, want: DayStats{Count: 2, Sum: 21, Min: 5, Max: 16, Average: 10.5}},
		{a: 2, b: 5, op: calculator.OpSubtract, result: -3, want: DayStats{Count: 3, Sum: 18, Min: -3, Max: 16, Average: 6}},
	}

	for i, step := range steps {
		s.Append(context.Background(), step.a, step.b, step.op, step.result)

		dh, ok := s.Day(15)
		if !ok {
			t.Fatalf("step %d: expected day 15 to have history", i)
		}
		if dh.Stats != step.want {
			t.Fatalf("step %d: Stats = %+v, want %+v", i, dh.Stats, step.want)
		}
		if dh.Stats.Count != len(dh.Records) {
			t.Fatalf("step %d: Count %d != %d records", i, dh.Stats.Count, len(dh.Records))
		}
	}
}

func TestDayWithNoRecords(t *testing.T) {
	s := newTestStore(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))

	if _, ok := s.Day(12); ok {
		t.Fatal("expected no history for day 12")
	}
	if got := s.All(); len(got) != 0 {
		t.Fatalf("expected empty All(), got %d days", len(got))
	}
}

func TestAllReturnsDaysAscending(t *testing.T) {
	current := time.Date(2024, 3, 22, 9, 0, 0, 0, time.UTC)
	s := newTestStore(t, current)
	s.now = func() time.Time { return current }

	s.Append(context.Background(), 1, 1, calculator.OpAdd, 2)

	current = time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)
	s.Append(context.Background(), 2, 2, calculator.OpMultiply, 4)
	s.Append(context.Background(), 9, 3, calculator.OpDivide, 3)

	current = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	s.Append(context.Background(), 10, 4, calculator.OpSubtract, 6)

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 days, got %d", len(all))
	}

	wantDays := []int{3, 15, 22}
	for i, dh := range all {
		if dh.Day != wantDays[i] {
			t.Fatalf("All()[%d].Day = %d, want %d", i, dh.Day, wantDays[i])
		}
	}

	if got := all[0].Stats; got != (DayStats{Count: 2, Sum: 7, Min: 3, Max: 4, Average: 3.5}) {
		t.Fatalf("day 3 stats = %+v", got)
	}
	if got := all[1].Stats; got != (DayStats{Count: 1, Sum: 6, Min: 6, Max: 6, Average: 6}) {
		t.Fatalf("day 15 stats = %+v", got)
	}
	if got := all[2].Stats; got != (DayStats{Count: 1, Sum: 2, Min: 2, Max: 2, Average: 2}) {
		t.Fatalf("day 22 stats = %+v", got)
	}
}

func TestDayStatsAddSeedsMinMax(t *testing.T) {
	var stats DayStats

	stats = stats.Add(-3.5)

	want := DayStats{Count: 1, Sum: -3.5, Min: -3.5, Max: -3.5, Average: -3.5}
	if stats != want {
		t.Fatalf("Add(-3.5) = %+v, want %+v", stats, want)
	}
}

func TestDayReturnsCopy(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	s := newTestStore(t, ts)

	s.Append(context.Background(), 5, 3, calculator.OpAdd, 8)

	dh, _ := s.Day(15)
	dh.Records[0].Result = 999

	again, _ := s.Day(15)
	if again.Records[0].Result != 8 {
		t.Fatalf("store record mutated through returned slice: %+v", again.Records[0])
	}
}
