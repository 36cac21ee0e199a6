// Package history keeps the process-lifetime calculation history, keyed by
// day of month, with running per-day statistics.
package history

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"daycalc/internal/calculator"
)

// tracer is the history store's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("history")

// Record is one stored calculation. Immutable once created.
type Record struct {
	ID        uuid.UUID     // assigned at append
	Timestamp time.Time     // wall-clock time of the calculation
	A         float64       // first operand
	B         float64       // second operand
	Op        calculator.Op // operator symbol
	Result    float64       // calculated result
}

// DayStats holds the running statistics over one day's results.
type DayStats struct {
	Count   int
	Sum     float64
	Min     float64
	Max     float64
	Average float64
}

// Add returns the statistics updated with one more result. Before the first
// record Min and Max act as +Inf/-Inf sentinels, so the first result wins
// both comparisons. Pure: the receiver is unchanged.
func (s DayStats) Add(result float64) DayStats {
	if s.Count == 0 {
		s.Min = math.Inf(1)
		s.Max = math.Inf(-1)
	}

	s.Count++
	s.Sum += result
	s.Min = math.Min(s.Min, result)
	s.Max = math.Max(s.Max, result)
	s.Average = s.Sum / float64(s.Count)

	return s
}

// DayHistory bundles one day's records, in insertion order, with that day's
// statistics.
type DayHistory struct {
	Day     int
	Records []Record
	Stats   DayStats
}

// Store maps day-of-month (1-31) to that day's calculations and statistics.
// A day has a statistics entry exactly when it has at least one record.
// State lives for the process only; the single-operator scope needs no
// locking.
type Store struct {
	records map[int][]Record
	stats   map[int]DayStats

	now func() time.Time // swappable in tests
}

// NewStore returns an empty store using the system clock.
func NewStore() *Store {
	return &Store{
		records: make(map[int][]Record),
		stats:   make(map[int]DayStats),
		now:     time.Now,
	}
}

// Append files a calculation under the current day and updates that day's
// statistics incrementally. The day comes from the store clock at the moment
// of the call, never from the caller. Returns the stored record.
func (s *Store) Append(ctx context.Context, a, b float64, op calculator.Op, result float64) Record {
	ts := s.now()
	day := ts.Day()

	ctx, span := tracer.Start(ctx, "history.append",
		trace.WithAttributes(
			attribute.Int("history.day", day),
			attribute.String("history.operation", op.Name()),
		),
	)
	defer span.End()

	rec := Record{
		ID:        uuid.New(),
		Timestamp: ts,
		A:         a,
		B:         b,
		Op:        op,
		Result:    result,
	}

	s.records[day] = append(s.records[day], rec)
	s.stats[day] = s.stats[day].Add(result)

	recordsCounter.Add(ctx, 1, metric.WithAttributes(attribute.Int("day", day)))
	daysGauge.Record(ctx, int64(len(s.records)))

	return rec
}

// Today returns the current day-of-month from the store clock, so views of
// "today" agree with where Append files new records.
func (s *Store) Today() int {
	return s.now().Day()
}

// Day returns the records and statistics for one day. ok is false when the
// day has no records; that is absence, not an error. The returned slice is a
// copy.
func (s *Store) Day(day int) (DayHistory, bool) {
	recs, ok := s.records[day]
	if !ok || len(recs) == 0 {
		return DayHistory{}, false
	}

	out := make([]Record, len(recs))
	copy(out, recs)

	return DayHistory{Day: day, Records: out, Stats: s.stats[day]}, true
}

// All returns every day with at least one record, sorted ascending by day
// number.
func (s *Store) All() []DayHistory {
	days := make([]int, 0, len(s.records))
	for day := range s.records {
		days = append(days, day)
	}
	sort.Ints(days)

	all := make([]DayHistory, 0, len(days))
	for _, day := range days {
		if dh, ok := s.Day(day); ok {
			all = append(all, dh)
		}
	}
	return all
}
