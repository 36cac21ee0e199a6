package shell

import (
	"fmt"
	"strings"

	"daycalc/internal/calculator"
	"daycalc/internal/history"
)

const timestampLayout = "2006-01-02 15:04:05"

func (s *Shell) printMenu() {
	rule := strings.Repeat("=", 50)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "CALCULATOR MENU")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "1. Perform calculation")
	fmt.Fprintln(s.out, "2. View today's calculations")
	fmt.Fprintln(s.out, "3. View calculations for specific day")
	fmt.Fprintln(s.out, "4. View all calculation history")
	fmt.Fprintln(s.out, "5. View daily statistics")
	fmt.Fprintln(s.out, "6. Exit")
	fmt.Fprintln(s.out, rule)
	fmt.Fprint(s.out, "Choose an option (1-6): ")
}

func (s *Shell) printResult(a, b float64, op calculator.Op, result float64) {
	rule := strings.Repeat("=", 40)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "CALCULATION RESULT")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, formatCalculation(a, b, op, result))
	fmt.Fprintln(s.out, rule)
}

// renderDay prints one day's records and statistics, or the empty-day line.
func (s *Shell) renderDay(day int) {
	dh, ok := s.store.Day(day)
	if !ok {
		fmt.Fprintf(s.out, "No calculations found for day %d\n", day)
		return
	}

	fmt.Fprintf(s.out, "\n=== Calculations for Day %d ===\n", dh.Day)
	for i, rec := range dh.Records {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, formatRecord(rec))
	}

	fmt.Fprintf(s.out, "\nDay %d Statistics:\n", dh.Day)
	s.printStatsBlock(dh.Stats)
}

func (s *Shell) printAllHistory(days []history.DayHistory) {
	if len(days) == 0 {
		fmt.Fprintln(s.out, "No calculation history available.")
		return
	}

	fmt.Fprintln(s.out, "\n=== All Calculation History ===")
	for _, dh := range days {
		fmt.Fprintf(s.out, "\nDay %d (%d calculations):\n", dh.Day, len(dh.Records))
		for _, rec := range dh.Records {
			fmt.Fprintf(s.out, "  %s\n", formatRecord(rec))
		}
	}
}

func (s *Shell) printAllStats(days []history.DayHistory) {
	if len(days) == 0 {
		fmt.Fprintln(s.out, "No statistics available.")
		return
	}

	fmt.Fprintln(s.out, "\n=== Daily Statistics ===")
	for _, dh := range days {
		fmt.Fprintf(s.out, "\nDay %d:\n", dh.Day)
		s.printStatsBlock(dh.Stats)
	}
}

// printStatsBlock renders the statistics lines shared by the day and
// statistics views. Float values use two decimals.
func (s *Shell) printStatsBlock(stats history.DayStats) {
	fmt.Fprintf(s.out, "  Total calculations: %d\n", stats.Count)
	fmt.Fprintf(s.out, "  Sum of results: %.2f\n", stats.Sum)
	fmt.Fprintf(s.out, "  Average result: %.2f\n", stats.Average)
	fmt.Fprintf(s.out, "  Min result: %.2f\n", stats.Min)
	fmt.Fprintf(s.out, "  Max result: %.2f\n", stats.Max)
}

func formatCalculation(a, b float64, op calculator.Op, result float64) string {
	return fmt.Sprintf("%g %s %g = %g", a, op, b, result)
}

func formatRecord(rec history.Record) string {
	return fmt.Sprintf("%s: %s", rec.Timestamp.Format(timestampLayout), formatCalculation(rec.A, rec.B, rec.Op, rec.Result))
}
