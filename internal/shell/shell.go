// Package shell implements the interactive menu loop that drives the
// calculator and its history store from a terminal.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"daycalc/internal/calculator"
	"daycalc/internal/history"
	"daycalc/internal/observability"
)

// tracer is the shell's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("shell")

// Shell reads menu selections from a terminal, runs calculator operations
// against a history store, and renders the results. It owns no state beyond
// the store it was given.
type Shell struct {
	in    *bufio.Scanner
	out   io.Writer
	store *history.Store
}

func New(in io.Reader, out io.Writer, store *history.Store) *Shell {
	return &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		store: store,
	}
}

// Run executes the menu loop until the user chooses Exit or the context is
// cancelled. It returns an error only when the input stream is lost; a
// failure inside a single menu action is reported to the user and the loop
// returns to the menu.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		s.printMenu()

		line, err := s.readLine()
		if err != nil {
			return fmt.Errorf("reading menu choice: %w", err)
		}
		choice := strings.TrimSpace(line)

		opCtx := observability.ContextWithOperationID(ctx, observability.NewOperationID())

		exited, err := s.dispatch(opCtx, choice)
		if err != nil {
			return err
		}
		if exited {
			return nil
		}
	}
}

// dispatch runs a single menu selection. The returned error is reserved for
// input-stream loss; everything else is handled inside the action.
func (s *Shell) dispatch(ctx context.Context, choice string) (bool, error) {
	menuCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("menu", menuName(choice))))

	switch choice {
	case "1":
		return false, s.performCalculation(ctx)
	case "2":
		s.viewToday(ctx)
		return false, nil
	case "3":
		return false, s.viewChosenDay(ctx)
	case "4":
		s.viewAll(ctx)
		return false, nil
	case "5":
		s.viewStats(ctx)
		return false, nil
	case "6":
		fmt.Fprintln(s.out, "Thank you for using the calculator!")
		observability.LoggerWithTrace(ctx).Info("session ended",
			zap.String("operation_id", observability.OperationIDFromContext(ctx)),
		)
		return true, nil
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please select 1-6.")
		return false, nil
	}
}

func menuName(choice string) string {
	switch choice {
	case "1":
		return "calculate"
	case "2":
		return "view_today"
	case "3":
		return "view_day"
	case "4":
		return "view_all"
	case "5":
		return "view_stats"
	case "6":
		return "exit"
	default:
		return "invalid"
	}
}

// performCalculation drives menu option 1: prompt for two numbers and an
// operation, validate, evaluate, display, and record under the current day.
func (s *Shell) performCalculation(ctx context.Context) error {
	logger := observability.LoggerWithTrace(ctx)
	operationID := observability.OperationIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "shell.calculate",
		trace.WithAttributes(
			attribute.String("operation.id", operationID),
		),
	)
	defer span.End()

	fmt.Fprintln(s.out, "=== Calculator with Data Storage ===")
	fmt.Fprintln(s.out, "Please enter two numbers and choose an operation.")
	fmt.Fprintln(s.out)

	a, err := s.promptNumber("first")
	if err != nil {
		return fmt.Errorf("reading first number: %w", err)
	}

	b, err := s.promptNumber("second")
	if err != nil {
		return fmt.Errorf("reading second number: %w", err)
	}

	op, err := s.promptOperation()
	if err != nil {
		return fmt.Errorf("reading operation: %w", err)
	}

	span.SetAttributes(
		attribute.Float64("calculator.operand.a", a),
		attribute.Float64("calculator.operand.b", b),
		attribute.String("calculator.operation", op.Name()),
	)

	// A zero divisor is rejected before evaluation; nothing is recorded.
	if err := calculator.Validate(a, b, op); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, op.Name(), "Division by zero is not allowed!", err, s.out)
		return nil
	}

	start := time.Now()
	result, err := calculator.Evaluate(ctx, a, b, op)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, op.Name(), err.Error(), err, s.out)
		return nil
	}

	s.printResult(a, b, op, result)
	rec := s.store.Append(ctx, a, b, op, result)

	span.AddEvent("calculation.recorded", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Int("history.day", rec.Timestamp.Day()),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation completed",
		zap.String("operation", op.Name()),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("result", result),
		zap.String("operation_id", operationID),
		zap.Float64("duration_ms", elapsed),
	)

	return nil
}

// promptNumber re-prompts until the line parses as a float.
func (s *Shell) promptNumber(label string) (float64, error) {
	for {
		fmt.Fprintf(s.out, "Enter the %s number: ", label)

		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return n, nil
		}

		fmt.Fprintln(s.out, "Error: Please enter a valid number (e.g., 5, 3.14, -2)")
	}
}

// promptOperation shows the operations submenu and re-prompts until the line
// names one of the four operations by index or symbol.
func (s *Shell) promptOperation() (calculator.Op, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Available operations:")
	fmt.Fprintln(s.out, "1. Addition (+)")
	fmt.Fprintln(s.out, "2. Subtraction (-)")
	fmt.Fprintln(s.out, "3. Multiplication (*)")
	fmt.Fprintln(s.out, "4. Division (/)")

	for {
		fmt.Fprint(s.out, "\nChoose an operation (1-4 or +, -, *, /): ")

		line, err := s.readLine()
		if err != nil {
			return "", err
		}

		op, err := calculator.ParseOp(strings.TrimSpace(line))
		if err == nil {
			return op, nil
		}

		fmt.Fprintln(s.out, "Error: Please choose a valid operation (1-4 or +, -, *, /)")
	}
}

func (s *Shell) viewToday(ctx context.Context) {
	_, span := tracer.Start(ctx, "shell.view_today")
	defer span.End()

	day := s.store.Today()
	span.SetAttributes(attribute.Int("history.day", day))

	s.renderDay(day)
	span.SetStatus(codes.Ok, "")
}

// viewChosenDay drives menu option 3. The day prompt is single-shot: a bad
// entry reports an error and returns to the menu rather than re-prompting.
func (s *Shell) viewChosenDay(ctx context.Context) error {
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "shell.view_day")
	defer span.End()

	fmt.Fprint(s.out, "Enter day of month (1-31): ")

	line, err := s.readLine()
	if err != nil {
		return fmt.Errorf("reading day: %w", err)
	}

	day, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "view_day", "Please enter a valid day number", err, s.out)
		return nil
	}
	if day < 1 || day > 31 {
		observability.RecordError(ctx, span, logger, errorCounter, "view_day", "Day must be between 1 and 31", fmt.Errorf("day %d out of range", day), s.out)
		return nil
	}

	span.SetAttributes(attribute.Int("history.day", day))

	s.renderDay(day)
	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *Shell) viewAll(ctx context.Context) {
	_, span := tracer.Start(ctx, "shell.view_all")
	defer span.End()

	days := s.store.All()
	span.SetAttributes(attribute.Int("history.days", len(days)))

	s.printAllHistory(days)
	span.SetStatus(codes.Ok, "")
}

func (s *Shell) viewStats(ctx context.Context) {
	_, span := tracer.Start(ctx, "shell.view_stats")
	defer span.End()

	days := s.store.All()
	span.SetAttributes(attribute.Int("history.days", len(days)))

	s.printAllStats(days)
	span.SetStatus(codes.Ok, "")
}

// readLine returns the next input line, or an error when the stream ends.
func (s *Shell) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}
