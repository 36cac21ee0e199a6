package calculator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

var (
	// ErrDivisionByZero rejects a zero divisor. It is a validation failure,
	// surfaced before evaluation; Evaluate also refuses it rather than
	// producing an IEEE-754 infinity.
	ErrDivisionByZero = errors.New("division by zero is not allowed")

	// ErrUnknownOperation marks an operator outside the four recognized
	// symbols reaching Evaluate. The shell pre-validates operators, so in
	// practice this is a programming-logic fault.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Validate rejects inputs that must not reach Evaluate: a zero divisor when
// the operation is division. Nothing else is checked; all finite float64
// operands are valid for the other operators.
func Validate(a, b float64, op Op) error {
	if op == OpDivide && b == 0 {
		return ErrDivisionByZero
	}
	return nil
}

// Evaluate applies op to a and b using float64 semantics and records the
// operation's telemetry: a child span with operand attributes, the operation
// counter, the duration histogram and the last-result gauge. With no SDK
// installed at startup all of that is a no-op. Evaluate has no data side
// effects.
func Evaluate(ctx context.Context, a, b float64, op Op) (float64, error) {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", op.Name()),
		trace.WithAttributes(
			attribute.String("calculator.operation", op.Name()),
			attribute.Float64("calculator.operand.a", a),
			attribute.Float64("calculator.operand.b", b),
		),
	)
	defer span.End()

	start := time.Now()
	result, err := compute(a, b, op)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op.Name())))
		return 0, err
	}

	attrs := metric.WithAttributes(attribute.String("operation", op.Name()))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	return result, nil
}

func compute(a, b float64, op Op) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
}
