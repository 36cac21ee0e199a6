package calculator

import "fmt"

// Op is one of the four arithmetic operators.
type Op string

const (
	OpAdd      Op = "+"
	OpSubtract Op = "-"
	OpMultiply Op = "*"
	OpDivide   Op = "/"
)

// menuOps maps the numeric submenu choices to operators.
var menuOps = map[string]Op{
	"1": OpAdd,
	"2": OpSubtract,
	"3": OpMultiply,
	"4": OpDivide,
}

// ParseOp interprets an operation choice: either the operator symbol itself
// or its numeric menu index 1-4. Input is expected to be trimmed.
func ParseOp(s string) (Op, error) {
	if op, ok := menuOps[s]; ok {
		return op, nil
	}

	switch op := Op(s); op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return op, nil
	}

	return "", fmt.Errorf("invalid operation %q", s)
}

// Name returns the spelled-out operation name used in metrics, spans and logs.
func (o Op) Name() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	}
	return "unknown"
}

// String returns the operator symbol as displayed to the user.
func (o Op) String() string { return string(o) }
