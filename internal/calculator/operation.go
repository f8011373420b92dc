package calculator

import (
	"fmt"
	"strings"
)

// Operation is one of the four supported arithmetic operations.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = map[Operation]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

// Operations returns the supported operations in declaration order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// OperationNames returns the command-line names of Operations().
func OperationNames() []string {
	ops := Operations()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.String())
	}
	return names
}

func operationList() string {
	return strings.Join(OperationNames(), ", ")
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// ParseOperation maps an exact, case-sensitive name to an Operation.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations() {
		if op.String() == name {
			return op, nil
		}
	}
	return 0, &UnknownOperationError{Name: name}
}

// Apply dispatches op on a and b.
func Apply(op Operation, a, b Number) (Number, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSubtract:
		return Subtract(a, b)
	case OpMultiply:
		return Multiply(a, b)
	case OpDivide:
		return Divide(a, b)
	default:
		return Number{}, &UnknownOperationError{Name: op.String()}
	}
}
