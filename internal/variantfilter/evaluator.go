package variantfilter

import (
	"fmt"
	"strings"

	"github.com/lucidseq/poaconsensus/internal/poa"
)

// Matches reports whether m satisfies expr.
func Matches(expr Expr, m poa.Mutation) (bool, error) {
	switch e := expr.(type) {
	case *BinaryExpr:
		return evalBinary(e, m)
	case *NotExpr:
		v, err := Matches(e.Expr, m)
		if err != nil {
			return false, err
		}
		return !v, nil
	case *ComparisonExpr:
		return evalComparison(e, m)
	default:
		return false, fmt.Errorf("variantfilter: unknown expr type %T", expr)
	}
}

func evalBinary(e *BinaryExpr, m poa.Mutation) (bool, error) {
	left, err := Matches(e.Left, m)
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(e.Op) {
	case "AND":
		if !left {
			return false, nil
		}
		return Matches(e.Right, m)
	case "OR":
		if left {
			return true, nil
		}
		return Matches(e.Right, m)
	default:
		return false, fmt.Errorf("variantfilter: unknown binary op %q", e.Op)
	}
}

func evalComparison(e *ComparisonExpr, m poa.Mutation) (bool, error) {
	left, err := resolveOperand(e.Left, m)
	if err != nil {
		return false, err
	}
	right, err := resolveOperand(e.Right, m)
	if err != nil {
		return false, err
	}
	return compare(e.Op, left, right)
}

func resolveOperand(op Operand, m poa.Mutation) (interface{}, error) {
	switch o := op.(type) {
	case *LiteralOperand:
		return o.Value, nil
	case *FieldOperand:
		return resolveField(o.Field, m)
	default:
		return nil, fmt.Errorf("variantfilter: unknown operand type %T", op)
	}
}

func resolveField(field string, m poa.Mutation) (interface{}, error) {
	switch field {
	case "kind":
		return m.Kind.String(), nil
	case "position":
		return m.Position, nil
	case "base":
		return string(m.Base), nil
	case "score":
		return m.Score, nil
	default:
		return nil, fmt.Errorf("variantfilter: unknown field %q", field)
	}
}
