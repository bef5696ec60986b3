package value

import (
	"encoding/json"
	"math/big"
)

// Equal compares two trees structurally. Object member order is ignored and
// numbers are compared by numeric value, so json.Number("1.0") equals
// float64(1).
func Equal(a, b any) bool {
	if oa, ok := AsObject(a); ok {
		ob, ok := AsObject(b)
		if !ok || oa.Len() != ob.Len() {
			return false
		}
		equal := true
		oa.Range(func(k string, va any) bool {
			vb, ok := ob.Get(k)
			if !ok || !Equal(va, vb) {
				equal = false
			}
			return equal
		})
		return equal
	}
	switch ta := a.(type) {
	case []any:
		tb, ok := b.([]any)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !Equal(ta[i], tb[i]) {
				return false
			}
		}
		return true
	case string:
		tb, ok := b.(string)
		return ok && ta == tb
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	case nil:
		return b == nil
	}
	na, ok := number(a)
	if !ok {
		return false
	}
	nb, ok := number(b)
	if !ok {
		return false
	}
	return na.Cmp(nb) == 0
}

func number(v any) (*big.Float, bool) {
	switch t := v.(type) {
	case json.Number:
		f, _, err := big.ParseFloat(string(t), 10, 256, big.ToNearestEven)
		if err != nil {
			return nil, false
		}
		return f, true
	case float64:
		return new(big.Float).SetPrec(256).SetFloat64(t), true
	case float32:
		return new(big.Float).SetPrec(256).SetFloat64(float64(t)), true
	case int:
		return new(big.Float).SetPrec(256).SetInt64(int64(t)), true
	case int64:
		return new(big.Float).SetPrec(256).SetInt64(t), true
	}
	return nil, false
}
