package prob

import (
	"fmt"
	"reflect"
)

// KeyShape controls the shape of the keys produced when two outcomes are
// combined by [Dist.Joint] or [Dist.Repeated].
type KeyShape int

const (
	// KeyAuto combines outcomes directly when their types allow it
	// (concatenating strings, summing like-typed integers, concatenating
	// tuples) and falls back to a pair otherwise.
	KeyAuto KeyShape = iota

	// KeyTuple always produces tuple-shaped keys.
	KeyTuple
)

// KeyPolicy controls how [Dist.Joint] and [Dist.Repeated] combine a pair of
// outcomes into a single key. The zero value is the default policy:
// [KeyAuto] with no separator.
type KeyPolicy struct {
	Shape     KeyShape
	Separator string
}

// combineKeys merges a pair of outcomes into a joint-distribution key.
// The policy is evaluated in strict order:
//
//  1. a non-empty separator joins the printed outcomes into a string;
//  2. with [KeyAuto], directly combinable outcomes are combined, and any
//     other pair of types deterministically degrades to the pair [2]any;
//  3. with [KeyTuple], tuple operands are concatenated, promoting a bare
//     operand to a one-element tuple first;
//  4. otherwise the result is the pair [2]any.
//
// The degrade-to-pair step is policy, not error recovery: nothing is
// swallowed, and outcomes that cannot form map keys still fail loudly.
func combineKeys(a, b Outcome, key KeyPolicy) Outcome {
	if key.Separator != "" {
		return fmt.Sprint(a) + key.Separator + fmt.Sprint(b)
	}
	if key.Shape != KeyTuple {
		if k, ok := addOutcomes(a, b); ok {
			return k
		}
		return [2]Outcome{a, b}
	}
	at, aok := asTuple(a)
	bt, bok := asTuple(b)
	if aok || bok {
		if !aok {
			at = []Outcome{a}
		}
		if !bok {
			bt = []Outcome{b}
		}
		return tupleOf(append(append(make([]Outcome, 0, len(at)+len(bt)), at...), bt...))
	}
	return [2]Outcome{a, b}
}

// addOutcomes attempts the direct typed combination of two outcomes:
// string concatenation, like-typed integer or float addition, or tuple
// concatenation.
func addOutcomes(a, b Outcome) (Outcome, bool) {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return x + y, true
		}
	case int:
		if y, ok := b.(int); ok {
			return x + y, true
		}
	case int64:
		if y, ok := b.(int64); ok {
			return x + y, true
		}
	case uint64:
		if y, ok := b.(uint64); ok {
			return x + y, true
		}
	case float64:
		if y, ok := b.(float64); ok {
			return x + y, true
		}
	}
	if at, ok := asTuple(a); ok {
		if bt, ok := asTuple(b); ok {
			return tupleOf(append(append(make([]Outcome, 0, len(at)+len(bt)), at...), bt...)), true
		}
	}
	return nil, false
}

// Tuple returns a fixed-size tuple outcome holding the given elements.
// The result is an [N]any array value, so it is comparable, usable as a map
// key, and recoverable by callers with an assertion such as x.([2]any).
func Tuple(elems ...Outcome) Outcome {
	return tupleOf(elems)
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

func tupleOf(elems []Outcome) Outcome {
	arr := reflect.New(reflect.ArrayOf(len(elems), anyType)).Elem()
	for i, e := range elems {
		if e != nil {
			arr.Index(i).Set(reflect.ValueOf(e))
		}
	}
	return arr.Interface()
}

// asTuple reports whether an outcome is a tuple ([N]any array) and, if so,
// returns its elements.
func asTuple(x Outcome) ([]Outcome, bool) {
	v := reflect.ValueOf(x)
	if !v.IsValid() || v.Kind() != reflect.Array || v.Type().Elem() != anyType {
		return nil, false
	}
	elems := make([]Outcome, v.Len())
	for i := range elems {
		elems[i] = v.Index(i).Interface()
	}
	return elems, true
}
