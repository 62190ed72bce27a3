package math

import "golang.org/x/exp/constraints"

// Number is any type with +, -, * and an additive identity.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

func Zero[T Number]() T {
	var zero T
	return zero
}

func IsZero[T Number](v T) bool {
	return v == Zero[T]()
}
