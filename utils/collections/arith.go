package collections

import (
	"golang.org/x/exp/maps"

	"github.com/tuannh982/arith/utils/math"
)

// Methods without the InPlace suffix never modify their operands and always
// return a non-nil map. Map-to-map operations work on the union of keys, a
// key missing from one side counting as zero.

func (m ArithMap[K, V]) AddScalar(s V) ArithMap[K, V] {
	r := m.Clone()
	r.AddScalarInPlace(s)
	return r
}

func (m ArithMap[K, V]) AddScalarInPlace(s V) {
	for k := range m {
		m[k] += s
	}
}

func (m ArithMap[K, V]) SubScalar(s V) ArithMap[K, V] {
	r := m.Clone()
	r.SubScalarInPlace(s)
	return r
}

func (m ArithMap[K, V]) SubScalarInPlace(s V) {
	for k := range m {
		m[k] -= s
	}
}

func (m ArithMap[K, V]) MulScalar(s V) ArithMap[K, V] {
	r := m.Clone()
	r.MulScalarInPlace(s)
	return r
}

func (m ArithMap[K, V]) MulScalarInPlace(s V) {
	for k := range m {
		m[k] *= s
	}
}

// Add returns m + other.
func (m ArithMap[K, V]) Add(other ArithMap[K, V]) ArithMap[K, V] {
	r := m.Clone()
	r.AddInPlace(other)
	return r
}

// AddInPlace adds other into m. m must be non-nil unless other is empty.
func (m ArithMap[K, V]) AddInPlace(other ArithMap[K, V]) {
	for k, v := range other {
		m[k] += v
	}
}

// Sub returns m - other. Keys only present in other come out negated.
func (m ArithMap[K, V]) Sub(other ArithMap[K, V]) ArithMap[K, V] {
	r := m.Clone()
	r.SubInPlace(other)
	return r
}

// SubInPlace subtracts other from m. m must be non-nil unless other is empty.
func (m ArithMap[K, V]) SubInPlace(other ArithMap[K, V]) {
	for k, v := range other {
		m[k] -= v
	}
}

// Prune returns the entries of m whose value is not exactly zero.
// Floating point values close to zero are kept.
func (m ArithMap[K, V]) Prune() ArithMap[K, V] {
	r := make(ArithMap[K, V], len(m))
	for k, v := range m {
		if !math.IsZero(v) {
			r[k] = v
		}
	}
	return r
}

func (m ArithMap[K, V]) PruneInPlace() {
	maps.DeleteFunc(m, func(_ K, v V) bool {
		return math.IsZero(v)
	})
}
