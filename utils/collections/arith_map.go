package collections

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/tuannh982/arith/utils/math"
)

// ArithMap maps keys to numbers and supports elementwise arithmetic.
// It is a plain Go map underneath, so indexing, range and len work as usual.
// A nil ArithMap reads as empty.
type ArithMap[K comparable, V math.Number] map[K]V

var _ Map[string, int] = ArithMap[string, int](nil)

type Pair[K comparable, V math.Number] struct {
	Key   K
	Value V
}

func New[K comparable, V math.Number]() ArithMap[K, V] {
	return make(ArithMap[K, V])
}

// FromPairs builds a map from the given entries. A key given more than once
// keeps its last value.
func FromPairs[K comparable, V math.Number](pairs ...Pair[K, V]) ArithMap[K, V] {
	m := make(ArithMap[K, V], len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return m
}

// FromMap returns a shallow copy of src.
func FromMap[K comparable, V math.Number](src map[K]V) ArithMap[K, V] {
	m := make(ArithMap[K, V], len(src))
	for k, v := range src {
		m[k] = v
	}
	return m
}

func (m ArithMap[K, V]) Clone() ArithMap[K, V] {
	return FromMap[K, V](m)
}

func (m ArithMap[K, V]) Contains(k K) bool {
	if _, ok := m[k]; ok {
		return true
	}
	return false
}

func (m ArithMap[K, V]) Put(k K, v V, forced bool) error {
	if forced {
		m[k] = v
		return nil
	}
	if m.Contains(k) {
		return ErrKeyExisted
	}
	m[k] = v
	return nil
}

func (m ArithMap[K, V]) Get(k K) (v V, err error) {
	if !m.Contains(k) {
		return v, ErrKeyNotExisted
	}
	return m[k], nil
}

func (m ArithMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrKeyNotExisted
	}
	delete(m, k)
	return nil
}

func (m ArithMap[K, V]) Size() int {
	return len(m)
}

func (m ArithMap[K, V]) Keys() []K {
	return maps.Keys(m)
}

func (m ArithMap[K, V]) Values() []V {
	return maps.Values(m)
}

func (m ArithMap[K, V]) Pairs() []Pair[K, V] {
	arr := make([]Pair[K, V], 0, m.Size())
	for k, v := range m {
		arr = append(arr, Pair[K, V]{Key: k, Value: v})
	}
	return arr
}

// Equal reports whether both maps hold the same keys with exactly equal
// values. Nil and empty maps are equal.
func (m ArithMap[K, V]) Equal(other ArithMap[K, V]) bool {
	return maps.Equal(m, other)
}

func (m ArithMap[K, V]) String() string {
	return fmt.Sprint(map[K]V(m))
}

func SortedKeys[K constraints.Ordered, V math.Number](m ArithMap[K, V]) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
