package phamt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	phamt "github.com/lleo/go-phamt"
)

// hashableInt is a minimal phamt.Hashable value type for exercising
// HashMap, which spec.md section 6 specifies only over values that
// supply their own Hash32.
type hashableInt int

func (h hashableInt) Hash32() uint32 { return uint32(h) }

func TestEqualReflexiveAndOrderIndependent(t *testing.T) {
	xs := []phamt.Entry[int]{{strKey(1), 1}, {strKey(2), 2}, {strKey(3), 3}}
	ys := []phamt.Entry[int]{{strKey(3), 3}, {strKey(1), 1}, {strKey(2), 2}}

	a := phamt.FromList(xs)
	b := phamt.FromList(ys)

	require.True(t, phamt.Equal(a, a))
	require.True(t, phamt.Equal(a, b))
}

func TestEqualDetectsDifference(t *testing.T) {
	a := phamt.FromList([]phamt.Entry[int]{{strKey(1), 1}, {strKey(2), 2}})
	b := phamt.FromList([]phamt.Entry[int]{{strKey(1), 1}, {strKey(2), 99}})
	c := phamt.FromList([]phamt.Entry[int]{{strKey(1), 1}})

	require.False(t, phamt.Equal(a, b))
	require.False(t, phamt.Equal(a, c))
}

func TestEqualWithCollisionNodes(t *testing.T) {
	a := phamt.Empty[int]()
	a = phamt.Insert(a, collider("x"), 1)
	a = phamt.Insert(a, collider("y"), 2)

	b := phamt.Empty[int]()
	b = phamt.Insert(b, collider("y"), 2)
	b = phamt.Insert(b, collider("x"), 1)

	require.True(t, phamt.Equal(a, b))
}

func TestHashMapDeterministicAndSensitiveToContent(t *testing.T) {
	a := phamt.FromList([]phamt.Entry[hashableInt]{
		{strKey(1), hashableInt(10)},
		{strKey(2), hashableInt(20)},
	})
	b := phamt.FromList([]phamt.Entry[hashableInt]{
		{strKey(2), hashableInt(20)},
		{strKey(1), hashableInt(10)},
	})
	c := phamt.FromList([]phamt.Entry[hashableInt]{
		{strKey(1), hashableInt(10)},
		{strKey(2), hashableInt(21)},
	})

	require.Equal(t, phamt.HashMap(a), phamt.HashMap(a))
	require.Equal(t, phamt.HashMap(a), phamt.HashMap(b))
	require.NotEqual(t, phamt.HashMap(a), phamt.HashMap(c))
}

func TestHashMapOrderIndependentOnCollisionNode(t *testing.T) {
	// Two maps built by inserting the same colliding keys in different
	// orders end up with different physical collision-list orders
	// (collision.go's rebuildWithout prepends survivors onto a reversed
	// accumulator on every touch), but Equal treats them as identical
	// (TestEqualWithCollisionNodes above), so HashMap must agree too.
	a := phamt.Empty[hashableInt]()
	a = phamt.Insert(a, collider("a"), hashableInt(1))
	a = phamt.Insert(a, collider("b"), hashableInt(2))
	a = phamt.Insert(a, collider("c"), hashableInt(3))

	b := phamt.Empty[hashableInt]()
	b = phamt.Insert(b, collider("c"), hashableInt(3))
	b = phamt.Insert(b, collider("b"), hashableInt(2))
	b = phamt.Insert(b, collider("a"), hashableInt(1))

	require.True(t, phamt.Equal(a, b))
	require.Equal(t, phamt.HashMap(a), phamt.HashMap(b))
}

func TestFromListRoundTripsThroughEach(t *testing.T) {
	// Property 3 of spec.md section 8: fromList(each(m)) == m.
	m := phamt.Empty[int]()
	for i := 0; i < 300; i++ {
		m = phamt.Insert(m, strKey(i), i)
	}

	roundTripped := phamt.FromList(phamt.Each(m))
	require.True(t, phamt.Equal(m, roundTripped))
}
