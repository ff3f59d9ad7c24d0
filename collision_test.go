package phamt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	phamt "github.com/lleo/go-phamt"
	"github.com/lleo/go-phamt/hamtkey"
)

func collider(id string) hamtkey.Collider {
	return hamtkey.Collider{Const: 0, ID: id}
}

func TestCollisionNodeGrowsAndShrinks(t *testing.T) {
	// Scenario 3 of spec.md section 8: a key type whose hash is always
	// 0, inserting k1..k5 builds a 5-entry collision node at the root.
	m := phamt.Empty[int]()
	for i, id := range []string{"k1", "k2", "k3", "k4", "k5"} {
		m = phamt.Insert(m, collider(id), i+1)
	}
	require.Equal(t, 5, phamt.Size(m))
	require.NoError(t, phamt.CheckInvariants(m))

	for i, id := range []string{"k1", "k2", "k3", "k4", "k5"} {
		v, found := phamt.Lookup(m, collider(id))
		require.True(t, found, id)
		require.Equal(t, i+1, v)
	}

	m, _, deleted := phamt.Delete(m, collider("k3"))
	require.True(t, deleted)
	require.Equal(t, 4, phamt.Size(m))
	require.NoError(t, phamt.CheckInvariants(m))
	_, found := phamt.Lookup(m, collider("k3"))
	require.False(t, found)

	for _, id := range []string{"k2", "k4", "k5"} {
		m, _, deleted = phamt.Delete(m, collider(id))
		require.True(t, deleted)
	}
	require.Equal(t, 1, phamt.Size(m))
	require.NoError(t, phamt.CheckInvariants(m))

	v, found := phamt.Lookup(m, collider("k1"))
	require.True(t, found)
	require.Equal(t, 1, v)
}

func TestCollisionNodeInsertWithCombinesOnMatchingKey(t *testing.T) {
	m := phamt.Empty[int]()
	m = phamt.Insert(m, collider("a"), 1)
	m = phamt.Insert(m, collider("b"), 2)

	m, added := phamt.InsertWith(m, func(n, o int) int { return n + o }, collider("a"), 10)
	require.False(t, added)
	v, _ := phamt.Lookup(m, collider("a"))
	require.Equal(t, 11, v)
	require.Equal(t, 2, phamt.Size(m))
	require.NoError(t, phamt.CheckInvariants(m))
}

func TestCollisionNodeJoinsWithDifferentHashLeaf(t *testing.T) {
	m := phamt.Empty[int]()
	m = phamt.Insert(m, collider("a"), 1)
	m = phamt.Insert(m, collider("b"), 2)

	// A key that hashes elsewhere must not disturb the collision node.
	m = phamt.Insert(m, strKey(1), 100)
	require.Equal(t, 3, phamt.Size(m))
	require.NoError(t, phamt.CheckInvariants(m))

	v, found := phamt.Lookup(m, collider("a"))
	require.True(t, found)
	require.Equal(t, 1, v)

	v, found = phamt.Lookup(m, strKey(1))
	require.True(t, found)
	require.Equal(t, 100, v)
}

func TestCollisionNodeFilterCollapsesToLeaf(t *testing.T) {
	m := phamt.Empty[int]()
	m = phamt.Insert(m, collider("a"), 1)
	m = phamt.Insert(m, collider("b"), 2)
	m = phamt.Insert(m, collider("c"), 3)

	out := phamt.Filter(m, func(v int) bool { return v == 2 })
	require.Equal(t, 1, phamt.Size(out))
	v, found := phamt.Lookup(out, collider("b"))
	require.True(t, found)
	require.Equal(t, 2, v)
	require.NoError(t, phamt.CheckInvariants(out))
}

func TestCollisionNodeDeleteAbsentKeyUnchanged(t *testing.T) {
	m := phamt.Empty[int]()
	m = phamt.Insert(m, collider("a"), 1)
	m = phamt.Insert(m, collider("b"), 2)

	out, _, deleted := phamt.Delete(m, collider("nope"))
	require.False(t, deleted)
	require.True(t, phamt.Equal(m, out))
}
