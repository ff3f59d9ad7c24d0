package phamt_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	phamt "github.com/lleo/go-phamt"
	"github.com/lleo/go-phamt/hamtkey"
)

// checkInvariantsIfStrict is the test helper phamt.StrictInvariants'
// doc comment (doc.go) promises: when the switch is on, it calls
// CheckInvariants after the one mutation the caller just performed;
// when it is off (the default), it does nothing, leaving a test's own
// coarser, periodic invariant checks as the only check. Production
// code never reads StrictInvariants — only this helper and its callers
// do.
func checkInvariantsIfStrict[V any](t *testing.T, m phamt.Map[V]) {
	t.Helper()
	if phamt.StrictInvariants {
		require.NoError(t, phamt.CheckInvariants(m))
	}
}

// TestRandomInsertDeleteMaintainsInvariants runs a randomized sequence
// of inserts, updates, and deletes against a Go map tracking the
// expected content, checking both against each other and against
// CheckInvariants periodically. This mirrors the teacher's own large
// randomized stress loops (hamt32/main_test.go, hamt_test.go) but
// keeps the model simple enough to run in a unit test rather than a
// 512k-entry stress binary.
func TestRandomInsertDeleteMaintainsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const universe = 500
	const ops = 20000

	m := phamt.Empty[int]()
	expected := make(map[hamtkey.StringKey]int)

	for op := 0; op < ops; op++ {
		i := rng.Intn(universe)
		k := strKey(i)

		switch rng.Intn(3) {
		case 0, 1: // insert/update, weighted to grow the map
			v := rng.Intn(1 << 20)
			m = phamt.Insert(m, k, v)
			expected[k] = v

		case 2: // delete
			out, val, deleted := phamt.Delete(m, k)
			want, inExpected := expected[k]
			require.Equal(t, inExpected, deleted, "op %d key %s", op, k)
			if deleted {
				require.Equal(t, want, val)
				delete(expected, k)
			}
			m = out
		}
		checkInvariantsIfStrict(t, m)

		if op%500 == 0 {
			require.NoError(t, phamt.CheckInvariants(m), "op %d", op)
			require.Equal(t, len(expected), phamt.Size(m), "op %d", op)
		}
	}

	require.NoError(t, phamt.CheckInvariants(m))
	require.Equal(t, len(expected), phamt.Size(m))

	for k, v := range expected {
		got, found := phamt.Lookup(m, k)
		require.True(t, found, k)
		require.Equal(t, v, got)
	}

	for _, e := range phamt.Each(m) {
		k := e.Key.(hamtkey.StringKey)
		want, ok := expected[k]
		require.True(t, ok, k)
		require.Equal(t, want, e.Val)
	}
}

// TestStrictInvariantsChecksEveryMutation flips phamt.StrictInvariants
// on for its own duration and drives checkInvariantsIfStrict after
// every single insert and delete, rather than the periodic sampling
// TestRandomInsertDeleteMaintainsInvariants settles for. Restores the
// switch on exit so it doesn't leak into other tests.
func TestStrictInvariantsChecksEveryMutation(t *testing.T) {
	old := phamt.StrictInvariants
	phamt.StrictInvariants = true
	t.Cleanup(func() { phamt.StrictInvariants = old })

	m := phamt.Empty[int]()
	for i := 0; i < 500; i++ {
		m = phamt.Insert(m, strKey(i), i)
		checkInvariantsIfStrict(t, m)
	}
	for i := 0; i < 500; i++ {
		var deleted bool
		m, _, deleted = phamt.Delete(m, strKey(i))
		require.True(t, deleted, i)
		checkInvariantsIfStrict(t, m)
	}
	require.True(t, phamt.IsEmpty(m))
}

func TestIdempotentSameValueInsert(t *testing.T) {
	m := phamt.Empty[int]()
	for i := 0; i < 64; i++ {
		m = phamt.Insert(m, strKey(i), i)
	}

	once := phamt.Insert(m, strKey(5), 5)
	twice := phamt.Insert(once, strKey(5), 5)
	require.True(t, phamt.Equal(once, twice))
}

func TestInsertPreservesOtherKeys(t *testing.T) {
	m := phamt.Empty[int]()
	for i := 0; i < 128; i++ {
		m = phamt.Insert(m, strKey(i), i)
	}

	m2 := phamt.Insert(m, strKey(200), 200)
	for i := 0; i < 128; i++ {
		v, found := phamt.Lookup(m2, strKey(i))
		require.True(t, found)
		require.Equal(t, i, v)
	}
}

func TestDeletePreservesOtherKeys(t *testing.T) {
	m := phamt.Empty[int]()
	for i := 0; i < 128; i++ {
		m = phamt.Insert(m, strKey(i), i)
	}

	m2, _, _ := phamt.Delete(m, strKey(50))
	for i := 0; i < 128; i++ {
		if i == 50 {
			continue
		}
		v, found := phamt.Lookup(m2, strKey(i))
		require.True(t, found)
		require.Equal(t, i, v)
	}
	_, found := phamt.Lookup(m2, strKey(50))
	require.False(t, found)
}
