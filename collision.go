package phamt

import "log"

// collisionNode is a Collision node (spec.md section 3): a single
// 32-bit hash shared by two or more key/value pairs whose keys are
// pairwise distinct but all hash to that value. Grounded on the
// teacher's collisionLeaf (hamt32/collision_leaf.go), generalized to a
// type parameter and reshaped around the explicit rebuild-by-reverse-
// accumulator spec.md section 4.9 calls for.
type collisionNode[V any] struct {
	hash uint32
	kvs  []entry[V] // invariant: len >= 2, pairwise-distinct keys
}

func newCollision[V any](h uint32, kvs []entry[V]) *collisionNode[V] {
	if len(kvs) >= CollisionWarnThreshold {
		log.Printf("collision node at hash 0x%08x reached %d entries; "+
			"check Key.Hash32() quality", h, len(kvs))
	}
	return &collisionNode[V]{hash: h, kvs: kvs}
}

func (c *collisionNode[V]) isHamtNode() {}

func (c *collisionNode[V]) hashAt32() uint32 { return c.hash }

func (c *collisionNode[V]) size() int { return len(c.kvs) }

func (c *collisionNode[V]) lookupAt(h uint32, depth uint, k Key) (V, bool) {
	if c.hash != h {
		var zero V
		return zero, false
	}
	for _, kv := range c.kvs {
		if kv.key.Equal(k) {
			return kv.val, true
		}
	}
	var zero V
	return zero, false
}

// rebuildWithout walks c.kvs from the end backwards, appending every
// entry that does not match k onto an accumulator. Appending while
// walking backwards is the same reversed-survivors result as spec.md
// section 4.9's "fold left over the list, prepending non-matching
// entries onto an accumulator" — both are a single strict O(n) pass
// that fully evaluates the accumulator before returning, so that
// repeated mutation of the same collision node never builds an
// unevaluated rebuild thunk. Go's eager evaluation makes the
// thunk-chain failure mode impossible regardless, but the explicit
// accumulator keeps this function's shape faithful to the spec's
// description.
func rebuildWithout[V any](kvs []entry[V], k Key) (survivors []entry[V], removed entry[V], found bool) {
	survivors = make([]entry[V], 0, len(kvs))
	for i := len(kvs) - 1; i >= 0; i-- {
		kv := kvs[i]
		if !found && kv.key.Equal(k) {
			removed = kv
			found = true
			continue
		}
		survivors = append(survivors, kv)
	}
	return survivors, removed, found
}

func (c *collisionNode[V]) insertWithAt(depth uint, f func(newV, oldV V) V, h uint32, k Key, v V) (node[V], bool) {
	if c.hash != h {
		// Different hash entirely: join this collision node (as a
		// single unit, keyed by its shared hash) with the new leaf.
		return join[V](depth, c, newLeaf[V](h, k, v)), true
	}

	survivors, old, found := rebuildWithout(c.kvs, k)
	if found {
		newKvs := append(survivors, entry[V]{k, f(v, old.val)})
		return newCollision[V](h, newKvs), false
	}
	newKvs := append(survivors, entry[V]{k, v})
	return newCollision[V](h, newKvs), true
}

func (c *collisionNode[V]) deleteAt(depth uint, h uint32, k Key) (node[V], V, bool) {
	if c.hash != h {
		var zero V
		return c, zero, false
	}

	survivors, removed, found := rebuildWithout(c.kvs, k)
	if !found {
		var zero V
		return c, zero, false
	}

	if len(survivors) == 1 {
		// Deleting down to one entry collapses to a leaf (spec.md
		// section 4.5 and section 8, "Deleting the last entry of a
		// collision list must collapse it to a leaf").
		return newLeaf[V](c.hash, survivors[0].key, survivors[0].val), removed.val, true
	}
	return newCollision[V](c.hash, survivors), removed.val, true
}

func (c *collisionNode[V]) filterAt(p func(Key, V) bool) node[V] {
	var survivors []entry[V]
	for _, kv := range c.kvs {
		if p(kv.key, kv.val) {
			survivors = append(survivors, kv)
		}
	}
	switch len(survivors) {
	case 0:
		return nil
	case 1:
		return newLeaf[V](c.hash, survivors[0].key, survivors[0].val)
	default:
		return newCollision[V](c.hash, survivors)
	}
}
