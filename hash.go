package phamt

// Hashable is the constraint HashMap requires of a Map's value type:
// values must supply their own deterministic 32-bit hash, the same way
// Key does for keys (spec.md section 6: "Values are opaque to the
// container except for equality ... and for optional hashing").
type Hashable interface {
	Hash32() uint32
}

// mix folds b into accumulator a the way spec.md section 6 specifies:
// a' = 31*a + b. The multiplier and the per-variant seeds below (1 for
// leaves, 2 for collisions, 3 for branches) are taken verbatim from the
// spec; there is no teacher equivalent (the teacher has no Hash() on
// its Hamt type at all).
func mix(a, b uint32) uint32 {
	return 31*a + b
}

// HashMap computes a deterministic 32-bit hash of m's entire content,
// combining constituent hashes per spec.md section 6: leaves contribute
// (hash, hash(value)), collisions contribute (hash, hash(values)),
// branches contribute (bitmap, hash(children)), each mixed into an
// accumulator seeded per variant (1, 2, 3 respectively).
func HashMap[V Hashable](m Map[V]) uint32 {
	switch n := m.(type) {
	case *leafNode[V]:
		acc := mix(1, n.hash)
		return mix(acc, n.val.Hash32())

	case *collisionNode[V]:
		// n.kvs is in insertion-history order, not a canonical one (two
		// maps built by inserting the same colliding keys in different
		// orders end up with different physical list orders — see
		// collision.go's rebuildWithout), so hash(values) is reduced
		// with plain uint32 addition rather than folded positionally
		// with mix: addition is commutative, so this collapses to the
		// same value regardless of list order, matching collisionSetEqual's
		// (equal.go) order-independent notion of collision-node equality.
		var valuesHash uint32
		for _, kv := range n.kvs {
			valuesHash += kv.val.Hash32()
		}
		return mix(mix(2, n.hash), valuesHash)

	case *branchNode[V]:
		acc := mix(3, n.bitmap)
		for _, c := range n.children {
			acc = mix(acc, HashMap(c))
		}
		return acc

	default:
		panic("phamt: hashMap over unknown node type")
	}
}
