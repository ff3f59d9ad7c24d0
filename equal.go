package phamt

// Equal reports whether a and b contain the same set of key/value
// entries (spec.md section 6). It compares structurally — leaves
// agree on hash, key, and value; collision nodes agree on hash and
// have set-equal entry lists (list *order* inside a collision node is
// not part of its identity, only membership); branches agree on
// bitmap and on pairwise-equal children — which correctly yields the
// set-equality result because, with the Insert-into-empty special
// case in InsertWith and the single-child collapse in
// branchNode.deleteAt/filterAt, any two equal-content maps built by this
// package's operations end up with the same bitmap at every level and
// the same child order.
func Equal[V comparable](a, b Map[V]) bool {
	switch an := a.(type) {
	case *leafNode[V]:
		bn, ok := b.(*leafNode[V])
		return ok && an.hash == bn.hash && an.key.Equal(bn.key) && an.val == bn.val

	case *collisionNode[V]:
		bn, ok := b.(*collisionNode[V])
		if !ok || an.hash != bn.hash || len(an.kvs) != len(bn.kvs) {
			return false
		}
		return collisionSetEqual(an.kvs, bn.kvs)

	case *branchNode[V]:
		bn, ok := b.(*branchNode[V])
		if !ok || an.bitmap != bn.bitmap || len(an.children) != len(bn.children) {
			return false
		}
		for i := range an.children {
			if !Equal(an.children[i], bn.children[i]) {
				return false
			}
		}
		return true

	default:
		panic("phamt: equal over unknown node type")
	}
}

// collisionSetEqual reports whether two equal-length collision lists
// hold the same key/value pairs, independent of order. Keys within a
// single collision node are pairwise distinct (invariant 3), so
// length-equal plus every left entry found on the right is sufficient
// — there is no way for a duplicate on one side to paper over a
// missing entry on the other.
func collisionSetEqual[V comparable](xs, ys []entry[V]) bool {
	for _, x := range xs {
		found := false
		for _, y := range ys {
			if x.key.Equal(y.key) {
				found = x.val == y.val
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
