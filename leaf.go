package phamt

// leafNode is a Leaf (spec.md section 3): one key, one value, and the
// cached 32-bit hash of the key, so later descents and rebalances never
// recompute it. Grounded on the teacher's flatLeaf
// (hamt32/flat_leaf.go), generalized from interface{} to a type
// parameter.
type leafNode[V any] struct {
	hash uint32
	key  Key
	val  V
}

func newLeaf[V any](h uint32, k Key, v V) *leafNode[V] {
	return &leafNode[V]{hash: h, key: k, val: v}
}

func (l *leafNode[V]) isHamtNode() {}

func (l *leafNode[V]) hashAt32() uint32 { return l.hash }

func (l *leafNode[V]) size() int { return 1 }

func (l *leafNode[V]) lookupAt(h uint32, depth uint, k Key) (V, bool) {
	if l.hash == h && l.key.Equal(k) {
		return l.val, true
	}
	var zero V
	return zero, false
}

func (l *leafNode[V]) insertWithAt(depth uint, f func(newV, oldV V) V, h uint32, k Key, v V) (node[V], bool) {
	if l.hash == h {
		if l.key.Equal(k) {
			// Same key: the new leaf's value is f(v, l.val), evaluated
			// to normal form (automatic in Go's eager evaluation)
			// before being stored, per spec.md section 4.4.
			return newLeaf[V](h, l.key, f(v, l.val)), false
		}
		// Same hash, different key: bundle into a two-entry collision
		// node (spec.md section 3, Collision node; section 4.4).
		return newCollision[V](h, []entry[V]{{l.key, l.val}, {k, v}}), true
	}
	// Different hash: join the two leaves via section 4.7.
	return join[V](depth, l, newLeaf[V](h, k, v)), true
}

func (l *leafNode[V]) deleteAt(depth uint, h uint32, k Key) (node[V], V, bool) {
	if l.hash == h && l.key.Equal(k) {
		return nil, l.val, true
	}
	var zero V
	return l, zero, false
}

func (l *leafNode[V]) filterAt(p func(Key, V) bool) node[V] {
	if p(l.key, l.val) {
		return l
	}
	return nil
}
