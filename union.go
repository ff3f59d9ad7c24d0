package phamt

// UnionWith combines a and b, calling f(va, vb) to resolve a key
// present in both (a's value is always the first argument — the "new"
// value, in spec.md section 4.6's terms). There is no teacher
// equivalent; this is grounded directly on spec.md section 4.6.
func UnionWith[V any](f func(a, b V) V, a, b Map[V]) Map[V] {
	if IsEmpty(a) {
		return b
	}
	if IsEmpty(b) {
		return a
	}
	return unionAt(0, f, a, b)
}

// Union is UnionWith with a left-biased combiner: on a colliding key,
// a's value wins. This is the unionWith(const) convention spec.md
// section 4.4 uses to define plain insert from insertWith.
func Union[V any](a, b Map[V]) Map[V] {
	return UnionWith(constReplace[V], a, b)
}

func unionAt[V any](depth uint, f func(a, b V) V, a, b node[V]) node[V] {
	switch an := a.(type) {
	case *leafNode[V]:
		// leaf + any: degenerate to insertWith(f, key, value, other)
		// with the leaf's cached hash as the hash.
		out, _ := b.insertWithAt(depth, f, an.hash, an.key, an.val)
		return out

	case *collisionNode[V]:
		// collision + any: fold the collision's list into the other
		// side via insertWith(f, ...).
		out := b
		for _, kv := range an.kvs {
			out, _ = out.insertWithAt(depth, f, an.hash, kv.key, kv.val)
		}
		return out

	case *branchNode[V]:
		if bn, ok := b.(*branchNode[V]); ok {
			return unionBranches(depth, f, an, bn)
		}
		// branch + leaf/collision: swap arguments and flip f so the
		// leaf/collision case above handles it uniformly. Flipping f
		// preserves semantics because unionAt(f, a, b) always treats
		// a's value as the "new" value fed to f.
		flipped := func(x, y V) V { return f(y, x) }
		return unionAt(depth, flipped, b, a)

	default:
		panic("phamt: unionAt over unknown node type")
	}
}

// unionBranches merges two branches at the same depth: the result's
// bitmap is the union of both, and each set bit's child is the
// recursive union when both sides have it, or the sole existing child
// when only one side does — built in one ascending-bit pass, per
// spec.md section 4.6.
func unionBranches[V any](depth uint, f func(a, b V) V, a, b *branchNode[V]) node[V] {
	bm := a.bitmap | b.bitmap
	children := make([]node[V], 0, popcount32(bm))

	for vi := uint(0); vi < tableCapacity; vi++ {
		bit := uint32(1) << vi
		if bm&bit == 0 {
			continue
		}
		aIdx, aok := physicalIndex(a.bitmap, vi)
		bIdx, bok := physicalIndex(b.bitmap, vi)

		switch {
		case aok && bok:
			children = append(children, unionAt(depth+1, f, a.children[aIdx], b.children[bIdx]))
		case aok:
			children = append(children, a.children[aIdx])
		default:
			children = append(children, b.children[bIdx])
		}
	}

	return &branchNode[V]{bitmap: bm, children: children}
}
