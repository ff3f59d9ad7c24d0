package phamt

// FoldWithKey is a strict left fold over every key/value pair in m,
// visiting a branch's children in array order (ascending virtual
// slot) and a collision node's entries in list order, per spec.md
// section 4.10. Each step's result is evaluated before the next step
// starts — automatic under Go's eager evaluation, but named here to
// match the spec's strictness contract.
func FoldWithKey[V, A any](m Map[V], z A, f func(A, Key, V) A) A {
	switch n := m.(type) {
	case *leafNode[V]:
		return f(z, n.key, n.val)
	case *collisionNode[V]:
		acc := z
		for _, kv := range n.kvs {
			acc = f(acc, kv.key, kv.val)
		}
		return acc
	case *branchNode[V]:
		acc := z
		for _, c := range n.children {
			acc = FoldWithKey(c, acc, f)
		}
		return acc
	default:
		panic("phamt: fold over unknown node type")
	}
}

// Fold is FoldWithKey with the key projected away.
func Fold[V, A any](m Map[V], z A, f func(A, V) A) A {
	return FoldWithKey(m, z, func(acc A, _ Key, v V) A { return f(acc, v) })
}

// FoldRWithKey is the right-fold counterpart of FoldWithKey (spec.md
// section 4.10). It is documented as present for completeness, not
// preferred: a naive recursive foldr would recurse once per collision
// entry and once per branch child, and spec.md section 4.9 specifically
// calls out unbounded collision lists as a stack-depth risk. This
// implementation sidesteps that by first snapshotting m's entries in
// the same order FoldWithKey would visit them (Each), then applying f
// right-to-left over that flat slice with a plain loop — same
// semantics, no recursion depth tied to collision-list length.
func FoldRWithKey[V, A any](m Map[V], z A, f func(Key, V, A) A) A {
	es := Each(m)
	acc := z
	for i := len(es) - 1; i >= 0; i-- {
		acc = f(es[i].Key, es[i].Val, acc)
	}
	return acc
}

// FoldR is FoldRWithKey with the key projected away.
func FoldR[V, A any](m Map[V], z A, f func(V, A) A) A {
	return FoldRWithKey(m, z, func(_ Key, v V, acc A) A { return f(v, acc) })
}
