package phamt

// TraverseWithKey lifts MapWithKey into an effectful context (spec.md
// section 4.10): it visits every entry in the same order MapWithKey
// would, and stops at the first error. Go has no general applicative-
// functor machinery, so the idiomatic rendering of "an effectful
// computation that, when run, yields the transformed map" is a
// function returning (W, error) per entry and an aggregate (Map[W],
// error) for the whole traversal — the same shape
// golang.org/x/sync/errgroup-adjacent code in the wider Go ecosystem
// uses for "do N fallible things and collect the results".
func TraverseWithKey[V, W any](m Map[V], f func(Key, V) (W, error)) (Map[W], error) {
	switch n := m.(type) {
	case *leafNode[V]:
		w, err := f(n.key, n.val)
		if err != nil {
			return nil, err
		}
		return newLeaf[W](n.hash, n.key, w), nil

	case *collisionNode[V]:
		kvs := make([]entry[W], len(n.kvs))
		for i, kv := range n.kvs {
			w, err := f(kv.key, kv.val)
			if err != nil {
				return nil, err
			}
			kvs[i] = entry[W]{kv.key, w}
		}
		return newCollision[W](n.hash, kvs), nil

	case *branchNode[V]:
		children := make([]node[W], len(n.children))
		for i, c := range n.children {
			nc, err := TraverseWithKey(c, f)
			if err != nil {
				return nil, err
			}
			children[i] = nc
		}
		return &branchNode[W]{bitmap: n.bitmap, children: children}, nil

	default:
		panic("phamt: traverseWithKey over unknown node type")
	}
}

// Traverse is TraverseWithKey with the key projected away from f.
func Traverse[V, W any](m Map[V], f func(V) (W, error)) (Map[W], error) {
	return TraverseWithKey(m, func(_ Key, v V) (W, error) { return f(v) })
}
