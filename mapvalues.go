package phamt

// MapWithKey rebuilds m with every value v replaced by f(k, v),
// preserving structure exactly: bitmaps, arrays, and collision lists
// are unchanged, only the stored values differ. Keys and cached
// hashes are unchanged. Spec.md section 4.10.
func MapWithKey[V, W any](m Map[V], f func(Key, V) W) Map[W] {
	switch n := m.(type) {
	case *leafNode[V]:
		return newLeaf[W](n.hash, n.key, f(n.key, n.val))
	case *collisionNode[V]:
		kvs := make([]entry[W], len(n.kvs))
		for i, kv := range n.kvs {
			kvs[i] = entry[W]{kv.key, f(kv.key, kv.val)}
		}
		return newCollision[W](n.hash, kvs)
	case *branchNode[V]:
		children := make([]node[W], len(n.children))
		for i, c := range n.children {
			children[i] = MapWithKey(c, f)
		}
		return &branchNode[W]{bitmap: n.bitmap, children: children}
	default:
		panic("phamt: mapWithKey over unknown node type")
	}
}

// MapValues is MapWithKey with the key projected away from f.
func MapValues[V, W any](m Map[V], f func(V) W) Map[W] {
	return MapWithKey(m, func(_ Key, v V) W { return f(v) })
}
