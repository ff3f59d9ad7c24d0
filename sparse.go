package phamt

// The sparse-array primitives of spec.md section 4.2. Every one is
// copy-on-write: none of them ever mutates arr. They are the only
// legal way code in this package alters a branch's child array, the
// same discipline the teacher's compressedTable.insert/replace/remove
// (hamt32/compressed_table.go) follow over its nodes slice.

// sparseReplace returns a new slice equal to arr except slot i holds
// node. Length is unchanged.
func sparseReplace[V any](arr []node[V], i uint, n node[V]) []node[V] {
	out := make([]node[V], len(arr))
	copy(out, arr)
	out[i] = n
	return out
}

// sparseInsert returns a new slice of length len(arr)+1 with node
// inserted at position i, preserving the order of everything else.
func sparseInsert[V any](arr []node[V], i uint, n node[V]) []node[V] {
	out := make([]node[V], len(arr)+1)
	copy(out, arr[:i])
	out[i] = n
	copy(out[i+1:], arr[i:])
	return out
}

// sparseRemove returns a new slice of length len(arr)-1 with position i
// elided, preserving order.
func sparseRemove[V any](arr []node[V], i uint) []node[V] {
	out := make([]node[V], len(arr)-1)
	copy(out, arr[:i])
	copy(out[i:], arr[i+1:])
	return out
}

// sparseSingleton builds a length-1 array.
func sparseSingleton[V any](n node[V]) []node[V] {
	return []node[V]{n}
}

// sparsePair builds a length-2 array with n1, n2 in the given order.
// Callers are responsible for ordering by ascending virtual slot.
func sparsePair[V any](n1, n2 node[V]) []node[V] {
	return []node[V]{n1, n2}
}
