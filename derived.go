package phamt

// Empty returns the canonical empty Map (spec.md section 4.11 /
// section 3 invariant 4): a branch with bitmap 0 and no children.
func Empty[V any]() Map[V] {
	return emptyBranch[V]()
}

// Singleton returns a Map holding exactly k/v: a bare leaf, per
// spec.md section 4.11.
func Singleton[V any](k Key, v V) Map[V] {
	return newLeaf[V](k.Hash32(), k, v)
}

// IsEmpty reports whether m is the canonical empty map. It tests the
// structural shape (a branch with bitmap 0) rather than assuming a
// leaf or collision node variant tag could ever be "empty" by itself
// — per spec.md section 9's open question, neither a leafNode nor a
// collisionNode can ever be empty by construction, so the only way to
// reach "empty" is a branch losing its last child, and branches always
// collapse to this exact shape (see branchNode.deleteAt/filterAt).
func IsEmpty[V any](m Map[V]) bool {
	b, ok := m.(*branchNode[V])
	return ok && b.bitmap == 0 && len(b.children) == 0
}

// Null is an alias for IsEmpty, matching the name spec.md section 9
// uses for the source library's predicate.
func Null[V any](m Map[V]) bool {
	return IsEmpty(m)
}

// Size is the number of key/value entries in m (spec.md section
// 4.11): leaves count as 1, collision nodes by list length, folded
// over the whole trie.
func Size[V any](m Map[V]) int {
	return m.size()
}

// Lookup retrieves the value stored for k, and whether it was found
// (spec.md section 4.3).
func Lookup[V any](m Map[V], k Key) (V, bool) {
	return m.lookupAt(k.Hash32(), 0, k)
}

// Member reports whether k is present in m (spec.md section 4.3).
func Member[V any](m Map[V], k Key) bool {
	_, found := Lookup(m, k)
	return found
}

// MustGet retrieves the value for k, panicking-free: it returns
// ErrKeyNotFound (wrapped with k) when k is absent. This is the Go
// rendering of spec.md section 4.3's (!!) operator and section 7's
// "absent-key indexing" error kind — a usage error surfaced
// immediately, leaving m untouched.
func MustGet[V any](m Map[V], k Key) (V, error) {
	v, found := Lookup(m, k)
	if !found {
		var zero V
		return zero, errKeyNotFound(k)
	}
	return v, nil
}

// constReplace is the combiner insert uses: it ignores the old value
// and keeps the new one, forcing the new value on an update exactly
// as spec.md section 4.4 describes ("insert = insertWith(const)").
func constReplace[V any](newV, _ V) V { return newV }

// Insert returns a new Map with k bound to v, replacing any existing
// binding for k. It is InsertWith(const, ...) per spec.md section 4.4.
func Insert[V any](m Map[V], k Key, v V) Map[V] {
	out, _ := InsertWith(m, constReplace[V], k, v)
	return out
}

// InsertWith returns a new Map with k bound to v, or to f(v, old) if k
// was already bound to old. The second return value reports whether
// the key was newly added (false means a value was replaced). Spec.md
// section 4.4.
//
// Inserting into the canonical empty map is special-cased to produce a
// bare leaf rather than delegating to branchNode.insertWithAt, which
// would otherwise wrap that leaf in a one-child branch. Without this,
// Insert(Empty(), k, v) and Singleton(k, v) would hold identical
// content in two different shapes, which would break the structural
// equality spec.md section 6 describes (two maps with the same
// entries are supposed to have "the same bitmap at every level and the
// same child order" — true everywhere else in this trie, since a
// branch only ever gains a layer via join, never by wrapping a single
// unambiguous child).
func InsertWith[V any](m Map[V], f func(newV, oldV V) V, k Key, v V) (Map[V], bool) {
	if IsEmpty(m) {
		return newLeaf[V](k.Hash32(), k, v), true
	}
	out, added := m.insertWithAt(0, f, k.Hash32(), k, v)
	return out, added
}

// Replace returns a new Map with k bound to v, whether or not k was
// already present: it removes any existing binding for k and then
// inserts k/v, the "replace(k, v, m) = insert(k, v, delete(k, m))"
// contract of spec.md section 4.4. Unlike InsertWith, the old value is
// never passed to a combiner.
func Replace[V any](m Map[V], k Key, v V) Map[V] {
	without, _, _ := Delete(m, k)
	return Insert(without, k, v)
}

// Adjust returns m unchanged if k is absent; otherwise it applies f to
// k's current value and stores the result. Spec.md section 4.11.
func Adjust[V any](m Map[V], f func(V) V, k Key) Map[V] {
	old, found := Lookup(m, k)
	if !found {
		return m
	}
	out, _ := InsertWith(m, func(_, oldV V) V { return f(oldV) }, k, old)
	return out
}

// Delete returns a new Map with k removed, the removed value, and
// whether k was present. Deleting an absent key returns m itself,
// structurally identical rather than merely equal (spec.md section
// 4.5, section 8 property 6).
func Delete[V any](m Map[V], k Key) (Map[V], V, bool) {
	out, val, deleted := m.deleteAt(0, k.Hash32(), k)
	if !deleted {
		return m, val, false
	}
	if out == nil {
		return emptyBranch[V](), val, true
	}
	return out, val, true
}

// Keys returns every key in m, in an unspecified but deterministic (per
// map value) order. Spec.md section 4.11.
func Keys[V any](m Map[V]) []Key {
	return FoldWithKey(m, make([]Key, 0, Size(m)), func(acc []Key, k Key, _ V) []Key {
		return append(acc, k)
	})
}

// Values returns every value in m, in an unspecified but deterministic
// order matching Keys and Each. Spec.md section 4.11.
func Values[V any](m Map[V]) []V {
	return Fold(m, make([]V, 0, Size(m)), func(acc []V, v V) []V {
		return append(acc, v)
	})
}

// Each returns every key/value pair in m, in the same unspecified but
// deterministic order as Keys and Values. Spec.md section 4.11.
func Each[V any](m Map[V]) []Entry[V] {
	return FoldWithKey(m, make([]Entry[V], 0, Size(m)), func(acc []Entry[V], k Key, v V) []Entry[V] {
		return append(acc, Entry[V]{k, v})
	})
}

// FromList builds a Map from an association list, left fold with
// Insert so that later entries dominate earlier ones. Spec.md section
// 4.11.
func FromList[V any](xs []Entry[V]) Map[V] {
	m := Empty[V]()
	for _, x := range xs {
		m = Insert(m, x.Key, x.Val)
	}
	return m
}

// FromListWith builds a Map from an association list, left fold with
// InsertWith(f) so earlier and later entries for the same key combine
// via f(new, old). Spec.md section 4.11.
func FromListWith[V any](f func(newV, oldV V) V, xs []Entry[V]) Map[V] {
	m := Empty[V]()
	for _, x := range xs {
		m, _ = InsertWith(m, f, x.Key, x.Val)
	}
	return m
}

// Unions left-folds UnionWith(f) over maps, starting from Empty.
// Spec.md section 4.11.
func Unions[V any](f func(a, b V) V, maps []Map[V]) Map[V] {
	out := Empty[V]()
	for _, m := range maps {
		out = UnionWith(f, out, m)
	}
	return out
}

// Difference returns the entries of a whose keys are absent from b.
// Spec.md section 4.11.
func Difference[V any](a, b Map[V]) Map[V] {
	return FilterWithKey(a, func(k Key, _ V) bool {
		return !Member(b, k)
	})
}

// Intersection returns the entries of a whose keys are present in b.
// Spec.md section 4.11.
func Intersection[V any](a, b Map[V]) Map[V] {
	return FilterWithKey(a, func(k Key, _ V) bool {
		return Member(b, k)
	})
}

// IntersectionWith folds over a, emitting (k, f(va, vb)) wherever
// lookup(k, b) succeeds. The two input maps may hold different value
// types; the result holds whatever f produces. Spec.md section 4.11.
func IntersectionWith[V1, V2, V3 any](f func(a V1, b V2) V3, a Map[V1], b Map[V2]) Map[V3] {
	return FoldWithKey(a, Empty[V3](), func(acc Map[V3], k Key, va V1) Map[V3] {
		if vb, found := Lookup(b, k); found {
			return Insert(acc, k, f(va, vb))
		}
		return acc
	})
}
