package phamt

// node is the sealed, unexported interface every one of the three trie
// variants (spec.md section 3) implements. Map[V] is node[V] under a
// public name: callers hold a Map[V] but can only operate on it through
// this package's exported functions (Lookup, Insert, ...), because the
// interface's own methods are unexported and therefore uncallable
// outside this package. This collapses the teacher's three-interface
// split (hamt32/node.go: nodeI, tableI, leafI) into the single
// polymorphic value spec.md section 3 actually describes.
type node[V any] interface {
	// lookupAt searches for key k (whose hash is h) starting from this
	// node, which itself sits at depth levels deep in the trie.
	lookupAt(h uint32, depth uint, k Key) (V, bool)

	// insertWithAt inserts k/v, combining with any existing value via
	// f(new, old), replacing this node. added reports whether the key
	// is brand new (false means a value was merely replaced).
	insertWithAt(depth uint, f func(newV, oldV V) V, h uint32, k Key, v V) (out node[V], added bool)

	// deleteAt removes k if present. out == nil means this node became
	// empty and its slot in the parent must be cleared entirely.
	deleteAt(depth uint, h uint32, k Key) (out node[V], removed V, deleted bool)

	// filterAt rebuilds this subtree keeping only the entries p
	// accepts; nil means nothing survived.
	filterAt(p func(Key, V) bool) node[V]

	// size is the number of key/value entries reachable from this node.
	size() int

	// hashAt32 returns the 32-bit hash this node is tagged with: a
	// leaf or collision node's cached key hash, or a branch's bitmap.
	// Only join calls it, and only on leaves and collision nodes.
	hashAt32() uint32

	isHamtNode()
}

// Map is the persistent associative container of this package: a
// leafNode, collisionNode, or branchNode value, sealed behind this
// interface. The zero value of Map is not valid; use Empty or
// Singleton.
type Map[V any] = node[V]

// entry is one key/value pair, used both inside collisionNode and as
// the public element type for FromList/Each.
type entry[V any] struct {
	key Key
	val V
}

// Entry is the public key/value pair type used by FromList,
// FromListWith, and Each.
type Entry[V any] struct {
	Key Key
	Val V
}
