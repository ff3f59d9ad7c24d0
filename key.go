package phamt

// Key is the contract every key stored in a Map must satisfy: a
// deterministic 32-bit hash and total equality, where hash equality is
// implied by key equality (the converse need not hold — Hash32
// collisions are supported and handled by collision nodes).
//
// This mirrors the teacher package's HamtKey interface
// (key_interface.go: Equals/Hash64/String) narrowed to the 32-bit hash
// this module's trie descends on, and renamed to fit Go's Hasher-ish
// naming convention used elsewhere in the retrieved pack.
type Key interface {
	// Hash32 returns the 32-bit hash of this key. It must be
	// deterministic: the same logical key must always return the same
	// value for the lifetime of any Map containing it.
	Hash32() uint32

	// Equal reports whether this key and other denote the same logical
	// key. Two equal keys must have equal Hash32 values.
	Equal(other Key) bool

	// String renders the key for debugging. It is not interpreted by
	// the trie.
	String() string
}
