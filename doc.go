/*
Package phamt implements a persistent (immutable) associative container
keyed by hashable keys, as a Hash Array Mapped Trie (HAMT) with a
branching factor of 32 (five hash bits per level, over the full 32 bits
of a key's hash, for seven levels of descent).

Every operation that would mutate a conventional map instead returns a
new Map value while leaving its receiver untouched. Structural sharing
keeps this cheap: a Map produced by Insert or Delete shares every
subtree it did not have to change with the Map it was derived from.

Map[V] is itself the polymorphic three-variant value the trie is built
from — a leaf, a hash-collision node, or a bitmapped branch — sealed so
that only this package can add variants. Callers only ever see the
Map[V] interface.
*/
package phamt

import (
	"log"
	"os"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("[phamt] ")
	log.SetFlags(log.Lshortfile)
}

// CollisionWarnThreshold governs when a growing collision node logs a
// diagnostic line. It exists purely as an operational tripwire — a
// collision list this long points at a degenerate Key.Hash32()
// implementation, not at a bug in the trie itself. Default: 8.
var CollisionWarnThreshold = 8

// StrictInvariants, when true, makes test helpers call CheckInvariants
// after every mutating operation. Production code never reads this
// variable; it exists so test files can flip it on. Default: false.
var StrictInvariants = false
