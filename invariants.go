package phamt

import "github.com/pkg/errors"

// CheckInvariants walks m and verifies the four structural invariants
// of spec.md section 3 (bitmap/array agreement, no empty children,
// collision minimality, hash-cache correctness), returning the first
// violation found, wrapped with github.com/pkg/errors for a stack
// trace. This is the debug-only checker spec.md section 7 calls for:
// production code has no reason to call it, but tests must. There is
// no teacher equivalent — the teacher inlines the same checks as
// assert()/log.Panicf calls scattered through hamt32/hamt.go instead
// of exposing one standalone predicate.
func CheckInvariants[V any](m Map[V]) error {
	if err := checkNode(m, 0, true); err != nil {
		return errors.Wrap(err, "phamt: invariant violation")
	}
	return nil
}

func checkNode[V any](n node[V], depth uint, isRoot bool) error {
	switch t := n.(type) {
	case *leafNode[V]:
		if t.key.Hash32() != t.hash {
			return errors.Errorf("leaf at depth %d: cached hash 0x%08x != key.Hash32() 0x%08x for key %s",
				depth, t.hash, t.key.Hash32(), t.key)
		}
		return nil

	case *collisionNode[V]:
		if len(t.kvs) < 2 {
			return errors.Errorf("collision node at depth %d has %d entries, want >= 2", depth, len(t.kvs))
		}
		for i, kv := range t.kvs {
			if kv.key.Hash32() != t.hash {
				return errors.Errorf("collision node at depth %d: entry %d key %s has hash 0x%08x != node hash 0x%08x",
					depth, i, kv.key, kv.key.Hash32(), t.hash)
			}
			for j := i + 1; j < len(t.kvs); j++ {
				if kv.key.Equal(t.kvs[j].key) {
					return errors.Errorf("collision node at depth %d: duplicate key %s at entries %d and %d",
						depth, kv.key, i, j)
				}
			}
		}
		return nil

	case *branchNode[V]:
		if popcount32(t.bitmap) != uint(len(t.children)) {
			return errors.Errorf("branch at depth %d: popcount(bitmap)=%d != len(children)=%d",
				depth, popcount32(t.bitmap), len(t.children))
		}

		if t.bitmap == 0 {
			if !isRoot {
				return errors.Errorf("branch at depth %d: empty branch used as a non-root node", depth)
			}
			if len(t.children) != 0 {
				return errors.Errorf("branch at depth %d: bitmap==0 but children is non-empty", depth)
			}
			return nil
		}

		if depth > maxDepth {
			return errors.Errorf("branch at depth %d exceeds maxDepth %d", depth, maxDepth)
		}

		for i, c := range t.children {
			if c == nil {
				return errors.Errorf("branch at depth %d: nil child at index %d", depth, i)
			}
			if cb, ok := c.(*branchNode[V]); ok && cb.bitmap == 0 {
				return errors.Errorf("branch at depth %d: child %d is an empty branch (invariant 2)", depth, i)
			}
			if err := checkNode(c, depth+1, false); err != nil {
				return err
			}
		}
		return nil

	default:
		return errors.Errorf("unknown node type %T at depth %d", n, depth)
	}
}
