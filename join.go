package phamt

import "log"

// join builds the branch that separates two non-branch nodes (leaves
// or collision nodes) with distinct 32-bit hashes, per spec.md section
// 4.7. It is grounded on the teacher's createCompressedTable
// (hamt32/compressed_table.go), which walks levels while two leaves'
// indices keep colliding; this version is the direct recursive
// restatement the spec itself gives, rather than the teacher's
// explicit loop-with-curTable bookkeeping.
//
// The recursion is guaranteed to terminate at or before depth
// maxDepth: n1 and n2 are only ever passed here with n1.hashAt32() !=
// n2.hashAt32() (every call site checks first), so the two hashes
// differ in some bit within the full 32-bit range, and every bit
// position is covered by some depth's 5-bit window across depths
// 0..maxDepth.
func join[V any](depth uint, n1, n2 node[V]) node[V] {
	if depth > maxDepth {
		log.Panicf("join: depth %d exceeds maxDepth %d with equal-looking hashes 0x%08x/0x%08x — "+
			"this can only happen if the two nodes' hashes were equal, which callers must never pass here",
			depth, maxDepth, n1.hashAt32(), n2.hashAt32())
	}

	vi1 := virtualSlot(n1.hashAt32(), depth)
	vi2 := virtualSlot(n2.hashAt32(), depth)

	if vi1 != vi2 {
		return newBranchOfTwo[V](vi1, n1, vi2, n2)
	}
	return newBranchOfOne[V](vi1, join[V](depth+1, n1, n2))
}
