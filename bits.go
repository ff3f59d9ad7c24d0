package phamt

// nBits is the number of hash bits consumed at each level of the trie.
// It MUST be 5, because 1<<5 == 32 is the number of slots in a table;
// changing it changes tableCapacity and every shift below with it.
const nBits uint = 5

// tableCapacity is the number of virtual slots in a branch: 2^nBits.
const tableCapacity uint = 1 << nBits

// maxDepth is the deepest a branch can occur: seven levels of 5-bit
// chunks span a 32-bit hash (5*6 = 30, leaving 2 bits for the seventh
// and final level, depths 0..6 inclusive). Two non-equal keys whose
// hashes still agree at depth 6 are, by construction, hash-equal and
// therefore collide for good: their entries live together in a
// collisionNode rather than a further branch.
const maxDepth uint = 6

// shiftFor returns the bit shift for a given trie depth: 0, 5, 10, ...,
// 30. This is the "s" of spec.md section 4.1.
func shiftFor(depth uint) uint {
	return depth * nBits
}

// slotMask masks off the five bits (or, at depth 6, the top two bits a
// 32-bit word has left) used to index a table at the given depth.
func slotMask(depth uint) uint32 {
	return uint32(tableCapacity-1) << shiftFor(depth)
}

// virtualSlot computes the 0..31 virtual slot a hash occupies at depth,
// i.e. the five bits of h starting at bit shiftFor(depth).
func virtualSlot(h uint32, depth uint) uint {
	return uint((h & slotMask(depth)) >> shiftFor(depth))
}

// popcount32 returns the number of set bits in n: a software popcount,
// copied in spirit from the teacher's bitcount32.go (itself sourced
// from jddixon/xlUtil_go's popCount.go, MIT licensed). The spec names
// this exact algorithm as part of the subject matter (section 4.1,
// GLOSSARY "Popcount") rather than as a swappable ambient concern, so
// it stays hand-rolled instead of reaching for math/bits.OnesCount32.
func popcount32(n uint32) uint {
	const (
		octoFives  = uint32(0x55555555)
		octoThrees = uint32(0x33333333)
		octoOnes   = uint32(0x01010101)
		octoFs     = uint32(0x0f0f0f0f)
	)
	n = n - ((n >> 1) & octoFives)
	n = (n & octoThrees) + ((n >> 2) & octoThrees)
	return uint((((n + (n >> 4)) & octoFs) * octoOnes) >> 24)
}

// physicalIndex implements spec.md section 4.1's "Physical index": if
// the occupancy bit for vi is clear in bm, the sentinel "no child" is
// reported as (ok == false); otherwise the popcount of the bits below
// vi in bm gives the dense array offset.
func physicalIndex(bm uint32, vi uint) (idx uint, ok bool) {
	bit := uint32(1) << vi
	if bm&bit == 0 {
		return 0, false
	}
	return popcount32(bm & (bit - 1)), true
}

// insertionIndex returns the dense array offset a brand-new child at
// virtual slot vi must be spliced into, given bm does not yet have
// vi's bit set. It is the same popcount-of-lower-bits computation
// physicalIndex uses for an occupied slot — the insertion position
// among the bits already below vi does not depend on whether vi
// itself is occupied — grounded on the teacher's compressedTable.insert
// (hamt32/compressed_table.go), which computes this index before
// OR-ing the new bit into nodeMap.
func insertionIndex(bm uint32, vi uint) uint {
	bit := uint32(1) << vi
	return popcount32(bm & (bit - 1))
}
