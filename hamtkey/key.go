// Package hamtkey provides ready-made phamt.Key implementations for
// Go's common scalar key types, the role the teacher's own
// github.com/lleo/go-hamt/key and stringkey packages play in
// hamt32_test.go (imported there but not present in the retrieved
// pack). String and byte-slice keys hash through murmur3, the same
// hash function github.com/ipfs/go-hamt-ipld uses ahead of its own
// trie descent (vendor/github.com/ipfs/go-hamt-ipld/hash.go, pulled in
// transitively by OpenBazaar-openbazaar-go).
package hamtkey

import (
	"bytes"
	"fmt"

	"github.com/spaolacci/murmur3"

	phamt "github.com/lleo/go-phamt"
)

// StringKey is a phamt.Key wrapping a Go string.
type StringKey string

func (k StringKey) Hash32() uint32 {
	return murmur3.Sum32([]byte(k))
}

func (k StringKey) Equal(other phamt.Key) bool {
	o, ok := other.(StringKey)
	return ok && k == o
}

func (k StringKey) String() string {
	return string(k)
}

// BytesKey is a phamt.Key wrapping a []byte. Two BytesKey values are
// equal iff their underlying bytes are equal.
type BytesKey []byte

func (k BytesKey) Hash32() uint32 {
	return murmur3.Sum32(k)
}

func (k BytesKey) Equal(other phamt.Key) bool {
	o, ok := other.(BytesKey)
	return ok && bytes.Equal(k, o)
}

func (k BytesKey) String() string {
	return fmt.Sprintf("%x", []byte(k))
}

// IntKey is a phamt.Key wrapping an int64, hashed with a 32-bit
// avalanche mix (murmur3's own finalizer shape) rather than an
// identity function, so that sequential integer keys do not cluster in
// the same trie slots the way a bare truncation to uint32 would.
type IntKey int64

func (k IntKey) Hash32() uint32 {
	h := uint32(uint64(k) ^ (uint64(k) >> 32))
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func (k IntKey) Equal(other phamt.Key) bool {
	o, ok := other.(IntKey)
	return ok && k == o
}

func (k IntKey) String() string {
	return fmt.Sprintf("%d", int64(k))
}

// Collider is a test-only key whose Hash32 always returns the same
// constant, used to drive a Map's collision-node code paths
// deliberately (spec.md section 8, "Keys whose hashes collide...").
type Collider struct {
	Const uint32
	ID    string
}

func (k Collider) Hash32() uint32 {
	return k.Const
}

func (k Collider) Equal(other phamt.Key) bool {
	o, ok := other.(Collider)
	return ok && k.ID == o.ID
}

func (k Collider) String() string {
	return fmt.Sprintf("Collider{%d,%s}", k.Const, k.ID)
}
