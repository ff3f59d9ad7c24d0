package phamt

import (
	"fmt"
	"strings"
)

// DebugString renders m as an indented tree for log lines and test
// failure messages. It is not a serialization format — nothing in this
// package parses it back — and exists purely as the Go analogue of the
// teacher's Hamt.LongString (hamt32/hamt.go).
func DebugString[V any](m Map[V]) string {
	var b strings.Builder
	writeNode(&b, m, "")
	return b.String()
}

func writeNode[V any](b *strings.Builder, n node[V], indent string) {
	switch t := n.(type) {
	case *leafNode[V]:
		fmt.Fprintf(b, "%sleaf{hash:0x%08x, key:%s, val:%v}\n", indent, t.hash, t.key, t.val)

	case *collisionNode[V]:
		fmt.Fprintf(b, "%scollision{hash:0x%08x, n:%d}\n", indent, t.hash, len(t.kvs))
		for _, kv := range t.kvs {
			fmt.Fprintf(b, "%s  %s -> %v\n", indent, kv.key, kv.val)
		}

	case *branchNode[V]:
		fmt.Fprintf(b, "%sbranch{bitmap:%032b, n:%d}\n", indent, t.bitmap, len(t.children))
		for _, c := range t.children {
			writeNode(b, c, indent+"  ")
		}

	default:
		fmt.Fprintf(b, "%s<unknown node %T>\n", indent, n)
	}
}
