// Package represent derives alternate in-memory encodings of a parts.PartMap.
//
// Every builder here is a pure function of its input: no side effects, no
// errors, no shared state. The canonical map is never mutated.
//
// Representations:
//
//   - SetPartMap       part → hash set of nodes (deckarep/golang-set/v2);
//     duplicates inside a part collapse.
//   - FrozenCollection distinct immutable node sets; parts whose node sets
//     are identical collapse into ONE element, so per-part identity is lost
//     by construction.
//   - RoaringPartMap   part → compressed 64-bit roaring bitmap.
//   - BitsetPartMap    part → dense bitset indexed by node id; only sensible
//     while node ids stay below MaxBitsetNode.
//
// Sizes:
//
//	Go has no portable shallow-size query, so Size* functions return an
//	explicit approximation (see size.go). Compare them across
//	representations of the same data, never against OS memory figures.
package represent
