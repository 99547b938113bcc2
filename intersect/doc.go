// Package intersect implements the pairwise intersection strategies that
// partbench times. Every strategy answers the same existential question,
// "does some pair of distinct parts share a node?", over a different
// representation:
//
//	Sequence  parts.PartMap                linear scans, O(|P|·|U|) per pair
//	Set       represent.SetPartMap         hash membership, O(min(|P|,|U|))
//	Frozen    represent.FrozenCollection   pairs of DISTINCT node sets only
//	Roaring   represent.RoaringPartMap     container-wise bitmap AND
//	Bitset    represent.BitsetPartMap      word-wise bitset AND
//
// Traversal policy shared by all strategies:
//
//   - units (parts, or frozen sets) are visited in ascending order;
//   - a unit is marked finished once compared with every other unit, and
//     finished units are skipped, so each unordered pair is tested once;
//   - the scan of one pair stops at the first shared node, but every pair
//     is still visited (the benchmark measures the full pairwise sweep).
//
// Strategies return a Result holding the representation Descriptor and pair
// counters. Which pairs intersect is the report package's job.
package intersect
