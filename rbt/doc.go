// Package rbt implement a red-black tree, a self-balancing version of
// binary search tree, for records that can share the same sort key.
//
//   * Records are ordered by a caller supplied strict total order.
//   * Records comparing equal are co-located in one node, in the order
//     of insertion, and are looked up together.
//   * Insert only, there is no delete operation.
//   * Not safe for concurrent use, build once and query afterwards.
//
// Each node carries a back-reference to its parent, used only while
// rebalancing after an insert. Teardown walks the owning child links
// and never follows parent links.
package rbt
