// Package avlseq implements a height-balanced (AVL) binary tree ordered purely
// by position, the occurrence sequence underneath an Euler tour forest.
//
// What:
//
//   - Sequence: an arena of occurrence records addressed by Handle. Every
//     occurrence carries left/right/parent links, a cached height, a cached
//     balance factor height(left)-height(right) and a cached subtree size.
//   - Order is structural: there are no keys, the in-order walk of a tree IS
//     the sequence. Many independent trees live in one arena; any occurrence
//     finds its tree root by climbing parent links (Root).
//   - Split(pivot, pivotGoesRight) unzips the tree around pivot into a left and
//     a right sequence; Concatenate(left, right) joins two order-adjacent
//     sequences. Both run in O(log n) and keep every node within balance.
//
// Why:
//
//   - Dynamic trees (link/cut forests, Euler tour trees) need a sequence that
//     can be cut anywhere and glued back together in logarithmic time.
//   - Handles instead of pointers keep all upward references (parent links,
//     owner back-references) free of ownership; only the left/right links shape
//     the tree.
//
// Key Operations:
//
//	NewOccurrence(owner) Handle             // O(1) amortized
//	Release(h)                              // O(1), h must be isolated
//	InsertAfter(anchor, h) / InsertBefore   // O(log n), returns new root
//	RotateLeft(h) / RotateRight(h)          // O(1)
//	Rebalance(h) / RebalancePathToRoot(h)   // O(1) / O(log n)
//	Split(pivot, pivotGoesRight)            // O(log n)
//	Join(left, bridge, right)               // O(|hl-hr|+1)
//	Concatenate(left, right)                // O(log n)
//	Root, Min, Max, Next, Prev              // O(log n)
//	Size, Position, At                      // O(1) / O(log n) / O(log n)
//	Walk, Handles                           // O(n), iterative
//	Verify(root) error                      // O(n)
//
// Errors:
//
//	ErrCorrupt - reported by Verify when a cached field or a back-reference
//	             disagrees with the tree shape.
//
// Structural preconditions (live handles, roots where roots are required,
// isolated bridges) are caller contracts. Violations panic with an
// "avlseq:" prefixed message; nothing in this package returns a recoverable
// error from a mutation.
//
// A Sequence is not safe for concurrent use.
package avlseq
