// Package eulertour maintains a dynamic forest under link and cut while
// answering "which tree root does node X belong to" in O(log n).
//
// What:
//
//   - Forest[T]: an arena of forest nodes, each carrying a payload of type T, a
//     parent reference, a child set and its first/last occurrence in an
//     avlseq.Sequence. The in-order walk of every occurrence tree is an Euler
//     tour of one represented tree.
//   - Link(child, parent): attach the tree rooted at child below parent.
//   - Cut(v): detach the subtree rooted at v into its own component.
//   - FindRoot(v): climb to the occurrence tree root, descend leftmost, and
//     report the forest node that occurrence represents.
//
// Tour scheme:
//
// A node with k children owns k+1 occurrences. Its first occurrence precedes
// all of its descendants and every child's run is followed by exactly one
// bridge occurrence of the parent, created when that child was linked:
//
//	    A
//	   / \       tour: A B A C D C A
//	  B   C      first(A) is the leading A, last(A) the trailing one;
//	      |      first(C) and last(C) bracket D.
//	      D
//
// Link(u, v) places tour(u) and a new bridge of v right after last(v), and the
// bridge becomes last(v). Cut(v) removes [first(v) .. last(v)] together with
// the parent bridge behind it, so link followed by cut restores the exact
// sequence that existed before.
//
// Why:
//
//   - Connectivity and root queries on forests that change online, without
//     rebuilding: spanning forest maintenance, incremental MST, scheduling
//     hierarchies, connectivity-aware caches.
//
// Complexity:
//
//   - Add:            O(1) amortized
//   - Link, Cut:      O(log n)
//   - FindRoot:       O(log n)
//   - Connected:      O(log n)
//   - ComponentSize:  O(log n)
//   - Tour:           O(n) for the component
//   - Verify:         O(n)
//
// Errors:
//
//   - ErrNodeNotFound      the NodeID is not part of this forest
//   - ErrAlreadyAttached   Link of a child that already has a parent
//   - ErrAlreadyRoot       Cut of a node that has no parent
//   - ErrWouldCreateCycle  Link of two nodes of the same tree
//   - ErrInvariant         Verify found a broken structural invariant
//
// A rejected Link or Cut leaves the forest untouched. Forest is not safe for
// concurrent use; give each goroutine its own forest.
package eulertour
