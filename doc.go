// Package eulerforest is a dynamic rooted forest with logarithmic link, cut
// and find-root, built on Euler tours stored in a balanced sequence tree.
//
// 🚀 What is eulerforest?
//
//	A small, dependency-light library that brings together:
//		• avlseq: an arena of AVL nodes ordered by position, with split,
//		  join and concatenate in O(log n)
//		• eulertour: a rooted forest whose trees are kept as Euler tours in
//		  avlseq sequences; Link, Cut, FindRoot, Connected, ComponentSize
//		• workload: seeded link/cut workloads and a naive oracle to replay
//		  them against
//		• cmd/ettbench: a CLI that stress-tests and benchmarks the forest
//
// ✨ Why choose eulerforest?
//
//   - Stable integer handles instead of pointers, so node identity survives
//     every rotation and split
//   - Rejected operations leave the forest untouched
//   - A full invariant checker (Verify) you can switch on per mutation
//   - Hooks (OnRotate) for instrumentation without a logging dependency
//
// Quick ASCII example:
//
//	    A
//	   / \
//	  B   C        tour: A B A C D C A
//	      |
//	      D
//
// Cutting C leaves two tours, A B A and C D C.
//
//	go get github.com/katalvlaran/eulerforest/eulertour
package eulerforest
