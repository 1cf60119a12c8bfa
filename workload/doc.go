// Package workload generates reproducible link/cut/find-root workloads and
// replays them against an eulertour.Forest, checking every answer against a
// naive reference forest.
//
// What:
//
//   - Generator: a seeded stream of Ops driven by a 32-bit LFSR. By default
//     every op is valid for the forest state it was generated against; a
//     non-zero invalid rate mixes in cycles, double attaches, cuts of roots
//     and unknown nodes.
//   - Oracle: a parent array. FindRoot climbs, Link climbs to detect cycles.
//     It reports the same sentinel errors as eulertour.
//   - Replay: applies Ops to a Forest and an Oracle side by side and stops at
//     the first disagreement with an error wrapping ErrMismatch.
//
// Why:
//
//   - The Oracle is O(depth) per query and obviously correct, so divergence
//     points at the balanced structure.
//   - Seeds make a failing run reproducible from the command line.
//
// Nodes are addressed by index in [0, nodes). Replay maps indices to the
// NodeIDs returned by Populate.
package workload
