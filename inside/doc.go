// Package inside computes the two per-state fixpoints the search engines
// prune against.
//
//   - R[q]: the maximum probability of any single run rooted at state q
//     ("best-run value").
//   - B[q]: the bound the MPT engine multiplies into a hole typed q
//     ("best-tree bound"). It is set equal to R[q].
//
// Both are computed by a single Knuth-style best-first relaxation over the
// transition hypergraph, the maximization analogue of Dijkstra's
// shortest-path algorithm: instead of relaxing edges of a graph to find
// minimum-cost paths, we relax hyperedges (transitions with k children) to
// find maximum-probability derivations, finalizing the highest remaining
// candidate at each step exactly as Dijkstra finalizes the
// closest-remaining vertex. See the dijkstra-shaped runner in solver.go.
//
// B[q] := R[q] bounds the probability of every single run from q. For an
// unambiguous automaton that is also the probability of the tree; for an
// ambiguous one a tree's total run-sum can exceed its best single run,
// and then B[q] is not an upper bound on that sum.
package inside
