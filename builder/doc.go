// Package builder samples random graphs and loads them into a core.Graph.
//
// The package separates sampling from population:
//
//   - RandomEdges(numNodes, numEdges) draws numEdges candidate pairs of
//     uniform node indices and drops the self-loops, so the result has at
//     most numEdges pairs. Duplicate pairs are kept.
//   - Populate(g, pairs, relation) names every index through the configured
//     ID scheme and adds one node per index and one edge per pair.
//   - Generate(g, numNodes, numEdges, relation) does both and also adds the
//     isolated nodes.
//
// Configuration follows the functional-options pattern (BuilderOption):
//
//   - WithSeed / WithRand: RNG source. Stochastic builders require one
//     (ErrNeedRandSource otherwise); a fixed seed gives a fixed result.
//   - WithIDScheme and its shorthands (WithSymbolIDs, WithSymbNumb, ...):
//     index → node ID.
//
// Option constructors panic on meaningless values (nil RNG, nil scheme).
// Builders themselves never panic; they return sentinel errors wrapped with
// the method name.
package builder
