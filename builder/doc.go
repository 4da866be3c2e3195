// Package builder generates deterministic graph fixtures for core: classic
// topologies (path, star, cycle, wheel, complete) and rooted-tree shapes
// (binary, random) emitted as a Blueprint of labels and weighted edges.
//
// The package offers the following key components:
//
//   - Blueprint: Directed flag, Nodes, Edges. Marshals to and from the YAML
//     graph document used by cmd/lvtree; Graph() builds a core.Graph.
//   - Constructor: func(*Blueprint, builderConfig) error. Factories Path,
//     Star, Cycle, Wheel, Complete, BinaryTree, RandomTree return one.
//   - Build / BuildGraph: resolve options once, run constructors in order.
//   - ByKind: resolves a constructor from its CLI name (see Kinds).
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn.
//   - Edge-weight policies (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed give the same
//     Blueprint, byte for byte.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on meaningless input.
//   - Nodes are deduplicated inside one Blueprint, so composing constructors
//     that share ids (Wheel on top of Cycle) is safe.
//
// Errors:
//
//	ErrTooFewVertices   n below the constructor minimum
//	ErrNeedRandSource   stochastic constructor without WithSeed / WithRand
//	ErrUnknownKind      ByKind with an unsupported name
//	ErrConstructFailed  nil constructor or invalid composition
package builder
