// SPDX-License-Identifier: MIT
// Package: lvtree/builder

package builder

// CenterVertexID is the fixed hub label used by Star and Wheel.
const CenterVertexID = "Center"

// Minimum sizes per constructor.
const (
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinCycleNodes    = 3
	MinWheelNodes    = 4 // outer ring is C_{n-1}
	MinCompleteNodes = 1
	MinTreeNodes     = 1
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// Method tags used as error prefixes.
const (
	methodBuild      = "Build"
	methodPath       = "Path"
	methodStar       = "Star"
	methodCycle      = "Cycle"
	methodWheel      = "Wheel"
	methodComplete   = "Complete"
	methodBinaryTree = "BinaryTree"
	methodRandomTree = "RandomTree"
)

// Topology kinds accepted by ByKind.
const (
	KindPath     = "path"
	KindStar     = "star"
	KindCycle    = "cycle"
	KindWheel    = "wheel"
	KindComplete = "complete"
	KindBinary   = "binary"
	KindRandom   = "random"
)
