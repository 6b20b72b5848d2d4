// SPDX-License-Identifier: MIT

package builder

// Method names prefix constructor errors.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodChord             = "Chord"
)

// CenterNodeID is the identifier of the hub node in Star and Wheel.
const CenterNodeID = "Center"

// Minimum node counts per topology.
const (
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: fewer than 3 nodes cannot form a ring without loops or parallel edges.
	MinCycleNodes = 3
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-cycle rim plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a single isolated node.
	MinCompleteNodes = 1
	// MinPartition is the smallest size of either side of K_{a,b}.
	MinPartition = 1
)

// Probability bounds for RandomSparse, both inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
