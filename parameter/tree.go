package parameter

import "time"

// Fractal tree
const (
	// TreeLengthFactor scales surface height into trunk length
	TreeLengthFactor = 0.22
	TreeDepth        = 8
	// TreeBranchDelay staggers each branch after its parent
	TreeBranchDelay = 400 * time.Millisecond
	// TreeBranchSteps is segments per branch, producing TreeBranchSteps+1 particles
	TreeBranchSteps = 6
	// TreeBranchAngle is child deviation in radians
	TreeBranchAngle = 0.5
	// TreeLengthDecay is child length relative to parent
	TreeLengthDecay = 0.75

	TreeSizeMin     = 1.5
	TreeSizeMax     = 3.5
	OrnamentSizeMin = 3.5
	OrnamentSizeMax = 5.5

	// OrnamentCutoff and BerryCutoff split the tier roll: > 0.9 ornament, > 0.8 berry, else foliage
	OrnamentCutoff = 0.9
	BerryCutoff    = 0.8

	FoliageShadeMin = 0.5
	FoliageShadeMax = 0.9
)
