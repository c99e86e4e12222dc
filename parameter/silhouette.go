package parameter

// Silhouette sampling
const (
	// SilhouetteCanvas is the square working canvas the source image is fitted into
	SilhouetteCanvas = 300
	// SilhouetteStride is the pixel scan step
	SilhouetteStride = 4
	// SilhouetteAlphaMin: a shape pixel is more opaque than this
	SilhouetteAlphaMin = 128
	// SilhouetteRedMax: a shape pixel is darker than this in the red channel
	SilhouetteRedMax = 50
	// SilhouetteScreenFraction maps the shape's longer side onto min(width, height)
	SilhouetteScreenFraction = 0.25
	// SilhouetteMaxTargets caps the sampled point count
	SilhouetteMaxTargets = 800
)
