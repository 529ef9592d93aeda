package feature

import (
	"math"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/landmark"
)

// HandExtractor computes per-finger extension features from a hand set.
type HandExtractor struct{}

// NewHandExtractor creates a HandExtractor.
func NewHandExtractor() *HandExtractor {
	return &HandExtractor{}
}

// Extract computes the hand feature vector from one landmark set.
// All measures are divided by the palm length (wrist to middle-finger MCP)
// so the values are comparable across hand sizes and camera distances.
// Returns ErrInsufficientLandmarks (wrapped) on a malformed set.
func (e *HandExtractor) Extract(set *landmark.Set) (Vector, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	pts := set.Points
	span := landmark.PlanarDistance(pts[landmark.Wrist], pts[landmark.MiddleMCP])
	span = math.Max(span, 1e-6)

	// The thumb travels horizontally; extension shows as X distance from
	// the MCP. The other fingers extend vertically: the tip rises above
	// the PIP joint (Y grows downward).
	extension := func(tip, pip int) float64 {
		return (pts[pip].Y - pts[tip].Y) / span
	}

	return Vector{
		ThumbSpread:     math.Abs(pts[landmark.ThumbTip].X-pts[landmark.ThumbMCP].X) / span,
		IndexExtension:  extension(landmark.IndexTip, landmark.IndexPIP),
		MiddleExtension: extension(landmark.MiddleTip, landmark.MiddlePIP),
		RingExtension:   extension(landmark.RingTip, landmark.RingPIP),
		PinkyExtension:  extension(landmark.PinkyTip, landmark.PinkyPIP),
	}, nil
}
