// Package feature derives scalar geometric features from landmark sets.
// Every measure is normalized by a per-subject scale reference (face box
// extents, palm length) so that the downstream rules stay invariant to
// subject size and camera distance.
package feature

// Name identifies a scalar feature within a Vector.
type Name string

// Face features.
const (
	MouthOpenness Name = "mouth_openness"
	EyeOpenness   Name = "eye_openness"
	EyebrowRaise  Name = "eyebrow_raise"
	SmileLift     Name = "smile_lift"
)

// Hand features. Extension values are signed: positive when the fingertip
// sits above its PIP joint, negative when curled. ThumbSpread is the
// horizontal tip-to-MCP distance in palm lengths.
const (
	ThumbSpread     Name = "thumb_spread"
	IndexExtension  Name = "index_extension"
	MiddleExtension Name = "middle_extension"
	RingExtension   Name = "ring_extension"
	PinkyExtension  Name = "pinky_extension"
)

// FaceNames lists the face features in extraction order.
var FaceNames = []Name{MouthOpenness, EyeOpenness, EyebrowRaise, SmileLift}

// HandNames lists the hand features in extraction order.
var HandNames = []Name{ThumbSpread, IndexExtension, MiddleExtension, RingExtension, PinkyExtension}

// Vector maps feature names to normalized scalar values. A Vector is derived
// fresh each frame from exactly one landmark set.
type Vector map[Name]float64

// Get returns the named feature, or zero when absent.
func (v Vector) Get(n Name) float64 {
	return v[n]
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for n, val := range v {
		out[n] = val
	}
	return out
}
