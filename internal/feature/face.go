package feature

import (
	"math"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/landmark"
)

// DefaultBrowBaseline is the typical brow-to-eye distance in face heights.
// The eyebrow raise feature is reported relative to this resting value.
const DefaultBrowBaseline = 0.05

// FaceExtractor computes facial geometry features from a face mesh.
// It is a pure function of its input; the only state is calibration.
type FaceExtractor struct {
	browBaseline float64
}

// NewFaceExtractor creates a FaceExtractor with the given brow baseline.
// Values outside (0,1) fall back to DefaultBrowBaseline.
func NewFaceExtractor(browBaseline float64) *FaceExtractor {
	if browBaseline <= 0 || browBaseline >= 1 {
		browBaseline = DefaultBrowBaseline
	}
	return &FaceExtractor{browBaseline: browBaseline}
}

// Extract computes the face feature vector from one landmark set.
// Vertical measures are normalized by face height, horizontal ones by face
// width. Returns ErrInsufficientLandmarks (wrapped) on a malformed set.
func (e *FaceExtractor) Extract(set *landmark.Set) (Vector, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	faceH := set.Box.Height()
	faceW := set.Box.Width()
	pts := set.Points

	mouthTop := pts[landmark.UpperLipCenter]
	mouthBottom := pts[landmark.LowerLipCenter]
	mouthLeft := pts[landmark.MouthCornerL]
	mouthRight := pts[landmark.MouthCornerR]

	// Corner lift: Y grows downward, so corner minus upper lip is positive
	// when the corners curl upward relative to the lip center.
	leftLift := (mouthLeft.Y - mouthTop.Y) / faceH
	rightLift := (mouthRight.Y - mouthTop.Y) / faceH
	smileLift := math.Max((leftLift+rightLift)/2, 0)

	mouthHeight := math.Abs(mouthBottom.Y-mouthTop.Y) / faceH
	mouthWidth := math.Abs(mouthRight.X-mouthLeft.X) / faceW

	// Blend of jaw drop, corner lift and width; the weights keep a wide
	// smile and a dropped jaw on comparable scales.
	mouthOpenness := math.Max(0, mouthHeight*2.5+smileLift*10+mouthWidth*0.4)

	leftEyeOpen := math.Abs(pts[landmark.LeftEyeTop].Y-pts[landmark.LeftEyeBottom].Y) / faceH
	rightEyeOpen := math.Abs(pts[landmark.RightEyeTop].Y-pts[landmark.RightEyeBottom].Y) / faceH
	eyeOpenness := (leftEyeOpen + rightEyeOpen) / 2

	leftBrowDist := math.Abs(pts[landmark.LeftEyeTop].Y-pts[landmark.LeftBrowCenter].Y) / faceH
	rightBrowDist := math.Abs(pts[landmark.RightEyeTop].Y-pts[landmark.RightBrowCenter].Y) / faceH
	browGap := (leftBrowDist + rightBrowDist) / 2

	return Vector{
		MouthOpenness: mouthOpenness,
		EyeOpenness:   eyeOpenness,
		EyebrowRaise:  browGap - e.browBaseline,
		SmileLift:     smileLift,
	}, nil
}
