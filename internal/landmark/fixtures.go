package landmark

// Preset landmark sets for tests and the mock detectors. The hand fixtures
// are built finger by finger so that each gesture differs only in which
// fingers are curled; the face fixtures place the mesh points that feature
// extraction reads and leave the rest of the mesh at a resting position.

// finger segment rows, wrist at the bottom of the frame (Y grows downward).
const (
	fingerMCPRow = 0.68
	fingerPIPRow = 0.55
	fingerDIPRow = 0.45
	fingerTipRow = 0.34

	curledPIPRow = 0.66
	curledDIPRow = 0.69
	curledTipRow = 0.72
)

// handFixture builds a 21-point hand with the given fingers extended,
// ordered thumb, index, middle, ring, pinky.
func handFixture(extended [5]bool) *Set {
	points := make([]Point, HandLandmarkCount)
	points[Wrist] = Point{X: 0.5, Y: 0.9}

	// Thumb travels horizontally; extension shows as X distance from the MCP.
	points[ThumbCMC] = Point{X: 0.56, Y: 0.80}
	points[ThumbMCP] = Point{X: 0.60, Y: 0.72}
	if extended[0] {
		points[ThumbIP] = Point{X: 0.68, Y: 0.64}
		points[ThumbTip] = Point{X: 0.74, Y: 0.58}
	} else {
		points[ThumbIP] = Point{X: 0.59, Y: 0.70}
		points[ThumbTip] = Point{X: 0.58, Y: 0.72}
	}

	baseX := [4]float64{0.56, 0.50, 0.44, 0.38}
	mcp := [4]int{IndexMCP, MiddleMCP, RingMCP, PinkyMCP}
	pip := [4]int{IndexPIP, MiddlePIP, RingPIP, PinkyPIP}
	dip := [4]int{IndexDIP, MiddleDIP, RingDIP, PinkyDIP}
	tip := [4]int{IndexTip, MiddleTip, RingTip, PinkyTip}

	for f := 0; f < 4; f++ {
		points[mcp[f]] = Point{X: baseX[f], Y: fingerMCPRow}
		if extended[f+1] {
			points[pip[f]] = Point{X: baseX[f], Y: fingerPIPRow}
			points[dip[f]] = Point{X: baseX[f], Y: fingerDIPRow}
			points[tip[f]] = Point{X: baseX[f], Y: fingerTipRow}
		} else {
			points[pip[f]] = Point{X: baseX[f], Y: curledPIPRow}
			points[dip[f]] = Point{X: baseX[f] - 0.02, Y: curledDIPRow}
			points[tip[f]] = Point{X: baseX[f] - 0.03, Y: curledTipRow}
		}
	}

	return &Set{
		Kind:   KindHand,
		Points: points,
		Box:    BoundingBox(points),
		Score:  0.95,
	}
}

// FistHand returns a hand with every finger curled.
func FistHand() *Set {
	return handFixture([5]bool{})
}

// OpenPalmHand returns a hand with all five fingers extended.
func OpenPalmHand() *Set {
	return handFixture([5]bool{true, true, true, true, true})
}

// PointingHand returns a hand with only the index finger extended.
func PointingHand() *Set {
	return handFixture([5]bool{false, true, false, false, false})
}

// TwoFingerHand returns a hand with index and middle fingers extended.
func TwoFingerHand() *Set {
	return handFixture([5]bool{false, true, true, false, false})
}

// faceBox is the bounding region shared by the face fixtures.
var faceBox = Box{XMin: 0.35, YMin: 0.20, XMax: 0.65, YMax: 0.80}

// faceFixture builds a 478-point mesh with mouth, eye and brow landmarks at
// the given rows. Corner lift is the vertical offset of the mouth corners
// below the upper lip.
func faceFixture(mouthTopY, mouthBottomY, cornerLift, eyeTopY, eyeGap, browGap float64) *Set {
	points := make([]Point, FaceLandmarkCount)
	for i := range points {
		points[i] = Point{X: 0.5, Y: 0.5}
	}

	points[UpperLipCenter] = Point{X: 0.5, Y: mouthTopY}
	points[LowerLipCenter] = Point{X: 0.5, Y: mouthBottomY}
	points[MouthCornerL] = Point{X: 0.46, Y: mouthTopY + cornerLift}
	points[MouthCornerR] = Point{X: 0.54, Y: mouthTopY + cornerLift}

	points[LeftEyeTop] = Point{X: 0.42, Y: eyeTopY}
	points[LeftEyeBottom] = Point{X: 0.42, Y: eyeTopY + eyeGap}
	points[RightEyeTop] = Point{X: 0.58, Y: eyeTopY}
	points[RightEyeBottom] = Point{X: 0.58, Y: eyeTopY + eyeGap}

	points[LeftBrowCenter] = Point{X: 0.42, Y: eyeTopY - browGap}
	points[RightBrowCenter] = Point{X: 0.58, Y: eyeTopY - browGap}

	return &Set{
		Kind:   KindFace,
		Points: points,
		Box:    faceBox,
		Score:  0.95,
	}
}

// NeutralFace returns a resting face: closed mouth, flat corners, typical
// eye opening and brow distance.
func NeutralFace() *Set {
	return faceFixture(0.62, 0.6205, 0, 0.40, 0.015, 0.030)
}

// SmilingFace returns a face with lifted mouth corners and relaxed eyes.
func SmilingFace() *Set {
	return faceFixture(0.62, 0.625, 0.011, 0.40, 0.015, 0.030)
}

// SurprisedFace returns a face with a dropped jaw, widened eyes and raised
// brows, without any corner lift.
func SurprisedFace() *Set {
	return faceFixture(0.60, 0.66, 0, 0.39, 0.0255, 0.036)
}
