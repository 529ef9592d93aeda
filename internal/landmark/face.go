package landmark

// Face mesh landmark indices following the MediaPipe FaceLandmarker
// convention. Only the indices consumed by feature extraction are named;
// the mesh itself carries 478 points.
const (
	UpperLipCenter = 13
	LowerLipCenter = 14
	MouthCornerL   = 61
	MouthCornerR   = 291

	LeftEyeTop     = 159
	LeftEyeBottom  = 145
	RightEyeTop    = 386
	RightEyeBottom = 374

	LeftBrowCenter  = 107
	RightBrowCenter = 336

	// FaceLandmarkCount is the fixed point count of the face mesh topology.
	FaceLandmarkCount = 478
)
