package detector

import (
	"gocv.io/x/gocv"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/landmark"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	sets   []*landmark.Set
	queue  [][]*landmark.Set
	err    error
	calls  int
	closed bool
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetSets sets the landmark sets returned by every subsequent Detect.
func (m *MockDetector) SetSets(sets ...*landmark.Set) {
	m.sets = sets
	m.queue = nil
}

// QueueFrames sets a per-frame result sequence. Once the queue drains,
// Detect falls back to the sets from SetSets.
func (m *MockDetector) QueueFrames(frames ...[]*landmark.Set) {
	m.queue = frames
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Calls returns how many times Detect has been invoked.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Closed reports whether Close has been called.
func (m *MockDetector) Closed() bool {
	return m.closed
}

// Detect returns the configured landmark sets or error.
func (m *MockDetector) Detect(_ *gocv.Mat) ([]*landmark.Set, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if len(m.queue) > 0 {
		sets := m.queue[0]
		m.queue = m.queue[1:]
		return sets, nil
	}
	return m.sets, nil
}

// Close marks the detector closed.
func (m *MockDetector) Close() error {
	m.closed = true
	return nil
}
