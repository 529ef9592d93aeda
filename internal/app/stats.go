package app

import (
	"sync"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
)

// historySize bounds how many recent decisions the stats cover.
const historySize = 100

// LabelStats summarizes the stabilized labels of recent tracked frames.
type LabelStats struct {
	// Total is the number of frames in the window, at most historySize.
	Total int `json:"total"`
	// Counts maps each observed label to its frame count.
	Counts map[classify.Label]int `json:"counts"`
	// Dominant is the most frequent label, classify.None for an empty
	// window.
	Dominant classify.Label `json:"dominant"`
}

// labelHistory is a fixed-size ring of recent decision labels.
type labelHistory struct {
	mu     sync.Mutex
	labels [historySize]classify.Label
	next   int
	filled int
}

func (h *labelHistory) add(l classify.Label) {
	h.mu.Lock()
	h.labels[h.next] = l
	h.next = (h.next + 1) % historySize
	if h.filled < historySize {
		h.filled++
	}
	h.mu.Unlock()
}

func (h *labelHistory) reset() {
	h.mu.Lock()
	h.next = 0
	h.filled = 0
	h.mu.Unlock()
}

func (h *labelHistory) stats() LabelStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := LabelStats{Total: h.filled, Counts: make(map[classify.Label]int, 8), Dominant: classify.None}
	for i := 0; i < h.filled; i++ {
		st.Counts[h.labels[i]]++
	}
	best := 0
	for label, n := range st.Counts {
		if n > best || (n == best && label < st.Dominant) {
			best = n
			st.Dominant = label
		}
	}
	return st
}

// Stats reports the label distribution over the recent decision window.
func (a *App) Stats() LabelStats {
	return a.hist.stats()
}
