package calibrate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
)

// csvHeader is the benchmark trace layout. SummarizeCSV reads columns by
// these names, so the header and the reader must stay in sync.
var csvHeader = []string{
	"timestamp_s",
	"fps",
	"mouth_openness",
	"eye_openness",
	"eyebrow_raise",
	"smile_lift",
	"emotion",
	"confidence",
}

// Logger appends per-frame feature traces to a CSV file for offline
// calibration. Toggled at runtime; it stays out of the frame path unless
// benchmark mode is on.
type Logger struct {
	path string
	file *os.File
	w    *csv.Writer
}

// NewLogger opens a trace file. An empty path defaults to a timestamped
// file under logs/.
func NewLogger(path string) (*Logger, error) {
	if path == "" {
		path = filepath.Join("logs", fmt.Sprintf("emotion_log_%s.csv", time.Now().Format("20060102-150405")))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		file.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	return &Logger{path: path, file: file, w: w}, nil
}

// Path returns the trace file location.
func (l *Logger) Path() string {
	return l.path
}

// Log appends one frame of data.
func (l *Logger) Log(fps float64, vec feature.Vector, res classify.Result) error {
	row := []string{
		strconv.FormatFloat(float64(time.Now().UnixMicro())/1e6, 'f', 6, 64),
		strconv.FormatFloat(fps, 'f', 3, 64),
		strconv.FormatFloat(vec.Get(feature.MouthOpenness), 'f', 6, 64),
		strconv.FormatFloat(vec.Get(feature.EyeOpenness), 'f', 6, 64),
		strconv.FormatFloat(vec.Get(feature.EyebrowRaise), 'f', 6, 64),
		strconv.FormatFloat(vec.Get(feature.SmileLift), 'f', 6, 64),
		string(res.Label),
		strconv.FormatFloat(res.Confidence, 'f', 4, 64),
	}
	return l.w.Write(row)
}

// Close flushes and closes the trace file.
func (l *Logger) Close() error {
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}

// SummarizeCSV computes feature stats from a trace file written by Logger.
func SummarizeCSV(path string) (map[feature.Name]FeatureStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	wanted := map[string]feature.Name{
		"mouth_openness": feature.MouthOpenness,
		"eye_openness":   feature.EyeOpenness,
		"eyebrow_raise":  feature.EyebrowRaise,
		"smile_lift":     feature.SmileLift,
	}
	columns := map[int]feature.Name{}
	for i, col := range header {
		if name, ok := wanted[col]; ok {
			columns[i] = name
		}
	}

	values := map[feature.Name][]float64{}
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		for i, name := range columns {
			if i >= len(row) {
				continue
			}
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				continue
			}
			values[name] = append(values[name], v)
		}
	}

	stats := make(map[feature.Name]FeatureStats, len(values))
	for name, vals := range values {
		stats[name] = summarizeColumn(vals)
	}
	return stats, nil
}
