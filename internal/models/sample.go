package models

// TimeLayout is the wall-clock format used for sample labels and CSV rows.
const TimeLayout = "15:04:05"

// Sample is one battery percentage observation.
type Sample struct {
	Time           string  `json:"time"`
	BatteryPercent float64 `json:"battery_percent"`
}

// Series is the in-memory battery history as two parallel, append-only slices.
type Series struct {
	Times    []string  `json:"times"`
	Percents []float64 `json:"percents"`
}

// Append returns a copy of the series with s added at the end.
// The receiver's backing arrays are never written to.
func (s Series) Append(sample Sample) Series {
	times := make([]string, len(s.Times), len(s.Times)+1)
	copy(times, s.Times)
	percents := make([]float64, len(s.Percents), len(s.Percents)+1)
	copy(percents, s.Percents)

	return Series{
		Times:    append(times, sample.Time),
		Percents: append(percents, sample.BatteryPercent),
	}
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.Times)
}

// Last returns the most recent sample.
func (s Series) Last() (Sample, bool) {
	if len(s.Times) == 0 {
		return Sample{}, false
	}
	i := len(s.Times) - 1
	return Sample{Time: s.Times[i], BatteryPercent: s.Percents[i]}, true
}
