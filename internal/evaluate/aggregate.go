package evaluate

import "math"

// Summary is descriptive statistics over one score series.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Aggregate summarizes scores. An empty series yields a zero Summary.
func Aggregate(scores []float64) Summary {
	s := Summary{Count: len(scores)}
	if s.Count == 0 {
		return s
	}
	s.Min = scores[0]
	s.Max = scores[0]
	sum := 0.0
	for _, v := range scores {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(s.Count)
	var sq float64
	for _, v := range scores {
		d := v - s.Mean
		sq += d * d
	}
	s.Std = math.Sqrt(sq / float64(s.Count))
	return s
}
