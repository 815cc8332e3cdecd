package engine

import (
	"math"
	"strings"
)

// Metrics holds objective measures on an obfuscated output.
type Metrics struct {
	SizeBytes      int     `json:"size_bytes"`
	InputSizeBytes int     `json:"input_size_bytes"`
	SizeRatio      float64 `json:"size_ratio"` // output/input, <1 after stripping
	LineCount      int     `json:"line_count"`
	UniqueSymbols  int     `json:"unique_symbols"` // distinct runes
	Entropy        float64 `json:"entropy"`        // bits per symbol
	MappingSize    int     `json:"mapping_size"`   // identifiers renamed
}

// ComputeMetrics measures an obfuscation result against its input.
func ComputeMetrics(input string, res Result) Metrics {
	m := Metrics{
		SizeBytes:      len(res.Code),
		InputSizeBytes: len(input),
		MappingSize:    len(res.Mapping),
	}
	if m.SizeBytes == 0 {
		return m
	}
	if m.InputSizeBytes > 0 {
		m.SizeRatio = float64(m.SizeBytes) / float64(m.InputSizeBytes)
	}
	m.LineCount = strings.Count(res.Code, "\n") + 1
	freq := make(map[rune]int)
	total := 0
	for _, r := range res.Code {
		freq[r]++
		total++
	}
	m.UniqueSymbols = len(freq)
	n := float64(total)
	for _, c := range freq {
		p := float64(c) / n
		m.Entropy -= p * math.Log2(p)
	}
	return m
}
