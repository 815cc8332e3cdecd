// Package pyveil is the public surface of the obfuscation engine: build a
// strategy for a privacy level, transform Python source, reverse a mapping.
package pyveil

import (
	"github.com/benzoXdev/pyveil/internal/engine"
)

type (
	Level       = engine.PrivacyLevel
	Pair        = engine.Pair
	Result      = engine.Result
	Strategy    = engine.Strategy
	LowOptions  = engine.LowOptions
	HighOptions = engine.HighOptions
)

const (
	LevelLow  = engine.LevelLow
	LevelHigh = engine.LevelHigh
)

// New returns the strategy for level with default options.
func New(level Level) (Strategy, error) {
	return engine.New(level)
}

// NewLow returns a low privacy strategy with explicit options.
func NewLow(opts LowOptions) Strategy { return engine.NewLow(opts) }

// NewHigh returns a high privacy strategy with explicit options.
func NewHigh(opts HighOptions) Strategy { return engine.NewHigh(opts) }

// Obfuscate transforms source at the given privacy level and returns the
// obfuscated code with the mapping used. The transformation itself never
// fails; the error only reports an unknown level.
func Obfuscate(source string, level Level) (Result, error) {
	s, err := engine.New(level)
	if err != nil {
		return Result{}, err
	}
	return s.Transform(source), nil
}

// Deobfuscate reverses mapping in source, best effort.
func Deobfuscate(source string, mapping []Pair) string {
	return engine.DeobfuscateWith(source, mapping)
}
