package experiment

import "github.com/benzoXdev/pyveil/internal/engine"

// Obfuscator is the slice of the engine surface a sweep arm needs: obfuscate
// a prompt, then report what was renamed. Every engine strategy satisfies it.
type Obfuscator interface {
	Obfuscate(code string) string
	Mapping() []engine.Pair
}

// Identity is the control arm: prompts pass through untouched and the
// mapping is always empty. It lives here rather than in the engine because
// it is an experimental baseline, not a privacy strategy.
type Identity struct{}

func (Identity) Obfuscate(code string) string { return code }

func (Identity) Mapping() []engine.Pair { return nil }
