package cli

import (
	"fmt"
	"runtime"
	"strings"
)

const version = "0.3.0"

// Version returns the version string.
func Version() string {
	return version
}

// VersionFull returns version with Go and platform info.
func VersionFull() string {
	return fmt.Sprintf("pyveil v%s (%s/%s, %s)", version, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// banner is the colored one-liner for interactive output.
func banner() string {
	return Bold + Cyan + "pyveil" + Reset + " | v." + version + " | " + Gray + "https://github.com/BenzoXdev/pyveil" + Reset
}

// ErrorHint returns a helpful hint for common errors.
func ErrorHint(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "file not found") || strings.Contains(msg, "dataset not found"):
		return "Check the path with -i / --dataset. Use absolute paths or run from the project directory."
	case strings.Contains(msg, "not valid UTF-8"):
		return "Re-save the file as UTF-8 (with or without BOM) in your editor."
	case strings.Contains(msg, "unknown privacy level"):
		return "Use --level low or --level high."
	case strings.Contains(msg, "unknown utility metric"):
		return "Use --metric rouge1, rouge2, rougeL, bleu or exact."
	case strings.Contains(msg, "too large"):
		return "The input exceeds the safety limit. Split large files or trim the dataset."
	case strings.Contains(msg, "completion endpoint"):
		return "Check --base-url and PYVEIL_EXPERIMENT_API_KEY, or rerun with --completer echo for an offline sweep."
	case strings.Contains(msg, "no mapping"):
		return "Pass the mapping JSON written by obfuscate --mapping to reverse a rename."
	}
	return ""
}
