package stdlib

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// Mode selects when the loader ingests the bundled namespace tree: Eager
// on construction, Lazy on first demand via [Loader.EnsureLoaded].
type Mode int

const (
	Lazy Mode = iota
	Eager
)

// String returns "eager" or "lazy".
func (m Mode) String() string {
	if m == Eager {
		return "eager"
	}
	return "lazy"
}

// Manifest is the bundled namespace manifest: the directory and file
// extensions that make up "the standard library", the load Mode, and
// whether a parse failure on an individual file aborts the load (Strict)
// instead of being logged and skipped (spec.md §4.8's default).
type Manifest struct {
	Directory  string
	Extensions []string
	Mode       Mode
	Strict     bool
}

// manifestJSON is the wire shape Manifest unmarshals from; Mode is a
// string here ("eager"/"lazy") and translated to the typed enum.
type manifestJSON struct {
	Directory  string   `json:"directory"`
	Extensions []string `json:"extensions"`
	Mode       string   `json:"mode"`
	Strict     bool     `json:"strict"`
}

// LoadManifest parses a JSONC-encoded manifest (comments and trailing
// commas tolerated, per the teacher's adapter/json use of tidwall/jsonc),
// defaulting Mode to Lazy when the field is omitted.
func LoadManifest(data []byte) (Manifest, error) {
	var raw manifestJSON
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return Manifest{}, fmt.Errorf("stdlib: parse manifest: %w", err)
	}

	m := Manifest{Directory: raw.Directory, Extensions: raw.Extensions, Strict: raw.Strict}
	switch raw.Mode {
	case "", "lazy":
		m.Mode = Lazy
	case "eager":
		m.Mode = Eager
	default:
		return Manifest{}, fmt.Errorf("stdlib: unknown mode %q (want %q or %q)", raw.Mode, "eager", "lazy")
	}
	return m, nil
}
