package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// DefaultPath is the limits file written by the color segmenter, relative to the working directory
const DefaultPath = "limits.json"

var (
	// ErrNotFound is returned when the limits file does not exist
	ErrNotFound = errors.New("limits file not found")
	// ErrMalformed is returned when the limits file exists but cannot be used
	ErrMalformed = errors.New("limits file malformed")
)

// debugMsgFunc is set by the main package to use unified logging
var debugMsgFunc func(component, message string)

// SetDebugFunction allows main package to provide the debug logger
func SetDebugFunction(fn func(component, message string)) {
	debugMsgFunc = fn
}

func debugMsg(component, message string) {
	if debugMsgFunc != nil {
		debugMsgFunc(component, message)
	}
}

// ColorBounds is an inclusive HSV range. Lower[i] <= Upper[i] is not required; an inverted
// channel simply matches nothing.
type ColorBounds struct {
	Lower [3]int `json:"HSV_min"`
	Upper [3]int `json:"HSV_max"`
}

// DefaultBounds returns the full range, which matches every pixel
func DefaultBounds() ColorBounds {
	return ColorBounds{
		Lower: [3]int{0, 0, 0},
		Upper: [3]int{255, 255, 255},
	}
}

// Validate reports whether every component is within [0,255]
func (b ColorBounds) Validate() error {
	for i := 0; i < 3; i++ {
		if b.Lower[i] < 0 || b.Lower[i] > 255 {
			return fmt.Errorf("HSV_min[%d] = %d out of range [0,255]", i, b.Lower[i])
		}
		if b.Upper[i] < 0 || b.Upper[i] > 255 {
			return fmt.Errorf("HSV_max[%d] = %d out of range [0,255]", i, b.Upper[i])
		}
	}
	return nil
}

func (b ColorBounds) String() string {
	return fmt.Sprintf("H(%d-%d) S(%d-%d) V(%d-%d)",
		b.Lower[0], b.Upper[0], b.Lower[1], b.Upper[1], b.Lower[2], b.Upper[2])
}

// limitsFile mirrors the on-disk layout. Slices let us tell a short triple from a zero value.
type limitsFile struct {
	Min []int `json:"HSV_min"`
	Max []int `json:"HSV_max"`
}

// Store persists ColorBounds as JSON
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the bounds from disk. A missing file yields ErrNotFound and unusable content
// yields ErrMalformed; both are wrapped so callers can report the specific cause.
func (s *Store) Load() (*ColorBounds, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var raw limitsFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, s.path, err)
	}
	if len(raw.Min) != 3 || len(raw.Max) != 3 {
		return nil, fmt.Errorf("%w: %s: HSV_min and HSV_max need 3 values each", ErrMalformed, s.path)
	}

	var b ColorBounds
	copy(b.Lower[:], raw.Min)
	copy(b.Upper[:], raw.Max)
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, s.path, err)
	}

	return &b, nil
}

// LoadOrDefault loads the bounds, substituting DefaultBounds on any failure. The error is
// still returned so the caller can report it; it is never fatal.
func (s *Store) LoadOrDefault() (ColorBounds, error) {
	b, err := s.Load()
	if err != nil {
		debugMsg("CONFIG", fmt.Sprintf("Using full-range defaults: %v", err))
		return DefaultBounds(), err
	}
	debugMsg("CONFIG", fmt.Sprintf("Loaded %s from %s", b, s.path))
	return *b, nil
}

// Save writes the bounds to a temporary file next to the target and renames it into place,
// so readers never see a partial file.
func (s *Store) Save(b ColorBounds) error {
	data, err := json.MarshalIndent(limitsFile{Min: b.Lower[:], Max: b.Upper[:]}, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal limits: %w", err)
	}
	data = append(data, '\n')

	if err := renameio.WriteFile(s.path, data, 0644, renameio.WithTempDir(filepath.Dir(s.path))); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	debugMsg("CONFIG", fmt.Sprintf("Data successfully written to '%s': %s", s.path, b))
	return nil
}
