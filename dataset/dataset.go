package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sequence is one labelled series of samples.
type Sequence struct {
	Label  string    `yaml:"label"`
	Values []float64 `yaml:"values"`
}

// Set is an ordered collection of sequences.
type Set struct {
	Sequences []Sequence `yaml:"sequences"`
}

// Load decodes a YAML sequence document from r.
// Unknown fields are rejected; every sequence must carry at least one value.
// Sequences without a label are named by position ("#0", "#1", …).
func Load(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Set
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySet
		}

		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(s.Sequences) == 0 {
		return nil, ErrEmptySet
	}
	for i := range s.Sequences {
		if s.Sequences[i].Label == "" {
			s.Sequences[i].Label = "#" + strconv.Itoa(i)
		}
		if len(s.Sequences[i].Values) == 0 {
			return nil, fmt.Errorf("sequence %q: %w", s.Sequences[i].Label, ErrEmptySequence)
		}
	}

	return &s, nil
}

// LoadFile reads a YAML sequence document from path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Len returns the number of sequences.
func (s *Set) Len() int { return len(s.Sequences) }

// Labels returns the labels in set order.
func (s *Set) Labels() []string {
	out := make([]string, len(s.Sequences))
	for i, seq := range s.Sequences {
		out[i] = seq.Label
	}

	return out
}

// ParseValues parses a comma-separated list such as "1, 3.5,-2".
// A single trailing comma is allowed; any other empty field is ErrBadValue.
// An empty string yields an empty list.
func ParseValues(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			if i == len(fields)-1 {
				break
			}

			return nil, fmt.Errorf("%w: empty field %d", ErrBadValue, i+1)
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadValue, f)
		}
		out = append(out, v)
	}

	return out, nil
}
