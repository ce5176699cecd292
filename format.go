package rangeio

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Default formatting attributes of a new stream.
const (
	DefaultFill      = ' '
	DefaultPrecision = 6
	DefaultFlags     = Dec
)

// Fill is a fill character. In YAML it is written as a one-character string.
type Fill rune

// MarshalYAML encodes the fill as a string.
func (c Fill) MarshalYAML() (any, error) { return string(rune(c)), nil }

// UnmarshalYAML decodes a one-character string.
func (c *Fill) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode || utf8.RuneCountInString(n.Value) != 1 {
		return fmt.Errorf("%w: %q, line %d", ErrInvalidFill, n.Value, n.Line)
	}
	r, _ := utf8.DecodeRuneInString(n.Value)
	*c = Fill(r)
	return nil
}

// Format is a set of formatting attributes that can be stored and applied to
// a stream. It is the serializable counterpart of [Snapshot].
//
//	width: 7
//	fill: "."
//	precision: 3
//	flags: [hex, left, uppercase, showbase]
type Format struct {
	Width     int   `yaml:"width"`
	Fill      Fill  `yaml:"fill"`
	Precision int   `yaml:"precision"`
	Flags     Flags `yaml:"flags"`
}

// DefaultFormat returns the attributes of a freshly created stream.
func DefaultFormat() Format {
	return Format{
		Fill:      DefaultFill,
		Precision: DefaultPrecision,
		Flags:     DefaultFlags,
	}
}

// Apply sets every attribute of f on s.
func (f Format) Apply(s Stream) {
	s.SetWidth(f.Width)
	s.SetFill(rune(f.Fill))
	s.SetPrecision(f.Precision)
	s.SetFlags(f.Flags)
}

// Validate reports whether f can be applied meaningfully.
func (f Format) Validate() error {
	if f.Width < 0 {
		return fmt.Errorf("%w: negative width %d", ErrInvalidFormat, f.Width)
	}
	if f.Precision < 0 {
		return fmt.Errorf("%w: negative precision %d", ErrInvalidFormat, f.Precision)
	}
	if !utf8.ValidRune(rune(f.Fill)) {
		return fmt.Errorf("%w: %U", ErrInvalidFill, rune(f.Fill))
	}
	if bits.OnesCount32(uint32(f.Flags&BaseField)) > 1 {
		return fmt.Errorf("%w: conflicting base flags %s", ErrInvalidFormat, f.Flags&BaseField)
	}
	if bits.OnesCount32(uint32(f.Flags&AdjustField)) > 1 {
		return fmt.Errorf("%w: conflicting adjust flags %s", ErrInvalidFormat, f.Flags&AdjustField)
	}
	return nil
}

// LoadFormat decodes a YAML format profile from r. Attributes missing from
// the document keep their [DefaultFormat] values; an empty document yields
// the defaults.
func LoadFormat(r io.Reader) (Format, error) {
	f := DefaultFormat()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Format{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// MarshalFormat encodes f as a YAML document.
func MarshalFormat(f Format) ([]byte, error) {
	return yaml.Marshal(f)
}
