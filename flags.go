package rangeio

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flags is the set of formatting flags held by a stream.
type Flags uint32

const (
	Dec Flags = 1 << iota
	Oct
	Hex
	Left
	Right
	Internal
	Fixed
	Scientific
	BoolAlpha
	ShowBase
	ShowPoint
	ShowPos
	Uppercase
)

// Field masks for use with [Writer.Setf].
const (
	BaseField   = Dec | Oct | Hex
	AdjustField = Left | Right | Internal
	FloatField  = Fixed | Scientific
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Dec, "dec"},
	{Oct, "oct"},
	{Hex, "hex"},
	{Left, "left"},
	{Right, "right"},
	{Internal, "internal"},
	{Fixed, "fixed"},
	{Scientific, "scientific"},
	{BoolAlpha, "boolalpha"},
	{ShowBase, "showbase"},
	{ShowPoint, "showpoint"},
	{ShowPos, "showpos"},
	{Uppercase, "uppercase"},
}

// Names returns the names of the flags set in f, in declaration order.
func (f Flags) Names() []string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

// String returns the flag names joined by "|".
func (f Flags) String() string {
	return strings.Join(f.Names(), "|")
}

// Has reports whether every flag in mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// ParseFlag parses a single flag name. Matching is case-insensitive.
func ParseFlag(name string) (Flags, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
}

// ParseFlags parses a list of flag names separated by commas, pipes or
// whitespace, such as "hex|showbase, left".
func ParseFlags(s string) (Flags, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == '\t'
	})
	var f Flags
	for _, name := range fields {
		fl, err := ParseFlag(name)
		if err != nil {
			return 0, err
		}
		f |= fl
	}
	return f, nil
}

// MarshalYAML encodes the flags as a list of names.
func (f Flags) MarshalYAML() (any, error) {
	names := f.Names()
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// UnmarshalYAML accepts either a list of names or a single string in the
// form understood by [ParseFlags].
func (f *Flags) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseFlags(n.Value)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := n.Decode(&names); err != nil {
			return err
		}
		var parsed Flags
		for _, name := range names {
			fl, err := ParseFlag(name)
			if err != nil {
				return err
			}
			parsed |= fl
		}
		*f = parsed
		return nil
	default:
		return fmt.Errorf("%w: flags must be a string or a list, line %d", ErrInvalidFormat, n.Line)
	}
}
