package rangeio

// Ownership describes how a [Delimiter] holds its value.
type Ownership int

const (
	// NoDelimiter is the ownership of the zero Delimiter.
	NoDelimiter Ownership = iota
	// OwnedValue means the delimiter holds its own copy of the value.
	OwnedValue
	// MutableRef means the delimiter refers to the caller's variable and
	// insertion may change it.
	MutableRef
	// ReadOnlyRef means the delimiter refers to the caller's variable but
	// inserts a copy of it, so the caller's value never changes.
	ReadOnlyRef
)

func (o Ownership) String() string {
	switch o {
	case OwnedValue:
		return "owned"
	case MutableRef:
		return "ref"
	case ReadOnlyRef:
		return "const-ref"
	default:
		return "none"
	}
}

// Delimiter is a value inserted between consecutive elements of a range.
// The zero Delimiter inserts nothing.
//
// A delimiter may be stateful: if a pointer to its value implements
// [Inserter], that pointer is inserted, so each gap observes and may update
// the state left by the previous one.
type Delimiter struct {
	mode  Ownership
	value func() any
}

// Owned returns a delimiter holding its own copy of d. Stateful delimiters
// update that copy, never the caller's.
func Owned[D any](d D) Delimiter {
	p := new(D)
	*p = d
	return Delimiter{mode: OwnedValue, value: func() any { return insertable(p) }}
}

// Ref returns a delimiter referring to *p. Stateful delimiters update *p, so
// the caller can inspect the state after the write. p must stay valid for as
// long as the delimiter is used.
func Ref[D any](p *D) Delimiter {
	return Delimiter{mode: MutableRef, value: func() any { return insertable(p) }}
}

// ConstRef returns a delimiter that inserts a fresh copy of *p at every gap.
// Later changes the caller makes to *p are seen; changes made by insertion
// land in the copy and are never written back. Stateful delimiters still run
// their own insertion against that copy.
func ConstRef[D any](p *D) Delimiter {
	return Delimiter{mode: ReadOnlyRef, value: func() any {
		c := *p
		return insertable(&c)
	}}
}

func insertable[D any](p *D) any {
	if _, ok := any(p).(Inserter); ok {
		return p
	}
	return *p
}

// Mode reports how the delimiter holds its value.
func (d Delimiter) Mode() Ownership { return d.mode }

// IsZero reports whether d is the zero Delimiter.
func (d Delimiter) IsZero() bool { return d.value == nil }

// Value returns the value the next insertion would write.
func (d Delimiter) Value() any {
	if d.value == nil {
		return nil
	}
	return d.value()
}

// insert writes the delimiter to s and reports whether s is still good.
func (d Delimiter) insert(s Stream) bool {
	return s.Insert(d.value()).Good()
}
