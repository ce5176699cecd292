package rangeio

// Snapshot holds the formatting attributes of a stream at one point in time.
//
// Unlike a scope guard, a Snapshot never restores anything on its own: the
// caller decides when to reapply it with Restore. The write loop captures
// once before the first element and restores before every later one, so the
// first element consumes the ambient width and the rest see exactly what the
// first one saw.
type Snapshot struct {
	width     int
	fill      rune
	precision int
	flags     Flags
}

// Capture records the formatting attributes of s. It does not modify s.
func Capture(s Stream) Snapshot {
	return Snapshot{
		width:     s.Width(),
		fill:      s.Fill(),
		precision: s.Precision(),
		flags:     s.Flags(),
	}
}

// Restore writes the captured attributes back to s. It may be called any
// number of times.
func (sn Snapshot) Restore(s Stream) {
	s.SetWidth(sn.width)
	s.SetFill(sn.fill)
	s.SetPrecision(sn.precision)
	s.SetFlags(sn.flags)
}

func (sn Snapshot) Width() int     { return sn.width }
func (sn Snapshot) Fill() rune     { return sn.fill }
func (sn Snapshot) Precision() int { return sn.precision }
func (sn Snapshot) Flags() Flags   { return sn.flags }

// Format returns the captured attributes as a [Format].
func (sn Snapshot) Format() Format {
	return Format{
		Width:     sn.width,
		Fill:      Fill(sn.fill),
		Precision: sn.precision,
		Flags:     sn.flags,
	}
}
