package rangeio

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// field is a rendered value split at the point where internal padding goes:
// head holds the sign and base prefix, body the rest.
type field struct {
	head string
	body string
}

func (w *Writer) render(v any) field {
	switch x := v.(type) {
	case string:
		return field{body: x}
	case []byte:
		return field{body: string(x)}
	case error:
		return field{body: x.Error()}
	case fmt.Stringer:
		return field{body: x.String()}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return w.renderBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return w.renderSigned(rv.Int(), rv.Type().Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return w.renderUnsigned(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return w.renderFloat(rv.Float(), rv.Type().Bits())
	default:
		return field{body: fmt.Sprint(v)}
	}
}

func (w *Writer) renderBool(b bool) field {
	if w.flags&BoolAlpha != 0 {
		return field{body: strconv.FormatBool(b)}
	}
	if b {
		return field{body: "1"}
	}
	return field{body: "0"}
}

func (w *Writer) base() int {
	switch w.flags & BaseField {
	case Hex:
		return 16
	case Oct:
		return 8
	default:
		return 10
	}
}

// renderSigned renders a signed integer of the given bit size. Outside
// decimal, negative values print as their two's complement.
func (w *Writer) renderSigned(i int64, size int) field {
	if w.base() != 10 {
		u := uint64(i)
		if size < 64 {
			u &= 1<<uint(size) - 1
		}
		return w.renderUnsigned(u)
	}
	f := field{body: strconv.FormatUint(absInt(i), 10)}
	switch {
	case i < 0:
		f.head = "-"
	case w.flags&ShowPos != 0:
		f.head = "+"
	}
	return f
}

func absInt(i int64) uint64 {
	if i < 0 {
		return uint64(-(i + 1)) + 1
	}
	return uint64(i)
}

func (w *Writer) renderUnsigned(u uint64) field {
	base := w.base()
	f := field{body: strconv.FormatUint(u, base)}
	upper := w.flags&Uppercase != 0
	if upper {
		f.body = strings.ToUpper(f.body)
	}
	if u == 0 || w.flags&ShowBase == 0 {
		return f
	}
	switch base {
	case 16:
		if upper {
			f.head = "0X"
		} else {
			f.head = "0x"
		}
	case 8:
		f.head = "0"
	}
	return f
}

func (w *Writer) renderFloat(x float64, size int) field {
	upper := w.flags&Uppercase != 0
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return w.renderNonFinite(x, upper)
	}

	var verbFmt strings.Builder
	verbFmt.WriteByte('%')
	if w.flags&ShowPos != 0 {
		verbFmt.WriteByte('+')
	}
	if w.flags&ShowPoint != 0 {
		verbFmt.WriteByte('#')
	}
	var verb byte
	switch w.flags & FloatField {
	case Fixed:
		verb = 'f'
	case Scientific:
		verb = 'e'
	case FloatField:
		verb = 'x'
	default:
		verb = 'g'
	}
	if verb != 'x' {
		verbFmt.WriteByte('.')
		verbFmt.WriteString(strconv.Itoa(max(w.precision, 0)))
	}
	if upper {
		verb -= 'a' - 'A'
	}
	verbFmt.WriteByte(verb)

	var s string
	if size == 32 {
		s = fmt.Sprintf(verbFmt.String(), float32(x))
	} else {
		s = fmt.Sprintf(verbFmt.String(), x)
	}
	if verb == 'x' || verb == 'X' {
		s = trimExponent(s)
	}
	return splitSign(s)
}

// trimExponent drops the leading zeros Go pads a hex float exponent with, so
// 0x1.8p+00 prints as 0x1.8p+0.
func trimExponent(s string) string {
	i := strings.LastIndexAny(s, "pP")
	if i < 0 || i+2 > len(s) {
		return s
	}
	exp := strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:i+2] + exp
}

func (w *Writer) renderNonFinite(x float64, upper bool) field {
	var f field
	switch {
	case math.IsNaN(x):
		f.body = "nan"
	case x < 0:
		f.head, f.body = "-", "inf"
	default:
		f.body = "inf"
		if w.flags&ShowPos != 0 {
			f.head = "+"
		}
	}
	if upper {
		f.body = strings.ToUpper(f.body)
	}
	return f
}

// splitSign moves a leading sign and hex prefix into the head.
func splitSign(s string) field {
	var f field
	if s != "" && (s[0] == '-' || s[0] == '+') {
		f.head, s = s[:1], s[1:]
	}
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		f.head += s[:2]
		s = s[2:]
	}
	f.body = s
	return f
}

// pad applies the one-shot width using the fill character. Width is measured
// in terminal cells, so wide runes count double.
func (w *Writer) pad(f field) string {
	cells := runewidth.StringWidth(f.head) + runewidth.StringWidth(f.body)
	if w.width <= cells {
		return f.head + f.body
	}
	fillWidth := max(runewidth.RuneWidth(w.fill), 1)
	padding := strings.Repeat(string(w.fill), (w.width-cells)/fillWidth)
	switch w.flags & AdjustField {
	case Left:
		return f.head + f.body + padding
	case Internal:
		return f.head + padding + f.body
	default:
		return padding + f.head + f.body
	}
}
