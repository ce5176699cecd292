package rangeio_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/bjaus/rangeio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type port int

type point struct{ X, Y int }

type color int

func (c color) String() string { return [...]string{"red", "green"}[c] }

func TestWriterRender(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		setup func(w *rangeio.Writer)
		value any
		want  string
	}{
		{"int", nil, 42, "42"},
		{"negative", nil, -42, "-42"},
		{"min int64", nil, int64(math.MinInt64), "-9223372036854775808"},
		{"showpos", func(w *rangeio.Writer) { w.Setf(rangeio.ShowPos, rangeio.ShowPos) }, 42, "+42"},
		{"showpos unsigned", func(w *rangeio.Writer) { w.Setf(rangeio.ShowPos, rangeio.ShowPos) }, uint(42), "42"},
		{"hex", func(w *rangeio.Writer) { w.Setf(rangeio.Hex, rangeio.BaseField) }, 255, "ff"},
		{"hex upper showbase", func(w *rangeio.Writer) { w.SetFlags(rangeio.Hex | rangeio.Uppercase | rangeio.ShowBase) }, 255, "0XFF"},
		{"hex showbase zero", func(w *rangeio.Writer) { w.SetFlags(rangeio.Hex | rangeio.ShowBase) }, 0, "0"},
		{"hex negative int8", func(w *rangeio.Writer) { w.SetFlags(rangeio.Hex) }, int8(-1), "ff"},
		{"hex negative int32", func(w *rangeio.Writer) { w.SetFlags(rangeio.Hex) }, int32(-2), "fffffffe"},
		{"oct showbase", func(w *rangeio.Writer) { w.SetFlags(rangeio.Oct | rangeio.ShowBase) }, 8, "010"},
		{"named int", func(w *rangeio.Writer) { w.SetFlags(rangeio.Hex) }, port(8080), "1f90"},
		{"width right", func(w *rangeio.Writer) { w.SetWidth(6) }, 42, "    42"},
		{"width left", func(w *rangeio.Writer) {
			w.SetWidth(6)
			w.SetFill('*')
			w.Setf(rangeio.Left, rangeio.AdjustField)
		}, 42, "42****"},
		{"width internal", func(w *rangeio.Writer) {
			w.SetWidth(6)
			w.SetFill('0')
			w.Setf(rangeio.Internal, rangeio.AdjustField)
		}, -42, "-00042"},
		{"width internal showbase", func(w *rangeio.Writer) {
			w.SetWidth(8)
			w.SetFill('0')
			w.SetFlags(rangeio.Hex | rangeio.ShowBase | rangeio.Internal)
		}, 255, "0x0000ff"},
		{"width narrower than value", func(w *rangeio.Writer) { w.SetWidth(2) }, 12345, "12345"},
		{"width wide runes", func(w *rangeio.Writer) { w.SetWidth(4) }, "你", "  你"},
		{"float default", nil, 3.14159265, "3.14159"},
		{"float32", nil, float32(0.1), "0.1"},
		{"fixed", func(w *rangeio.Writer) {
			w.Setf(rangeio.Fixed, rangeio.FloatField)
			w.SetPrecision(2)
		}, 2.5, "2.50"},
		{"scientific", func(w *rangeio.Writer) {
			w.Setf(rangeio.Scientific, rangeio.FloatField)
			w.SetPrecision(3)
		}, 12345.678, "1.235e+04"},
		{"scientific upper", func(w *rangeio.Writer) {
			w.SetFlags(rangeio.Scientific | rangeio.Uppercase)
			w.SetPrecision(3)
		}, 12345.678, "1.235E+04"},
		{"showpoint", func(w *rangeio.Writer) { w.Setf(rangeio.ShowPoint, rangeio.ShowPoint) }, 2.0, "2.00000"},
		{"float showpos", func(w *rangeio.Writer) { w.Setf(rangeio.ShowPos, rangeio.ShowPos) }, 1.5, "+1.5"},
		{"float internal", func(w *rangeio.Writer) {
			w.SetWidth(7)
			w.SetFill('_')
			w.Setf(rangeio.Internal, rangeio.AdjustField)
		}, -1.5, "-___1.5"},
		{"nan", nil, math.NaN(), "nan"},
		{"inf upper", func(w *rangeio.Writer) { w.Setf(rangeio.Uppercase, rangeio.Uppercase) }, math.Inf(1), "INF"},
		{"negative inf", nil, math.Inf(-1), "-inf"},
		{"bool", nil, true, "1"},
		{"bool false", nil, false, "0"},
		{"boolalpha", func(w *rangeio.Writer) { w.Setf(rangeio.BoolAlpha, rangeio.BoolAlpha) }, true, "true"},
		{"string", nil, "hello", "hello"},
		{"bytes", nil, []byte("hi"), "hi"},
		{"error", nil, errors.New("boom"), "boom"},
		{"stringer", nil, color(1), "green"},
		{"stringer padded", func(w *rangeio.Writer) { w.SetWidth(5) }, color(0), "  red"},
		{"duration", nil, 1500 * time.Millisecond, "1.5s"},
		{"struct", nil, point{1, 2}, "{1 2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, buf := newStream()
			if tt.setup != nil {
				tt.setup(out)
			}
			out.Insert(tt.value)
			require.True(t, out.Good())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriterWidthIsOneShot(t *testing.T) {
	t.Parallel()
	out, buf := newStream()
	out.SetWidth(3)
	out.Insert(1).Insert(2)
	assert.Equal(t, "  12", buf.String())
	assert.Equal(t, 0, out.Width())
}

func TestWriterOtherAttributesPersist(t *testing.T) {
	t.Parallel()
	out, buf := newStream()
	out.Setf(rangeio.Hex, rangeio.BaseField)
	out.SetPrecision(2)
	out.Insert(255).Insert(" ").Insert(254)
	assert.Equal(t, "ff fe", buf.String())
	assert.Equal(t, 2, out.Precision())
}

func TestWriterDefaults(t *testing.T) {
	t.Parallel()
	out, _ := newStream()
	assert.Equal(t, 0, out.Width())
	assert.Equal(t, ' ', out.Fill())
	assert.Equal(t, 6, out.Precision())
	assert.Equal(t, rangeio.Dec, out.Flags())
	assert.True(t, out.Good())
	assert.NoError(t, out.Err())
}

func TestWriterSettersReturnPrevious(t *testing.T) {
	t.Parallel()
	out, _ := newStream()
	assert.Equal(t, 0, out.SetWidth(4))
	assert.Equal(t, 4, out.SetWidth(0))
	assert.Equal(t, ' ', out.SetFill('.'))
	assert.Equal(t, 6, out.SetPrecision(3))
	assert.Equal(t, rangeio.Dec, out.SetFlags(rangeio.Hex))
	assert.Equal(t, rangeio.Hex, out.Setf(rangeio.Oct, rangeio.BaseField))
	assert.Equal(t, rangeio.Oct, out.Flags())
}

func TestWriterSetfKeepsOtherFields(t *testing.T) {
	t.Parallel()
	out, _ := newStream()
	out.SetFlags(rangeio.Hex | rangeio.Left | rangeio.ShowBase)
	out.Setf(rangeio.Internal, rangeio.AdjustField)
	assert.Equal(t, rangeio.Hex|rangeio.Internal|rangeio.ShowBase, out.Flags())
	out.Unsetf(rangeio.ShowBase | rangeio.BaseField)
	assert.Equal(t, rangeio.Internal, out.Flags())
}

func TestWriterNilValue(t *testing.T) {
	t.Parallel()
	out, buf := newStream()
	out.Insert("a").Insert(nil).Insert("b")
	assert.False(t, out.Good())
	assert.ErrorIs(t, out.Err(), rangeio.ErrNilValue)
	assert.Equal(t, "a", buf.String())
}

func TestWriterFailureIsSticky(t *testing.T) {
	t.Parallel()
	w := &limitWriter{n: 2}
	out := rangeio.NewWriter(w)
	out.Insert("abc").Insert("d")
	assert.False(t, out.Good())
	assert.ErrorIs(t, out.Err(), errFull)
	assert.Equal(t, "ab", w.String())
	assert.Equal(t, int64(2), out.Written())
}

func TestWriterClear(t *testing.T) {
	t.Parallel()
	out, buf := newStream()
	out.Insert(nil)
	require.False(t, out.Good())
	out.Clear()
	assert.True(t, out.Good())
	out.Insert("ok")
	assert.Equal(t, "ok", buf.String())
}

func TestWriterWriteStringIgnoresFormatting(t *testing.T) {
	t.Parallel()
	out, buf := newStream()
	out.SetWidth(6)
	n, err := out.WriteString("ab")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 6, out.Width())
	out.Insert("cd")
	assert.Equal(t, "ab    cd", buf.String())
	assert.Equal(t, int64(8), out.Written())
}

func TestWriterWriteStringFailed(t *testing.T) {
	t.Parallel()
	out := rangeio.NewWriter(&limitWriter{})
	_, err := out.WriteString("x")
	assert.ErrorIs(t, err, errFull)
	_, err = out.WriteString("y")
	assert.ErrorIs(t, err, errFull)
}
