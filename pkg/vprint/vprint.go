// Package vprint renders heterogeneous argument lists as text.
//
// Print writes three things for a call with N values: a header reporting N,
// one line per value in call order, and a single combined line holding every
// value separated by a space with a trailing space before the newline.
//
//	vprint.Print(os.Stdout, 10, 20.24, "text")
//
// produces
//
//	size of args3
//	10
//	20.24
//	text
//	10 20.24 text
//
// (the last line ends in a space). A Printer is immutable and safe for
// concurrent use.
package vprint

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// HeaderPrefix starts the count line written by Print.
const HeaderPrefix = "size of args"

// Separator follows every value on the combined line.
const Separator = " "

// Renderer is implemented by values that provide their own textual form.
type Renderer interface {
	Render() string
}

// Printer renders values. The zero value renders floats with the shortest
// representation that round-trips.
type Printer struct {
	// Digits is the number of significant digits used for floats. Zero or a
	// negative value selects the shortest exact representation.
	Digits int
}

var std Printer

// Render returns the textual form of v using the default Printer.
func Render(v any) string {
	return std.Render(v)
}

// Line writes v and a newline using the default Printer.
func Line(w io.Writer, v any) error {
	return std.Line(w, v)
}

// Print writes the header, per-value and combined lines using the default
// Printer.
func Print(w io.Writer, args ...any) error {
	return std.Print(w, args...)
}

// Render returns the textual form of v.
func (p Printer) Render(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case Renderer:
		if isNilPointer(val) {
			return "<nil>"
		}
		return val.Render()
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', p.precision(), 32)
	case float64:
		return strconv.FormatFloat(val, 'g', p.precision(), 64)
	case error:
		if isNilPointer(val) {
			return "<nil>"
		}
		return val.Error()
	case fmt.Stringer:
		if isNilPointer(val) {
			return "<nil>"
		}
		return val.String()
	default:
		return p.renderKind(val)
	}
}

// renderKind handles named types whose underlying kind is a scalar, so a
// type such as `type temp float64` still honors Digits.
func (p Printer) renderKind(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', p.precision(), 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', p.precision(), 64)
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprint(v)
	}
}

// isNilPointer reports whether v is a typed nil pointer. Its methods would
// dereference the receiver, so it renders as <nil> instead.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Values renders each argument, preserving order.
func (p Printer) Values(args ...any) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = p.Render(arg)
	}
	return out
}

// Line writes v and a newline.
func (p Printer) Line(w io.Writer, v any) error {
	_, err := io.WriteString(w, p.Render(v)+"\n")
	return err
}

// Print writes the header, one line per value and the combined line in a
// single Write.
func (p Printer) Print(w io.Writer, args ...any) error {
	values := p.Values(args...)

	var b strings.Builder
	b.WriteString(HeaderPrefix)
	b.WriteString(strconv.Itoa(len(values)))
	b.WriteByte('\n')
	for _, v := range values {
		b.WriteString(v)
		b.WriteByte('\n')
	}
	b.WriteString(strings.Join(values, Separator))
	b.WriteString(Separator)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func (p Printer) precision() int {
	if p.Digits <= 0 {
		return -1
	}
	return p.Digits
}
