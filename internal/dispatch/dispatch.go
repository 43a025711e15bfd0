// Package dispatch contrasts methods resolved by a reference's static type
// with methods resolved by the value's runtime type.
//
// Go has no virtual keyword. A method called through an interface is
// resolved at runtime; a method called on a concrete pointer is resolved at
// compile time, and a type that embeds Base only hides Base's method when
// called on the outer type. Object carries both views so Render can show the
// two results side by side.
package dispatch

import "fmt"

// Sink receives the lines a demo prints.
type Sink interface {
	Println(a ...any)
}

// Object is anything that exposes a runtime-dispatched method and a view of
// its embedded Base.
type Object interface {
	Dynamic() string
	Embedded() *Base
}

// Base is the common embedded type.
type Base struct {
	value int
}

// NewBase constructs a Base and announces it on sink.
func NewBase(sink Sink, value int) *Base {
	b := &Base{value: value}
	sink.Println(fmt.Sprintf("Base.New %d", value))
	return b
}

// Static is always Base's implementation when called on a *Base.
func (b *Base) Static() string {
	return "Base.Static"
}

// Dynamic is Base's implementation; embedding types may replace it.
func (b *Base) Dynamic() string {
	return "Base.Dynamic"
}

// Value returns the value the Base was constructed with.
func (b *Base) Value() int {
	return b.value
}

// Embedded returns b viewed as a *Base.
func (b *Base) Embedded() *Base {
	return b
}

// Shadow declares its own Static, which hides Base.Static only when called
// on a *Shadow.
type Shadow struct {
	Base
}

// NewShadow constructs a Shadow, announcing the embedded Base first.
func NewShadow(sink Sink, value int) *Shadow {
	s := &Shadow{Base: *NewBase(sink, value)}
	sink.Println("Shadow.New")
	return s
}

// Static is Shadow's own implementation.
func (s *Shadow) Static() string {
	return fmt.Sprintf("Shadow.Static %d", s.Value())
}

// Override replaces Dynamic.
type Override struct {
	Base
}

// NewOverride constructs an Override, announcing the embedded Base first.
func NewOverride(sink Sink, value int) *Override {
	o := &Override{Base: *NewBase(sink, value)}
	sink.Println("Override.New")
	return o
}

// Dynamic is Override's implementation.
func (o *Override) Dynamic() string {
	return "Override.Dynamic"
}

// Inspect calls Static through a *Base, which never reaches an embedding
// type's Static.
func Inspect(b *Base) string {
	return b.Static()
}

// Outcome reports which implementation each call path reached.
type Outcome struct {
	Dynamic string
	Static  string
}

// Render calls Dynamic through the interface and Static through the
// embedded Base.
func Render(obj Object) Outcome {
	return Outcome{
		Dynamic: obj.Dynamic(),
		Static:  Inspect(obj.Embedded()),
	}
}

// Demo walks a Shadow and two Overrides through both call paths.
func Demo(sink Sink) {
	shadow := NewShadow(sink, 0)
	var obj Object = shadow
	sink.Println(Inspect(obj.Embedded()))
	sink.Println(shadow.Static())
	sink.Println(obj.Dynamic())

	obj = NewOverride(sink, 10)
	sink.Println(Inspect(obj.Embedded()))

	obj = NewOverride(sink, 5)
	out := Render(obj)
	sink.Println(out.Static)
	sink.Println(out.Dynamic)

	sink.Println("dispatch demo complete")
}
