package link

import "fmt"

// Kind is the element kind of an external value.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Type describes the type an external constant is declared with. Size is the
// element count of a fixed-size array and 0 for scalars.
type Type struct {
	Kind Kind
	Size int
}

// Scalar returns the scalar type of kind k.
func Scalar(k Kind) Type { return Type{Kind: k} }

// Array returns the fixed-size array type of n elements of kind k.
func Array(k Kind, n int) Type { return Type{Kind: k, Size: n} }

// IsArray reports whether t is a fixed-size array type.
func (t Type) IsArray() bool { return t.Size > 0 }

// String formats t as "kind" or "kind[size]".
func (t Type) String() string {
	if t.IsArray() {
		return fmt.Sprintf("%s[%d]", t.Kind, t.Size)
	}
	return t.Kind.String()
}

// Value is a typed constant supplied for an external. The zero Value is
// invalid and means "not resolved".
type Value struct {
	typ  Type
	data any
}

// Scalar value constructors.

func BoolValue(v bool) Value       { return Value{typ: Scalar(KindBool), data: v} }
func Int32Value(v int32) Value     { return Value{typ: Scalar(KindInt32), data: v} }
func Int64Value(v int64) Value     { return Value{typ: Scalar(KindInt64), data: v} }
func Float32Value(v float32) Value { return Value{typ: Scalar(KindFloat32), data: v} }
func Float64Value(v float64) Value { return Value{typ: Scalar(KindFloat64), data: v} }
func StringValue(v string) Value   { return Value{typ: Scalar(KindString), data: v} }

// Float32ArrayValue wraps v as a float32[len(v)] value. v is not copied.
func Float32ArrayValue(v []float32) Value {
	return Value{typ: Array(KindFloat32, len(v)), data: v}
}

// Float64ArrayValue wraps v as a float64[len(v)] value. v is not copied.
func Float64ArrayValue(v []float64) Value {
	return Value{typ: Array(KindFloat64, len(v)), data: v}
}

// Type returns the value's type.
func (v Value) Type() Type { return v.typ }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.typ.Kind != KindInvalid }

// Interface returns the underlying Go value: bool, int32, int64, float32,
// float64, string, []float32 or []float64.
func (v Value) Interface() any { return v.data }

// Float64s returns the elements of a float64 array value.
func (v Value) Float64s() ([]float64, bool) {
	s, ok := v.data.([]float64)
	return s, ok
}

// Float32s returns the elements of a float32 array value.
func (v Value) Float32s() ([]float32, bool) {
	s, ok := v.data.([]float32)
	return s, ok
}

// External describes an externally declared constant awaiting a value.
type External struct {
	// Name is fully qualified, e.g. "namespace::processor::name".
	Name string
	// Type is the declared type the value must match.
	Type Type
	// Annotation holds the declaration's annotation properties.
	Annotation map[string]string
}

// ExternalValueProvider returns the value to bind to ext. It returns an
// invalid Value when it has no value for ext.
type ExternalValueProvider func(ext External) (Value, error)

// ResolveExternal asks the provider for the value of ext and checks that it
// matches the declared type. The returned errors are meant to be reported as
// build errors by the caller.
func (o Options) ResolveExternal(ext External) (Value, error) {
	if o.ExternalValueProvider == nil {
		return Value{}, fmt.Errorf("%w: %s", ErrNoProvider, ext.Name)
	}

	v, err := o.ExternalValueProvider(ext)
	if err != nil {
		return Value{}, fmt.Errorf("link: resolving external %s: %w", ext.Name, err)
	}
	if !v.IsValid() {
		return Value{}, fmt.Errorf("%w: %s", ErrUnresolved, ext.Name)
	}
	if v.Type() != ext.Type {
		return Value{}, fmt.Errorf("%w: %s is %s, provider returned %s", ErrTypeMismatch, ext.Name, ext.Type, v.Type())
	}
	return v, nil
}
