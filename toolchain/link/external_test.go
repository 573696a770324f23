package link

import (
	"errors"
	"testing"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Scalar(KindFloat32), "float32"},
		{Array(KindFloat64, 16), "float64[16]"},
		{Scalar(Kind(42)), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueTypes(t *testing.T) {
	tests := []struct {
		v    Value
		want Type
	}{
		{BoolValue(true), Scalar(KindBool)},
		{Int32Value(1), Scalar(KindInt32)},
		{Int64Value(1), Scalar(KindInt64)},
		{Float32Value(1), Scalar(KindFloat32)},
		{Float64Value(1), Scalar(KindFloat64)},
		{StringValue("x"), Scalar(KindString)},
		{Float32ArrayValue(make([]float32, 3)), Array(KindFloat32, 3)},
		{Float64ArrayValue(make([]float64, 5)), Array(KindFloat64, 5)},
	}
	for _, tt := range tests {
		if !tt.v.IsValid() || tt.v.Type() != tt.want {
			t.Fatalf("value %v has type %v, want %v", tt.v.Interface(), tt.v.Type(), tt.want)
		}
	}
	if (Value{}).IsValid() {
		t.Fatal("zero value must be invalid")
	}

	s, ok := Float64ArrayValue([]float64{1, 2}).Float64s()
	if !ok || len(s) != 2 || s[1] != 2 {
		t.Fatalf("Float64s = %v, %v", s, ok)
	}
	if _, ok := Float64Value(1).Float32s(); ok {
		t.Fatal("scalar must not convert to []float32")
	}
}

func TestResolveExternal(t *testing.T) {
	errBackend := errors.New("backend down")

	provider := func(ext External) (Value, error) {
		switch ext.Name {
		case "synth::Osc::gain":
			return Float32Value(0.5), nil
		case "synth::Osc::table":
			return Float32ArrayValue(make([]float32, 4)), nil
		case "synth::Osc::broken":
			return Value{}, errBackend
		default:
			return Value{}, nil
		}
	}
	o := New(48000, 64, WithExternalValueProvider(provider))

	v, err := o.ResolveExternal(External{Name: "synth::Osc::gain", Type: Scalar(KindFloat32)})
	if err != nil {
		t.Fatalf("ResolveExternal: %v", err)
	}
	if v.Interface() != float32(0.5) {
		t.Fatalf("value = %v, want 0.5", v.Interface())
	}

	tests := []struct {
		name string
		ext  External
		want error
	}{
		{"scalar mismatch", External{Name: "synth::Osc::gain", Type: Scalar(KindFloat64)}, ErrTypeMismatch},
		{"array size mismatch", External{Name: "synth::Osc::table", Type: Array(KindFloat32, 8)}, ErrTypeMismatch},
		{"unknown", External{Name: "synth::Osc::missing", Type: Scalar(KindInt32)}, ErrUnresolved},
		{"provider error", External{Name: "synth::Osc::broken", Type: Scalar(KindBool)}, errBackend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := o.ResolveExternal(tt.ext); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolveExternalWithoutProvider(t *testing.T) {
	_, err := New(48000, 64).ResolveExternal(External{Name: "a::b", Type: Scalar(KindBool)})
	if !errors.Is(err, ErrNoProvider) {
		t.Fatalf("err = %v, want ErrNoProvider", err)
	}
}

func TestResolveExternalPassesAnnotation(t *testing.T) {
	var seen External
	o := New(48000, 64, WithExternalValueProvider(func(ext External) (Value, error) {
		seen = ext
		return StringValue("ok"), nil
	}))

	ext := External{Name: "a::b", Type: Scalar(KindString), Annotation: map[string]string{"unit": "dB"}}
	if _, err := o.ResolveExternal(ext); err != nil {
		t.Fatal(err)
	}
	if seen.Name != "a::b" || seen.Annotation["unit"] != "dB" {
		t.Fatalf("provider saw %#v", seen)
	}
}
