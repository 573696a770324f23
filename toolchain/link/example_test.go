package link_test

import (
	"fmt"

	"github.com/cwbudde/algo-dft/toolchain/link"
)

func ExampleOptions_ResolveExternal() {
	opts := link.New(48000, 512,
		link.WithMainProcessor("Synth"),
		link.WithExternalValueProvider(func(ext link.External) (link.Value, error) {
			if ext.Name == "Synth::gain" {
				return link.Float32Value(0.25), nil
			}
			return link.Value{}, nil
		}),
	)

	v, err := opts.ResolveExternal(link.External{Name: "Synth::gain", Type: link.Scalar(link.KindFloat32)})
	fmt.Println(v.Interface(), err)

	_, err = opts.ResolveExternal(link.External{Name: "Synth::gain", Type: link.Scalar(link.KindInt32)})
	fmt.Println(err)

	// Output:
	// 0.25 <nil>
	// link: external value type mismatch: Synth::gain is int32, provider returned float32
}
