package layers

import "github.com/fixlayer/fixlayer/pkg/layer"

// RegisterAll registers the eight built-in layers with the given registry.
func RegisterAll(registry *layer.Registry) {
	registry.Register(NewConfigurationLayer()) // 1
	registry.Register(NewPatternsLayer())      // 2
	registry.Register(NewComponentsLayer())    // 3
	registry.Register(NewHydrationLayer())     // 4
	registry.Register(NewNextJSLayer())        // 5
	registry.Register(NewTestingLayer())       // 6
	registry.Register(NewAdaptiveLayer())      // 7
	registry.Register(NewSecurityLayer())      // 8
}

// init registers the built-in layers with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic layer registration
func init() {
	RegisterAll(layer.DefaultRegistry)
}
