package types

// ComponentMetadata defines the essential identifying information for components within the system.
// It includes identifiers and descriptive information to help manage and differentiate components dynamically.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Type of the component, used to distinguish between different classes of components.
	Name string // Human-readable name for the component.
}

// Option defines a configuration option function applicable to any component T. This generic approach
// allows for flexible configuration mechanisms across different types of components.
type Option[T any] func(T)

// RandSource is the subset of *rand.Rand (math/rand/v2) used by randomizing operations.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}
