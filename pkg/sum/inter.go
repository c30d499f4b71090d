package sum

import "time"

type ValueProvider[T any] interface {
	// Value returns the wrapped payload (zero value on the failure/absence side)
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for containers that carry a single failure payload
type WithError[T, E any] interface {
	ValueProvider[T]
	// Error returns the failure payload
	Error() E
	// IsOk returns true if the container holds a success value
	IsOk() bool
}

// WithErrors defines an interface for containers that accumulate failure payloads
type WithErrors[T, E any] interface {
	ValueProvider[T]
	// Errors returns the accumulated failure payloads, in accumulation order
	Errors() []E
	// IsValid returns true if the container holds a success value
	IsValid() bool
}
