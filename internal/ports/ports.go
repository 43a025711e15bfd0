package ports

// IDGen returns unique identifiers for spawned workers.
type IDGen interface {
	NewID() string
}
