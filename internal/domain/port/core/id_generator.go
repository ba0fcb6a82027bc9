package core

// IDGenerator produces opaque unique identifiers for new records
type IDGenerator interface {
	NewID() string
}
