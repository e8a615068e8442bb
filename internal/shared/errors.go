package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Collection misuse errors
	//
	// ErrCollectionMoved is the only runtime-observable misuse in the
	// library: asking a user for albums after a consuming accessor already
	// transferred them out.
	ErrCollectionMoved = fmt.Errorf("collection already moved out of its owner")
	ErrEmptyCollection = fmt.Errorf("collection has no albums")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
