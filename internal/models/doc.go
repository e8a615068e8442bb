// Package models defines the domain values shared by every collection
// realization.
//
// The package contains a single value type:
//   - [Album] : an immutable title/artist pair with a one-line rendering
//
// Albums carry no identity beyond field equality and are never mutated after
// construction. Ordered sequences of albums are held and handed out by the
// wrapper types in the collection package; models stays free of ownership
// concerns so every wrapper can depend on it.
package models
