// Package domain contains the core domain model for the Pokemon review API.
//
// This package defines:
//   - Entities: Pokemon and the Reviews it owns
//   - Page: a slice of entities plus the metadata needed to build a pagination envelope
//   - Domain Errors: not found, invalid input and unauthorized kinds
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Ids are assigned by the store and never change afterwards
package domain
