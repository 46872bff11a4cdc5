// Package dto contains the transfer objects exchanged at the service boundary.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API (a PokemonDto never carries reviews)
//   - Handle JSON serialization/deserialization
//   - Add validation tags for request binding
//
// Mapping helpers live next to each type: FromDomain builds a DTO from an
// entity, ToDomain builds an entity from a DTO. Ids supplied by clients are
// never trusted; the service decides which id an entity gets.
package dto
