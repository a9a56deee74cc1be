// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization
//   - Keep the wire format stable when domain types change
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateJokeRequest)
//   - Response types: <Resource>Response (e.g., JokeResponse)
package dto
