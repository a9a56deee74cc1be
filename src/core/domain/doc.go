// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: the Joke record served by the API
//   - Text rules: trimming, length bounds and markup escaping for joke text
//   - Domain Errors: validation, not-found and storage failures
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//
// Example:
//
//	q := domain.NormalizeText("  Why did the chicken cross the road?  ")
//	if err := domain.CheckTextLength("question", q); err != nil {
//	    return err
//	}
//	stored := domain.EscapeText(q)
package domain
