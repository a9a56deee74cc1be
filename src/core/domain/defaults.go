package domain

// MinTextLength is the minimum number of characters (runes) of a trimmed
// question or answer.
const MinTextLength = 5

// MaxTextLength is the maximum number of characters (runes) of a trimmed
// question or answer.
const MaxTextLength = 255

// LocationBody tags validation errors raised from the request body.
const LocationBody = "body"
