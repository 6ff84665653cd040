// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// NavWidth is the width of each navigation gutter (arrow plus gap).
	NavWidth = 2

	// CardMargin is the gap kept to the right of every card. It is part of
	// the card's measured width.
	CardMargin = 1

	// MaxCardWidth caps the content width of a card.
	MaxCardWidth = 36

	// MinViewportWidth is the narrowest viewport the carousel draws into.
	MinViewportWidth = 1

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2
)
