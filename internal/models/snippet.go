// Package models defines the data types persisted and returned by the
// snippet store.
package models

// Snippet is a named text entry. Keyword is unique across the table.
type Snippet struct {
	// Keyword is the unique name the snippet is stored under.
	Keyword string

	// Message is the stored text body.
	Message string

	// Hidden excludes the snippet from search and catalog listings.
	// Hidden snippets are still returned by an exact-name lookup.
	Hidden bool
}

// CatalogItem is a single visible (keyword, message) pair.
type CatalogItem struct {
	Keyword string
	Message string
}
