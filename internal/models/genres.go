package models

import "strings"

// Genres are a flat list everywhere above the storage layer but are
// persisted as one delimited column. The delimiter never leaves this
// package.

const genreDelimiter = ","

// EncodeGenres flattens a genre list into its storage form. An empty
// list encodes to the empty string.
func EncodeGenres(genres []string) string {
	if len(genres) == 0 {
		return ""
	}
	return strings.Join(genres, genreDelimiter)
}

// DecodeGenres restores the genre list from its storage form. The empty
// string decodes to nil so encode/decode round-trips exactly.
func DecodeGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, genreDelimiter)
}
