// Package models defines data structures for clipping ingestion and deck assembly.
package models

// Record represents a single news item read from a category sheet.
type Record struct {
	// Row is the source row index (1-based).
	Row int `json:"row"`
	// Title is the headline text, kept verbatim.
	Title string `json:"title"`
	// Circulation is the reach of the outlet (0 if the column or cell is absent).
	Circulation int64 `json:"circulation"`
}
