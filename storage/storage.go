// Package storage defines persistence for computed metric results.
package storage

import "github.com/revelaction/tecla/metric"

// DocInfo is the stored metadata of an analyzed document.
type DocInfo struct {
	Id    int
	Title string
}

// MetricReader defines read operations for result storage.
type MetricReader interface {
	// Docs returns the metadata of all stored documents, ordered by title.
	Docs() ([]DocInfo, error)

	// Metrics returns the complete result mapping for a document.
	Metrics(docID int) (metric.Result, error)
}

// MetricWriter defines write operations for result storage.
type MetricWriter interface {
	// Write persists a document's metadata and its complete result mapping.
	// Writing the same document again replaces the previous values.
	Write(info DocInfo, res metric.Result) error
}

// MetricRepository combines read and write operations.
type MetricRepository interface {
	MetricReader
	MetricWriter
}
