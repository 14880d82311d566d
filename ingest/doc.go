// Package ingest builds a project's retrieval substrate from raw documents.
//
// The pipeline expands archives, extracts and normalizes text per format,
// and then either stores a single short document as a knowledge blob or
// splits everything into overlapping chunks, embeds them, and rebuilds the
// project's chunk index.
package ingest
