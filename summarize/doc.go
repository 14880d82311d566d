// Package summarize produces word-bounded document summaries, either one
// per document or a single summary over the combined corpus.
package summarize
