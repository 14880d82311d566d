// Package extract turns heterogeneous input documents into normalized text.
//
// Dispatch is by declared document type: plain text passes through,
// delimited and spreadsheet data is rendered as a flat textual table,
// structured markup is re-serialized compactly, word-processor documents
// yield their paragraph text, and PDFs yield their page texts joined by
// newlines. Output is whitespace-normalized and trimmed; extractions of
// five characters or fewer are discarded as noise.
//
// Failures are scoped to the single document being extracted. The
// ingestion pipeline treats them as "skip this document"; the screening
// pool converts them into per-document error records.
package extract
