package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/atriumlabs/converso/core"
)

// ExpandArchives flattens a document list into leaf documents. Archive
// entries are expanded recursively (archives inside archives included);
// documents with an unrecognized type are silently dropped. Non-archive
// inputs pass through unchanged.
func ExpandArchives(docs []core.Document) ([]core.Document, error) {
	logger := slog.Default().With("component", "archive")

	var leaves []core.Document
	for _, doc := range docs {
		if doc.Type != core.DocumentTypeArchive {
			if doc.Type == core.DocumentTypeUnknown {
				logger.Debug("dropping document with unrecognized type", "name", doc.Name)
				continue
			}
			leaves = append(leaves, doc)
			continue
		}

		contained, err := expandZip(doc)
		if err != nil {
			return nil, err
		}
		expanded, err := ExpandArchives(contained)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, expanded...)
	}
	return leaves, nil
}

// expandZip reads every file entry of a zip archive into a Document with
// the type declared by its file name.
func expandZip(doc core.Document) ([]core.Document, error) {
	reader, err := zip.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExtraction, doc.Name, err)
	}

	var docs []core.Document
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %w", ErrExtraction, doc.Name, entry.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %w", ErrExtraction, doc.Name, entry.Name, err)
		}

		name := filepath.Base(entry.Name)
		docs = append(docs, core.Document{
			Name: name,
			Type: TypeFromName(name),
			Data: data,
		})
	}
	return docs, nil
}
