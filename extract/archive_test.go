package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/atriumlabs/converso/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := writer.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func TestExpandArchives(t *testing.T) {
	t.Run("non-archives pass through", func(t *testing.T) {
		docs := []core.Document{
			{Name: "a.txt", Type: core.DocumentTypePlainText, Data: []byte("conteúdo")},
		}
		leaves, err := ExpandArchives(docs)
		require.NoError(t, err)
		require.Len(t, leaves, 1)
		assert.Equal(t, "a.txt", leaves[0].Name)
	})

	t.Run("zip entries become leaf documents", func(t *testing.T) {
		data := buildZip(t, map[string][]byte{
			"cv_ana.pdf":   []byte("%PDF-fake"),
			"notas.txt":    []byte("algumas notas"),
			"ignorado.png": []byte{1, 2, 3},
		})
		docs := []core.Document{{Name: "lote.zip", Type: core.DocumentTypeArchive, Data: data}}

		leaves, err := ExpandArchives(docs)
		require.NoError(t, err)
		require.Len(t, leaves, 2)

		names := []string{leaves[0].Name, leaves[1].Name}
		assert.ElementsMatch(t, []string{"cv_ana.pdf", "notas.txt"}, names)
	})

	t.Run("nested archives expand recursively", func(t *testing.T) {
		inner := buildZip(t, map[string][]byte{"cv_bruno.pdf": []byte("%PDF-fake")})
		outer := buildZip(t, map[string][]byte{
			"interno.zip": inner,
			"cv_ana.pdf":  []byte("%PDF-fake"),
		})
		docs := []core.Document{{Name: "lote.zip", Type: core.DocumentTypeArchive, Data: outer}}

		leaves, err := ExpandArchives(docs)
		require.NoError(t, err)
		require.Len(t, leaves, 2)
		names := []string{leaves[0].Name, leaves[1].Name}
		assert.ElementsMatch(t, []string{"cv_ana.pdf", "cv_bruno.pdf"}, names)
	})

	t.Run("directory entries are skipped", func(t *testing.T) {
		var buf bytes.Buffer
		writer := zip.NewWriter(&buf)
		_, err := writer.Create("pasta/")
		require.NoError(t, err)
		w, err := writer.Create("pasta/cv.pdf")
		require.NoError(t, err)
		_, err = w.Write([]byte("%PDF-fake"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		docs := []core.Document{{Name: "lote.zip", Type: core.DocumentTypeArchive, Data: buf.Bytes()}}
		leaves, err := ExpandArchives(docs)
		require.NoError(t, err)
		require.Len(t, leaves, 1)
		assert.Equal(t, "cv.pdf", leaves[0].Name)
	})

	t.Run("corrupt archive fails", func(t *testing.T) {
		docs := []core.Document{{Name: "ruim.zip", Type: core.DocumentTypeArchive, Data: []byte("not a zip")}}
		_, err := ExpandArchives(docs)
		assert.ErrorIs(t, err, ErrExtraction)
	})
}
