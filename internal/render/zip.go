package render

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// BundleZip packages rendered documents into a single downloadable archive.
// Document order is preserved so the archive lists in reading order.
func BundleZip(docs []Document) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, d := range docs {
		w, err := zw.Create(d.Name)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", d.Name, err)
		}
		if _, err := w.Write(d.Bytes); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", d.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip: %w", err)
	}
	return buf.Bytes(), nil
}
