package waybill

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// mergePDF concatenates the pages of the given documents in order into one
// output document.
func mergePDF(docs [][]byte) ([]byte, error) {
	readers := make([]io.ReadSeeker, 0, len(docs))
	for _, d := range docs {
		readers = append(readers, bytes.NewReader(d))
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, nil); err != nil {
		return nil, fmt.Errorf("merge pdf pages: %w", err)
	}
	return buf.Bytes(), nil
}
