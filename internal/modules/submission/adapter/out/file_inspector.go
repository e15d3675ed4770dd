package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"rsc.io/pdf"

	"easeed/internal/modules/submission/domain"
	submissionout "easeed/internal/modules/submission/port/out"
)

type LocalFileInspector struct{}

func NewLocalFileInspector() submissionout.FileInspector {
	return &LocalFileInspector{}
}

func (i *LocalFileInspector) Inspect(_ context.Context, path string) (domain.FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return domain.FileInfo{}, fmt.Errorf("stat file: %w", err)
	}
	if st.IsDir() {
		return domain.FileInfo{}, fmt.Errorf("%s is a directory", path)
	}
	info := domain.FileInfo{
		Name: filepath.Base(path),
		Size: st.Size(),
		MIME: detectContentType(path),
	}
	if mt, err := mimetype.DetectFile(path); err == nil && mt.Is("application/pdf") {
		info.Pages = pageCount(path)
	}
	return info, nil
}

// pageCount returns 0 when the document cannot be parsed. rsc.io/pdf panics on some
// malformed inputs.
func pageCount(path string) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	doc, err := pdf.Open(path)
	if err != nil {
		return 0
	}
	return doc.NumPage()
}
