package domain

// FileInfo is advisory metadata about a selected file. Pages is zero for non-PDFs or
// when the page count could not be read.
type FileInfo struct {
	Name  string
	Size  int64
	MIME  string
	Pages int
}
