// Package archive normalizes a raw input into a sequence of individual
// spreadsheet byte streams. An input is classified by signature: a zip
// container holding the OOXML content-types part is a single workbook, any
// other zip is treated as a bundle of spreadsheets, and everything else is
// unsupported. File extensions alone never classify the top-level input.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrUnsupportedContainer indicates the input is neither a recognized
// archive nor a parseable spreadsheet container.
var ErrUnsupportedContainer = errors.New("unsupported container format")

// contentTypesPart marks a zip container as an OOXML workbook rather than
// a bundle of files.
const contentTypesPart = "[Content_Types].xml"

// Entry is one spreadsheet yielded by a Sequence. Err is set when the
// archive member could not be decompressed; Data is nil in that case.
type Entry struct {
	Name string
	Data []byte
	Err  error
}

// Sequence lazily yields the spreadsheets contained in one input. It is
// finite and single-pass; members are decompressed one at a time as Next
// is called.
type Sequence struct {
	name   string
	single []byte
	files  []*zip.File
	idx    int
	done   bool
}

// Expand reads the input and classifies it. For a bundle, spreadsheet-like
// members are selected in archive order; for a single workbook, the
// sequence yields the input itself under its own name. Unrecognized input
// fails with an error wrapping ErrUnsupportedContainer.
func Expand(name string, r io.Reader) (*Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedContainer)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedContainer)
	}

	if isWorkbook(zr) {
		return &Sequence{name: name, single: data}, nil
	}

	var files []*zip.File
	for _, f := range zr.File {
		if isSpreadsheetMember(f) {
			files = append(files, f)
		}
	}
	return &Sequence{name: name, files: files}, nil
}

// Next yields the next spreadsheet, reporting false when the sequence is
// exhausted. A member that fails to decompress is yielded with Err set and
// the sequence continues with its siblings.
func (s *Sequence) Next() (Entry, bool) {
	if s.single != nil {
		if s.done {
			return Entry{}, false
		}
		s.done = true
		return Entry{Name: s.name, Data: s.single}, true
	}

	if s.idx >= len(s.files) {
		return Entry{}, false
	}
	f := s.files[s.idx]
	s.idx++

	name := path.Base(f.Name)
	rc, err := f.Open()
	if err != nil {
		return Entry{Name: name, Err: fmt.Errorf("opening %s: %w", f.Name, err)}, true
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return Entry{Name: name, Err: fmt.Errorf("decompressing %s: %w", f.Name, err)}, true
	}
	return Entry{Name: name, Data: data}, true
}

// isWorkbook reports whether the zip container is itself an OOXML workbook.
func isWorkbook(zr *zip.Reader) bool {
	for _, f := range zr.File {
		if f.Name == contentTypesPart {
			return true
		}
	}
	return false
}

// isSpreadsheetMember selects bundle members worth extracting: spreadsheet
// extensions, skipping directories and archiver junk like __MACOSX copies,
// dotfiles, and Office lock files.
func isSpreadsheetMember(f *zip.File) bool {
	if f.FileInfo().IsDir() {
		return false
	}
	for _, part := range strings.Split(f.Name, "/") {
		if part == "__MACOSX" || strings.HasPrefix(part, ".") || strings.HasPrefix(part, "~$") {
			return false
		}
	}
	switch strings.ToLower(path.Ext(f.Name)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}
