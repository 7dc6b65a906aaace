package internsheet

import (
	"github.com/mhakala/internsheet/pkg/internsheet/archive"
	"github.com/mhakala/internsheet/pkg/internsheet/workbook"
)

// ErrInvalidWorkbook indicates an unparseable spreadsheet container. Fatal
// to that one file's extraction, never to the batch.
var ErrInvalidWorkbook = workbook.ErrInvalidWorkbook

// ErrUnsupportedContainer indicates an unrecognized top-level input. Fatal
// to that one input, never to the batch.
var ErrUnsupportedContainer = archive.ErrUnsupportedContainer
