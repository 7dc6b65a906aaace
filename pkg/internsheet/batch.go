package internsheet

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/mhakala/internsheet/pkg/internsheet/archive"
	"github.com/mhakala/internsheet/pkg/internsheet/models"
)

// ErrNoInput indicates Run was called with an empty input list.
var ErrNoInput = errors.New("no input resources")

// Source is one raw input to a batch run: a spreadsheet or archive byte
// stream with a display name. The stream must be positioned at offset 0.
type Source struct {
	Name   string
	Reader io.Reader
}

// Run drives the pipeline over one or many inputs: each source is expanded
// into individual spreadsheets, each spreadsheet is loaded and extracted,
// and every outcome is recorded in discovery order. A failure on one entry
// never stops processing of its siblings; the only caller-visible error is
// an empty input list. A nil logger disables logging.
func Run(sources []Source, tpl Template, logger *slog.Logger) (*models.BatchResult, error) {
	if len(sources) == 0 {
		return nil, ErrNoInput
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}

	result := &models.BatchResult{}
	for _, src := range sources {
		seq, err := archive.Expand(src.Name, src.Reader)
		if err != nil {
			logger.Warn("input rejected", "source", src.Name, "error", err)
			result.Entries = append(result.Entries, models.Entry{
				SourceName: src.Name,
				Error:      err.Error(),
			})
			continue
		}

		for entry, ok := seq.Next(); ok; entry, ok = seq.Next() {
			result.Entries = append(result.Entries, processEntry(entry, tpl, logger))
		}
	}
	return result, nil
}

// processEntry extracts one expanded spreadsheet, converting any failure
// into the entry's error.
func processEntry(entry archive.Entry, tpl Template, logger *slog.Logger) models.Entry {
	if entry.Err != nil {
		logger.Warn("entry skipped", "source", entry.Name, "error", entry.Err)
		return models.Entry{SourceName: entry.Name, Error: entry.Err.Error()}
	}

	rec, warnings, err := ExtractResource(entry.Name, entry.Data, tpl)
	if err != nil {
		logger.Warn("extraction failed", "source", entry.Name, "error", err)
		return models.Entry{SourceName: entry.Name, Error: err.Error()}
	}

	logger.Debug("extracted", "source", entry.Name, "warnings", len(warnings))
	return models.Entry{SourceName: entry.Name, Record: rec, Warnings: warnings}
}
