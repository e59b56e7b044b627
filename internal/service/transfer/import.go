package transfer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/lexitable/internal/domain"
	"github.com/heartmarshall/lexitable/pkg/ctxutil"
)

// ImportResult reports the outcome of an import.
type ImportResult struct {
	Imported     int
	Skipped      int
	Errors       []ImportError
	AddedColumns []domain.ColumnDef
}

// ImportError describes one rejected row. Row is 1-based as shown by
// spreadsheet editors, so the first data row is 2.
type ImportError struct {
	Row    int
	Reason string
}

type pendingWord struct {
	row  int
	word domain.Word
}

// Import appends the rows of the first sheet of an xlsx workbook to a word
// set. The first row is the header; headers that match no existing column
// are added to the set as custom columns. Rows are inserted in order, one
// transaction per chunk.
func (s *Service) Import(ctx context.Context, setID int64, r io.Reader) (*ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NewValidationError("file", "sheet is empty")
	}
	if len(rows)-1 > s.cfg.ImportMaxRows {
		return nil, domain.NewValidationError("file",
			fmt.Sprintf("too many rows: %d (max %d)", len(rows)-1, s.cfg.ImportMaxRows))
	}

	set, err := s.sets.Get(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("transfer.Import: %w", err)
	}

	cols := mapHeader(set, rows[0])
	if !cols.has(domain.KeyOriginal) || !cols.has(domain.KeyTranslation) {
		return nil, domain.NewValidationError("file", "header must contain word and translation columns")
	}

	if len(cols.added) > 0 {
		merged := append(slices.Clone(set.CustomColumns), cols.added...)
		if err := domain.ValidateColumns(merged); err != nil {
			return nil, err
		}
		if _, err := s.sets.Update(ctx, userID, setID, nil, merged); err != nil {
			return nil, fmt.Errorf("transfer.Import add columns: %w", err)
		}
	}

	result := &ImportResult{AddedColumns: cols.added}
	var pending []pendingWord
	for i, cells := range rows[1:] {
		rowNum := i + 2
		if blankRow(cells) {
			result.Skipped++
			continue
		}
		w, reason := parseRow(cols.keys, cells)
		if reason != "" {
			result.Errors = append(result.Errors, ImportError{Row: rowNum, Reason: reason})
			continue
		}
		w.WordSetID = setID
		pending = append(pending, pendingWord{row: rowNum, word: w})
	}

	for start := 0; start < len(pending); start += s.cfg.ImportChunkSize {
		end := min(start+s.cfg.ImportChunkSize, len(pending))
		chunk := pending[start:end]

		words := make([]domain.Word, len(chunk))
		for i, p := range chunk {
			words[i] = p.word
		}

		var inserted int
		txErr := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			n, err := s.words.CreateBatch(ctx, setID, words)
			inserted = n
			return err
		})
		if txErr != nil {
			for _, p := range chunk {
				result.Errors = append(result.Errors, ImportError{
					Row:    p.row,
					Reason: fmt.Sprintf("chunk transaction failed: %v", txErr),
				})
			}
			continue
		}
		result.Imported += inserted
	}

	s.log.InfoContext(ctx, "word set imported",
		slog.Int64("word_set_id", setID),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)),
		slog.Int("added_columns", len(cols.added)))

	return result, nil
}

func readRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.NewValidationError("file", "not a valid xlsx workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewValidationError("file", "workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("transfer.Import read rows: %w", err)
	}
	return rows, nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseRow builds a word from one data row. A non-empty reason means the row
// is rejected.
func parseRow(keys, cells []string) (domain.Word, string) {
	w := domain.Word{Status: domain.WordStatusNew}
	for i, key := range keys {
		if key == "" || i >= len(cells) {
			continue
		}
		value := strings.TrimSpace(cells[i])
		switch key {
		case domain.KeyOriginal:
			w.Original = value
		case domain.KeyTranslation:
			w.Translation = value
		case domain.KeyStatus:
			if value == "" {
				continue
			}
			st, err := domain.ParseWordStatus(strings.ToUpper(value))
			if err != nil {
				return w, fmt.Sprintf("invalid status %q", value)
			}
			w.Status = st
		default:
			if value != "" {
				w = w.WithField(key, value)
			}
		}
	}
	switch {
	case w.Original == "":
		return w, "word is empty"
	case w.Translation == "":
		return w, "translation is empty"
	}
	return w, ""
}
