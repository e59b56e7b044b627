package transfer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lexitable/internal/domain"
	"github.com/heartmarshall/lexitable/pkg/ctxutil"
)

const sheetName = "Words"

// ExportResult is an xlsx workbook of one word set.
type ExportResult struct {
	Title string
	Data  []byte
}

// Export renders a word set as an xlsx workbook: a bold header row with the
// column names, then one row per word in insertion order.
func (s *Service) Export(ctx context.Context, setID int64) (*ExportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		set   *domain.WordSet
		words []domain.Word
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		set, err = s.sets.Get(gctx, userID, setID)
		return err
	})
	g.Go(func() error {
		var err error
		words, err = s.words.ListAll(gctx, userID, setID, s.cfg.ExportMaxWords)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("transfer.Export: %w", err)
	}

	data, err := render(set, words)
	if err != nil {
		return nil, fmt.Errorf("transfer.Export render: %w", err)
	}

	s.log.InfoContext(ctx, "word set exported",
		slog.Int64("word_set_id", setID),
		slog.Int("words", len(words)))

	return &ExportResult{Title: set.Title, Data: data}, nil
}

func render(set *domain.WordSet, words []domain.Word) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	head := header(set)
	if err := f.SetSheetRow(sheetName, "A1", toCells(head)); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(head), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", last, bold); err != nil {
		return nil, err
	}

	for i, w := range words {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, toCells(row(set, w))); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toCells(values []string) *[]any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}
