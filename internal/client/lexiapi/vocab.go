package lexiapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/lexitable/internal/domain"
)

// PageQuery selects one page of a word set.
type PageQuery struct {
	Offset int
	Limit  int
	Search string
	Status *domain.WordStatus
}

func (q PageQuery) values() url.Values {
	v := url.Values{}
	v.Set("offset", strconv.Itoa(q.Offset))
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != nil {
		v.Set("status", q.Status.String())
	}
	return v
}

// NewWordSet describes a set to create. Template is applied by the server
// when CustomColumns is empty.
type NewWordSet struct {
	Title         string
	Template      domain.Template
	CustomColumns []domain.ColumnDef
}

// WordSetUpdate renames a set or replaces its columns. Nil fields are kept.
type WordSetUpdate struct {
	Title         *string
	CustomColumns []domain.ColumnDef
}

// ImportResult summarizes a workbook import.
type ImportResult struct {
	Imported     int
	Skipped      int
	Errors       []ImportRowError
	AddedColumns []domain.ColumnDef
}

// ImportRowError is a rejected spreadsheet row.
type ImportRowError struct {
	Row    int
	Reason string
}

// Export is a downloaded workbook.
type Export struct {
	Filename string
	Data     []byte
}

func setPath(id int64, suffix string) string {
	return "/word-sets/" + strconv.FormatInt(id, 10) + suffix
}

// ListWordSets returns the user's sets with their word totals.
func (c *Client) ListWordSets(ctx context.Context) ([]domain.WordSet, error) {
	var out []wordSetDTO
	if err := c.doJSON(ctx, http.MethodGet, "/word-sets", nil, nil, &out); err != nil {
		return nil, err
	}
	sets := make([]domain.WordSet, len(out))
	for i, s := range out {
		sets[i] = s.toDomain()
	}
	return sets, nil
}

func (c *Client) CreateWordSet(ctx context.Context, in NewWordSet) (*domain.WordSet, error) {
	body := struct {
		Title         string      `json:"title"`
		Template      string      `json:"template,omitempty"`
		CustomColumns []columnDTO `json:"customColumns,omitempty"`
	}{in.Title, string(in.Template), toColumnDTOs(in.CustomColumns)}

	var out wordSetDTO
	if err := c.doJSON(ctx, http.MethodPost, "/word-sets", nil, body, &out); err != nil {
		return nil, err
	}
	set := out.toDomain()
	return &set, nil
}

func (c *Client) UpdateWordSet(ctx context.Context, id int64, in WordSetUpdate) (*domain.WordSet, error) {
	body := struct {
		Title         *string      `json:"title,omitempty"`
		CustomColumns *[]columnDTO `json:"customColumns,omitempty"`
	}{Title: in.Title}
	// An empty, non-nil list removes every custom column.
	if in.CustomColumns != nil {
		cols := toColumnDTOs(in.CustomColumns)
		body.CustomColumns = &cols
	}

	var out wordSetDTO
	if err := c.doJSON(ctx, http.MethodPatch, setPath(id, ""), nil, body, &out); err != nil {
		return nil, err
	}
	set := out.toDomain()
	return &set, nil
}

// DeleteWordSet removes a set together with its words.
func (c *Client) DeleteWordSet(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, setPath(id, ""), nil, nil, nil)
}

// GetWordSetPage fetches one page of words, newest first.
func (c *Client) GetWordSetPage(ctx context.Context, id int64, q PageQuery) (*domain.WordSetPage, error) {
	var out wordSetPageDTO
	if err := c.doJSON(ctx, http.MethodGet, setPath(id, ""), q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &domain.WordSetPage{
		ID:            out.ID,
		Title:         out.Title,
		CustomColumns: fromColumnDTOs(out.CustomColumns),
		Words:         wordsToDomain(out.Words),
		HasMore:       out.HasMore,
		Total:         out.Total,
	}, nil
}

// AddWord saves a draft row into a set.
func (c *Client) AddWord(ctx context.Context, setID int64, w domain.TempWord) (*domain.Word, error) {
	body := wordInputDTO{
		Original:     w.Original,
		Translation:  w.Translation,
		Status:       w.Status.String(),
		CustomFields: w.CustomFields,
	}
	var out wordDTO
	if err := c.doJSON(ctx, http.MethodPost, setPath(setID, "/words"), nil, body, &out); err != nil {
		return nil, err
	}
	word := out.toDomain()
	return &word, nil
}

// UpdateWord sends a partial update and returns the stored word.
func (c *Client) UpdateWord(ctx context.Context, id int64, p domain.WordPatch) (*domain.Word, error) {
	var out wordDTO
	path := "/words/" + strconv.FormatInt(id, 10)
	if err := c.doJSON(ctx, http.MethodPatch, path, nil, toWordPatchDTO(p), &out); err != nil {
		return nil, err
	}
	word := out.toDomain()
	return &word, nil
}

func (c *Client) DeleteWord(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/words/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// ExportWordSet downloads the set as an .xlsx workbook.
func (c *Client) ExportWordSet(ctx context.Context, id int64) (*Export, error) {
	resp, err := c.send(ctx, http.MethodGet, setPath(id, "/export"), nil, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("lexiapi: read export: %w", err)
	}
	name := "export.xlsx"
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		name = params["filename"]
	}
	return &Export{Filename: name, Data: data}, nil
}

// ImportWordSet uploads a workbook as the "file" part of a multipart form.
func (c *Client) ImportWordSet(ctx context.Context, id int64, filename string, r io.Reader) (*ImportResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("lexiapi: build upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("lexiapi: read workbook: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("lexiapi: build upload: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPost, setPath(id, "/import"), nil, &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out importDTO
	if err := decodeBody(resp.Body, &out); err != nil {
		return nil, err
	}
	res := &ImportResult{
		Imported:     out.Imported,
		Skipped:      out.Skipped,
		AddedColumns: fromColumnDTOs(out.AddedColumns),
	}
	for _, e := range out.Errors {
		res.Errors = append(res.Errors, ImportRowError{Row: e.Row, Reason: e.Reason})
	}
	return res, nil
}
