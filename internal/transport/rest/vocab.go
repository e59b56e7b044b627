package rest

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/lexitable/internal/domain"
	"github.com/heartmarshall/lexitable/internal/service/transfer"
	"github.com/heartmarshall/lexitable/internal/service/vocab"
	"github.com/heartmarshall/lexitable/internal/transport/dataloader"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type vocabService interface {
	ListWordSets(ctx context.Context) ([]domain.WordSet, error)
	CreateWordSet(ctx context.Context, input vocab.CreateWordSetInput) (*domain.WordSet, error)
	UpdateWordSet(ctx context.Context, id int64, input vocab.UpdateWordSetInput) (*domain.WordSet, error)
	DeleteWordSet(ctx context.Context, id int64) error
	GetWordSetPage(ctx context.Context, id int64, filter domain.WordFilter) (*domain.WordSetPage, error)
	AddWord(ctx context.Context, setID int64, input vocab.AddWordInput) (*domain.Word, error)
	UpdateWord(ctx context.Context, id int64, patch domain.WordPatch) (*domain.Word, error)
	DeleteWord(ctx context.Context, id int64) error
}

type transferService interface {
	Export(ctx context.Context, setID int64) (*transfer.ExportResult, error)
	Import(ctx context.Context, setID int64, r io.Reader) (*transfer.ImportResult, error)
}

// VocabHandler serves word sets and words.
type VocabHandler struct {
	svc          vocabService
	transfer     transferService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewVocabHandler creates a VocabHandler. maxBodyBytes bounds import uploads.
func NewVocabHandler(svc vocabService, tr transferService, maxBodyBytes int64, logger *slog.Logger) *VocabHandler {
	return &VocabHandler{svc: svc, transfer: tr, maxBodyBytes: maxBodyBytes, log: logger.With("handler", "vocab")}
}

type createWordSetRequest struct {
	Title         string      `json:"title"`
	CustomColumns []columnDTO `json:"customColumns"`
	Template      string      `json:"template"`
}

type updateWordSetRequest struct {
	Title         *string     `json:"title"`
	CustomColumns []columnDTO `json:"customColumns"`
}

type addWordRequest struct {
	Original     string            `json:"original"`
	Translation  string            `json:"translation"`
	Status       string            `json:"status"`
	CustomFields map[string]string `json:"customFields"`
}

type updateWordRequest struct {
	Original     *string           `json:"original"`
	Translation  *string           `json:"translation"`
	Status       *string           `json:"status"`
	CustomFields map[string]string `json:"customFields"`
}

type importErrorDTO struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type importResponse struct {
	Imported     int              `json:"imported"`
	Skipped      int              `json:"skipped"`
	Errors       []importErrorDTO `json:"errors"`
	AddedColumns []columnDTO      `json:"addedColumns"`
}

// ListWordSets handles GET /word-sets. Totals are filled in one batched
// count query.
func (h *VocabHandler) ListWordSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.svc.ListWordSets(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := make([]int64, len(sets))
	for i, s := range sets {
		ids[i] = s.ID
	}
	counts, err := dataloader.LoadWordCounts(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]wordSetResponse, len(sets))
	for i := range sets {
		sets[i].Total = counts[i]
		out[i] = toWordSetResponse(&sets[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateWordSet handles POST /word-sets.
func (h *VocabHandler) CreateWordSet(w http.ResponseWriter, r *http.Request) {
	var req createWordSetRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	set, err := h.svc.CreateWordSet(r.Context(), vocab.CreateWordSetInput{
		Title:    req.Title,
		Columns:  fromColumnDTOs(req.CustomColumns),
		Template: domain.Template(req.Template),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWordSetResponse(set))
}

// UpdateWordSet handles PATCH /word-sets/{id}.
func (h *VocabHandler) UpdateWordSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateWordSetRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	set, err := h.svc.UpdateWordSet(r.Context(), id, vocab.UpdateWordSetInput{
		Title:   req.Title,
		Columns: fromColumnDTOs(req.CustomColumns),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordSetResponse(set))
}

// DeleteWordSet handles DELETE /word-sets/{id}.
func (h *VocabHandler) DeleteWordSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteWordSet(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetWordSetPage handles GET /word-sets/{id}?offset&limit&search&status.
func (h *VocabHandler) GetWordSetPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	filter, err := parseWordFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.GetWordSetPage(r.Context(), id, filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wordSetPageResponse{
		ID:            page.ID,
		Title:         page.Title,
		CustomColumns: toColumnDTOs(page.CustomColumns),
		Words:         toWordResponses(page.Words),
		HasMore:       page.HasMore,
		Total:         page.Total,
	})
}

// AddWord handles POST /word-sets/{id}/words.
func (h *VocabHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	setID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addWordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.AddWord(r.Context(), setID, vocab.AddWordInput{
		Original:     req.Original,
		Translation:  req.Translation,
		Status:       domain.WordStatus(strings.ToUpper(req.Status)),
		CustomFields: req.CustomFields,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWordResponse(*word))
}

// UpdateWord handles PATCH /words/{id}.
func (h *VocabHandler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateWordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	patch := domain.WordPatch{
		Original:     req.Original,
		Translation:  req.Translation,
		CustomFields: req.CustomFields,
	}
	if req.Status != nil {
		st := domain.WordStatus(strings.ToUpper(*req.Status))
		patch.Status = &st
	}

	word, err := h.svc.UpdateWord(r.Context(), id, patch)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// DeleteWord handles DELETE /words/{id}.
func (h *VocabHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteWord(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /word-sets/{id}/export.
func (h *VocabHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.transfer.Export(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": res.Title + ".xlsx"}))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(res.Data) //nolint:errcheck
}

// Import handles POST /word-sets/{id}/import. The workbook is either the raw
// request body or the "file" part of a multipart form.
func (h *VocabHandler) Import(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	body := io.Reader(r.Body)
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "multipart/form-data" {
		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file")
			return
		}
		defer file.Close()
		body = file
	}

	res, err := h.transfer.Import(r.Context(), id, body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := importResponse{
		Imported:     res.Imported,
		Skipped:      res.Skipped,
		Errors:       make([]importErrorDTO, len(res.Errors)),
		AddedColumns: toColumnDTOs(res.AddedColumns),
	}
	for i, e := range res.Errors {
		out.Errors[i] = importErrorDTO{Row: e.Row, Reason: e.Reason}
	}
	writeJSON(w, http.StatusOK, out)
}

func parseWordFilter(r *http.Request) (domain.WordFilter, error) {
	q := r.URL.Query()
	f := domain.WordFilter{Search: strings.TrimSpace(q.Get("search"))}

	var errs []domain.FieldError
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		f.Offset = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a non-negative integer"})
		}
		f.Limit = n
	}
	if v := strings.TrimSpace(q.Get("status")); v != "" && !strings.EqualFold(v, allSentinel) {
		st, err := domain.ParseWordStatus(strings.ToUpper(v))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
		} else {
			f.Status = &st
		}
	}
	if len(errs) > 0 {
		return f, domain.NewValidationErrors(errs)
	}
	return f, nil
}
