package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lexitable/internal/domain"
)

type cardsService interface {
	GetSettings(ctx context.Context) (*domain.CardSettingsView, error)
	UpdateSettings(ctx context.Context, patch domain.CardSettingsPatch) (*domain.CardSettingsView, error)
	CountWords(ctx context.Context, filter domain.CardFilter) (int, error)
	TrainingCards(ctx context.Context, params domain.TrainParams) ([]domain.TrainingCard, error)
	SubmitAnswer(ctx context.Context, wordID int64, known bool) error
}

// CardsHandler serves card settings and training decks.
type CardsHandler struct {
	svc cardsService
	log *slog.Logger
}

// NewCardsHandler creates a CardsHandler.
func NewCardsHandler(svc cardsService, logger *slog.Logger) *CardsHandler {
	return &CardsHandler{svc: svc, log: logger.With("handler", "cards")}
}

// updateSettingsRequest is partial: absent fields are kept, and an explicit
// null (or "none") hint clears it.
type updateSettingsRequest struct {
	FrontKey         *string        `json:"frontKey"`
	BackKey          *string        `json:"backKey"`
	HintKey          optionalString `json:"hintKey"`
	SelectedStatuses *selectionList `json:"selectedStatuses"`
	SelectedTables   *selectionList `json:"selectedTables"`
}

type countRequest struct {
	FrontKey         string        `json:"frontKey"`
	BackKey          string        `json:"backKey"`
	HintKey          *string       `json:"hintKey"`
	SelectedStatuses selectionList `json:"selectedStatuses"`
	SelectedTables   selectionList `json:"selectedTables"`
}

type answerRequest struct {
	Known *bool `json:"known"`
}

// GetSettings handles GET /card-settings.
func (h *CardsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: toCardSettingsResponse(view)})
}

// UpdateSettings handles PUT /card-settings.
func (h *CardsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	patch := domain.CardSettingsPatch{
		FrontKey: req.FrontKey,
		BackKey:  req.BackKey,
	}
	if req.HintKey.Set {
		patch.HintKey = hintFromWire(req.HintKey.Value)
		patch.ClearHint = patch.HintKey == nil
	}
	if req.SelectedStatuses != nil {
		sel, err := parseStatusSelection("selectedStatuses", *req.SelectedStatuses)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		patch.Statuses = &sel
	}
	if req.SelectedTables != nil {
		sel, err := parseTableSelection("selectedTables", *req.SelectedTables)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		patch.Tables = &sel
	}

	view, err := h.svc.UpdateSettings(r.Context(), patch)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: toCardSettingsResponse(view)})
}

// Count handles POST /card-settings/count. Only the filters matter; the
// column keys are accepted so clients can post their whole settings.
func (h *CardsHandler) Count(w http.ResponseWriter, r *http.Request) {
	var req countRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	statuses, err := parseStatusSelection("selectedStatuses", req.SelectedStatuses)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	tables, err := parseTableSelection("selectedTables", req.SelectedTables)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.CountWords(r.Context(), domain.CardFilter{Statuses: statuses, Tables: tables})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: map[string]int{"count": n}})
}

// Cards handles GET /card-settings/cards?front&back&hint&status&tables.
// Returns the matching words as a bare array.
func (h *CardsHandler) Cards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	statuses, err := parseStatusSelection("status", splitQuery(q.Get("status")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	tables, err := parseTableSelection("tables", splitQuery(q.Get("tables")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	params := domain.TrainParams{
		Front:    q.Get("front"),
		Back:     q.Get("back"),
		Statuses: statuses,
		Tables:   tables,
	}
	if hint := q.Get("hint"); hint != "" {
		params.Hint = hintFromWire(&hint)
	}

	cards, err := h.svc.TrainingCards(r.Context(), params)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]wordResponse, len(cards))
	for i, c := range cards {
		out[i] = toWordResponse(c.Word)
	}
	writeJSON(w, http.StatusOK, out)
}

// Answer handles POST /card-settings/cards/{wordId}/answer.
func (h *CardsHandler) Answer(w http.ResponseWriter, r *http.Request) {
	wordID, err := pathID(r, "wordId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Known == nil {
		handleError(h.log, w, r, domain.NewValidationError("known", "required"))
		return
	}

	if err := h.svc.SubmitAnswer(r.Context(), wordID, *req.Known); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
