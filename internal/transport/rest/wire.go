package rest

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/lexitable/internal/domain"
)

// allSentinel stands for "no filter" in selection lists on the wire.
const allSentinel = "all"

// noneSentinel is accepted for "no hint" alongside JSON null.
const noneSentinel = "none"

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

type columnDTO struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

type columnRefDTO struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func toColumnDTOs(cols []domain.ColumnDef) []columnDTO {
	out := make([]columnDTO, len(cols))
	for i, c := range cols {
		out[i] = columnDTO{ID: c.ID, Key: c.Key, Name: c.Name}
	}
	return out
}

// fromColumnDTOs keeps nil as nil so that an omitted list means "unchanged".
func fromColumnDTOs(cols []columnDTO) []domain.ColumnDef {
	if cols == nil {
		return nil
	}
	out := make([]domain.ColumnDef, len(cols))
	for i, c := range cols {
		out[i] = domain.ColumnDef{ID: c.ID, Key: c.Key, Name: c.Name}
	}
	return out
}

func toColumnRefDTOs(cols []domain.ColumnRef) []columnRefDTO {
	out := make([]columnRefDTO, len(cols))
	for i, c := range cols {
		out[i] = columnRefDTO{Key: c.Key, Name: c.Name}
	}
	return out
}

type wordSetResponse struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	CustomColumns []columnDTO `json:"customColumns"`
	Total         int         `json:"total"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func toWordSetResponse(s *domain.WordSet) wordSetResponse {
	return wordSetResponse{
		ID:            s.ID,
		Title:         s.Title,
		CustomColumns: toColumnDTOs(s.CustomColumns),
		Total:         s.Total,
		CreatedAt:     s.CreatedAt,
	}
}

type wordResponse struct {
	ID           int64             `json:"id"`
	WordSetID    int64             `json:"wordSetId"`
	Original     string            `json:"original"`
	Translation  string            `json:"translation"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	CustomFields map[string]string `json:"customFields"`
}

func toWordResponse(w domain.Word) wordResponse {
	fields := w.CustomFields
	if fields == nil {
		fields = map[string]string{}
	}
	return wordResponse{
		ID:           w.ID,
		WordSetID:    w.WordSetID,
		Original:     w.Original,
		Translation:  w.Translation,
		Status:       w.Status.String(),
		CreatedAt:    w.CreatedAt,
		CustomFields: fields,
	}
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, len(words))
	for i, w := range words {
		out[i] = toWordResponse(w)
	}
	return out
}

type wordSetPageResponse struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	CustomColumns []columnDTO    `json:"customColumns"`
	Words         []wordResponse `json:"words"`
	HasMore       bool           `json:"hasMore"`
	Total         int            `json:"total"`
}

// optionalString tells an absent field apart from an explicit null.
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// selectionList is a JSON array of selection members, or ["all"].
// Members may be strings or numbers.
type selectionList []string

func (l *selectionList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(selectionList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(item, &n); err != nil {
			return err
		}
		out = append(out, n.String())
	}
	*l = out
	return nil
}

func isAllList(items []string) bool {
	if len(items) == 0 {
		return true
	}
	for _, s := range items {
		if strings.EqualFold(strings.TrimSpace(s), allSentinel) {
			return true
		}
	}
	return false
}

func parseStatusSelection(field string, items []string) (domain.Selection[domain.WordStatus], error) {
	if isAllList(items) {
		return domain.All[domain.WordStatus](), nil
	}
	members := make([]domain.WordStatus, 0, len(items))
	for _, s := range items {
		st, err := domain.ParseWordStatus(strings.ToUpper(strings.TrimSpace(s)))
		if err != nil {
			return domain.Selection[domain.WordStatus]{}, domain.NewValidationError(field, "invalid status "+s)
		}
		members = append(members, st)
	}
	return domain.Only(members...), nil
}

func parseTableSelection(field string, items []string) (domain.Selection[int64], error) {
	if isAllList(items) {
		return domain.All[int64](), nil
	}
	members := make([]int64, 0, len(items))
	for _, s := range items {
		id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil || id <= 0 {
			return domain.Selection[int64]{}, domain.NewValidationError(field, "invalid table id "+s)
		}
		members = append(members, id)
	}
	return domain.Only(members...), nil
}

func statusList(sel domain.Selection[domain.WordStatus]) []string {
	if sel.IsAll() {
		return []string{allSentinel}
	}
	out := make([]string, 0, len(sel.Members()))
	for _, s := range sel.Members() {
		out = append(out, s.String())
	}
	return out
}

func tableList(sel domain.Selection[int64]) []string {
	if sel.IsAll() {
		return []string{allSentinel}
	}
	out := make([]string, 0, len(sel.Members()))
	for _, id := range sel.Members() {
		out = append(out, strconv.FormatInt(id, 10))
	}
	return out
}

// splitQuery splits a comma-joined query value, dropping empty parts.
func splitQuery(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// hintFromWire maps null, "" and "none" to no hint.
func hintFromWire(v *string) *string {
	if v == nil {
		return nil
	}
	h := strings.TrimSpace(*v)
	if h == "" || strings.EqualFold(h, noneSentinel) {
		return nil
	}
	return &h
}

type cardSettingsResponse struct {
	FrontKey         string         `json:"frontKey"`
	BackKey          string         `json:"backKey"`
	HintKey          *string        `json:"hintKey"`
	SelectedStatuses []string       `json:"selectedStatuses"`
	SelectedTables   []string       `json:"selectedTables"`
	UserColumns      []columnRefDTO `json:"userColumns"`
}

func toCardSettingsResponse(v *domain.CardSettingsView) cardSettingsResponse {
	s := v.Settings
	return cardSettingsResponse{
		FrontKey:         s.FrontKey,
		BackKey:          s.BackKey,
		HintKey:          s.HintKey,
		SelectedStatuses: statusList(s.Statuses),
		SelectedTables:   tableList(s.Tables),
		UserColumns:      toColumnRefDTOs(v.AvailableColumns()),
	}
}

// dataEnvelope wraps card-settings payloads as {"data": ...}.
type dataEnvelope struct {
	Data any `json:"data"`
}
