package lexiapi

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/domain"
)

const (
	allSentinel  = "all"
	noneSentinel = "none"
)

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// toDomain tolerates ids that are not UUIDs; they map to uuid.Nil.
func (u userDTO) toDomain() *domain.User {
	id, _ := uuid.Parse(u.ID)
	return &domain.User{
		ID:        id,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

type authDTO struct {
	User         userDTO `json:"user"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	ExpiresIn    int     `json:"expires_in"`
}

type columnDTO struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

func toColumnDTOs(cols []domain.ColumnDef) []columnDTO {
	if cols == nil {
		return nil
	}
	out := make([]columnDTO, len(cols))
	for i, c := range cols {
		out[i] = columnDTO{ID: c.ID, Key: c.Key, Name: c.Name}
	}
	return out
}

func fromColumnDTOs(cols []columnDTO) []domain.ColumnDef {
	out := make([]domain.ColumnDef, len(cols))
	for i, c := range cols {
		id := c.ID
		if id == "" {
			id = c.Key
		}
		out[i] = domain.ColumnDef{ID: id, Key: c.Key, Name: c.Name}
	}
	return out
}

type wordSetDTO struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	CustomColumns []columnDTO `json:"customColumns"`
	Total         int         `json:"total"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func (s wordSetDTO) toDomain() domain.WordSet {
	return domain.WordSet{
		ID:            s.ID,
		Title:         s.Title,
		CustomColumns: fromColumnDTOs(s.CustomColumns),
		Total:         s.Total,
		CreatedAt:     s.CreatedAt,
	}
}

type wordDTO struct {
	ID           int64             `json:"id"`
	WordSetID    int64             `json:"wordSetId"`
	Original     string            `json:"original"`
	Translation  string            `json:"translation"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	CustomFields map[string]string `json:"customFields"`
}

func (w wordDTO) toDomain() domain.Word {
	status, err := domain.ParseWordStatus(w.Status)
	if err != nil {
		status = domain.WordStatusNew
	}
	return domain.Word{
		ID:           w.ID,
		WordSetID:    w.WordSetID,
		Original:     w.Original,
		Translation:  w.Translation,
		Status:       status,
		CreatedAt:    w.CreatedAt,
		CustomFields: w.CustomFields,
	}
}

func wordsToDomain(in []wordDTO) []domain.Word {
	out := make([]domain.Word, len(in))
	for i, w := range in {
		out[i] = w.toDomain()
	}
	return out
}

type wordSetPageDTO struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	CustomColumns []columnDTO `json:"customColumns"`
	Words         []wordDTO   `json:"words"`
	HasMore       bool        `json:"hasMore"`
	Total         int         `json:"total"`
}

type wordInputDTO struct {
	Original     string            `json:"original"`
	Translation  string            `json:"translation"`
	Status       string            `json:"status,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
}

type wordPatchDTO struct {
	Original     *string           `json:"original,omitempty"`
	Translation  *string           `json:"translation,omitempty"`
	Status       *string           `json:"status,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
}

func toWordPatchDTO(p domain.WordPatch) wordPatchDTO {
	dto := wordPatchDTO{
		Original:     p.Original,
		Translation:  p.Translation,
		CustomFields: p.CustomFields,
	}
	if p.Status != nil {
		s := p.Status.String()
		dto.Status = &s
	}
	return dto
}

type importErrorDTO struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type importDTO struct {
	Imported     int              `json:"imported"`
	Skipped      int              `json:"skipped"`
	Errors       []importErrorDTO `json:"errors"`
	AddedColumns []columnDTO      `json:"addedColumns"`
}

// selectionList decodes a list of strings or numbers.
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

// Unknown members are skipped; if none remain the selection is All.
func statusSelection(items []string) domain.Selection[domain.WordStatus] {
	if isAllList(items) {
		return domain.All[domain.WordStatus]()
	}
	var members []domain.WordStatus
	for _, s := range items {
		if st, err := domain.ParseWordStatus(s); err == nil {
			members = append(members, st)
		}
	}
	return domain.Only(members...)
}

func tableSelection(items []string) domain.Selection[int64] {
	if isAllList(items) {
		return domain.All[int64]()
	}
	var members []int64
	for _, s := range items {
		if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil && id > 0 {
			members = append(members, id)
		}
	}
	return domain.Only(members...)
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

type columnRefDTO struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type cardSettingsDTO struct {
	FrontKey         string         `json:"frontKey"`
	BackKey          string         `json:"backKey"`
	HintKey          *string        `json:"hintKey"`
	SelectedStatuses selectionList  `json:"selectedStatuses"`
	SelectedTables   selectionList  `json:"selectedTables"`
	UserColumns      []columnRefDTO `json:"userColumns"`
}

func (d cardSettingsDTO) toDomain() *domain.CardSettingsView {
	cols := make([]domain.ColumnRef, len(d.UserColumns))
	for i, c := range d.UserColumns {
		cols[i] = domain.ColumnRef{Key: c.Key, Name: c.Name}
	}
	settings := domain.CardSettings{
		FrontKey: d.FrontKey,
		BackKey:  d.BackKey,
		HintKey:  hintFromWire(d.HintKey),
		Statuses: statusSelection(d.SelectedStatuses),
		Tables:   tableSelection(d.SelectedTables),
	}
	view := &domain.CardSettingsView{UserColumns: cols}
	view.Settings = settings.Normalize(view.AvailableColumns())
	return view
}

type envelope[T any] struct {
	Data T `json:"data"`
}

// settingsPatchDTO is encoded by hand: an absent hint and an explicit null
// mean different things.
type settingsPatchDTO struct {
	patch domain.CardSettingsPatch
}

func (d settingsPatchDTO) MarshalJSON() ([]byte, error) {
	p := d.patch
	m := make(map[string]any, 5)
	if p.FrontKey != nil {
		m["frontKey"] = *p.FrontKey
	}
	if p.BackKey != nil {
		m["backKey"] = *p.BackKey
	}
	switch {
	case p.ClearHint:
		m["hintKey"] = nil
	case p.HintKey != nil:
		m["hintKey"] = *p.HintKey
	}
	if p.Statuses != nil {
		m["selectedStatuses"] = statusList(*p.Statuses)
	}
	if p.Tables != nil {
		m["selectedTables"] = tableList(*p.Tables)
	}
	return json.Marshal(m)
}

type countRequestDTO struct {
	FrontKey         string   `json:"frontKey"`
	BackKey          string   `json:"backKey"`
	HintKey          *string  `json:"hintKey"`
	SelectedStatuses []string `json:"selectedStatuses"`
	SelectedTables   []string `json:"selectedTables"`
}
