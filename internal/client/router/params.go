package router

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/lexitable/internal/domain"
)

const allSentinel = "all"

// EncodeTrainParams builds the /train location for a session.
func EncodeTrainParams(p domain.TrainParams) string {
	q := url.Values{}
	q.Set("front", p.Front)
	q.Set("back", p.Back)
	if p.Hint != nil {
		q.Set("hint", *p.Hint)
	}
	q.Set("status", joinStatuses(p.Statuses))
	q.Set("tables", joinTables(p.Tables))
	return Location{Route: RouteTrain, Path: string(RouteTrain), Query: q}.String()
}

// DecodeTrainParams reads session parameters from a query. Missing values
// fall back to original/translation, no hint and no filters; unknown
// statuses and table ids are ignored.
func DecodeTrainParams(q url.Values) domain.TrainParams {
	p := domain.TrainParams{
		Front:    q.Get("front"),
		Back:     q.Get("back"),
		Statuses: domain.All[domain.WordStatus](),
		Tables:   domain.All[int64](),
	}
	if p.Front == "" {
		p.Front = domain.KeyOriginal
	}
	if p.Back == "" {
		p.Back = domain.KeyTranslation
	}
	if h := strings.TrimSpace(q.Get("hint")); h != "" && !strings.EqualFold(h, "none") {
		p.Hint = &h
	}

	if parts := split(q.Get("status")); !hasAll(parts) {
		var members []domain.WordStatus
		for _, s := range parts {
			if st, err := domain.ParseWordStatus(s); err == nil {
				members = append(members, st)
			}
		}
		p.Statuses = domain.Only(members...)
	}
	if parts := split(q.Get("tables")); !hasAll(parts) {
		var members []int64
		for _, s := range parts {
			if id, err := strconv.ParseInt(s, 10, 64); err == nil && id > 0 {
				members = append(members, id)
			}
		}
		p.Tables = domain.Only(members...)
	}
	return p
}

func joinStatuses(sel domain.Selection[domain.WordStatus]) string {
	if sel.IsAll() {
		return allSentinel
	}
	parts := make([]string, 0, len(sel.Members()))
	for _, s := range sel.Members() {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ",")
}

func joinTables(sel domain.Selection[int64]) string {
	if sel.IsAll() {
		return allSentinel
	}
	parts := make([]string, 0, len(sel.Members()))
	for _, id := range sel.Members() {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

func split(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// hasAll treats an empty list like the sentinel.
func hasAll(parts []string) bool {
	if len(parts) == 0 {
		return true
	}
	for _, p := range parts {
		if strings.EqualFold(p, allSentinel) {
			return true
		}
	}
	return false
}
