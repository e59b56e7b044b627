package transfer

import (
	"strings"

	"github.com/heartmarshall/lexitable/internal/domain"
)

// statusHeader names the status column in exported sheets.
const statusHeader = "Статус"

// header returns the sheet header of a set: the fixed columns, the custom
// columns in order, then the status.
func header(set *domain.WordSet) []string {
	fixed := domain.DefaultColumns()
	out := make([]string, 0, len(fixed)+len(set.CustomColumns)+1)
	for _, c := range fixed {
		out = append(out, c.Name)
	}
	for _, c := range set.CustomColumns {
		out = append(out, c.Name)
	}
	return append(out, statusHeader)
}

func row(set *domain.WordSet, w domain.Word) []string {
	out := make([]string, 0, len(set.CustomColumns)+3)
	out = append(out, w.Original, w.Translation)
	for _, c := range set.CustomColumns {
		out = append(out, w.CustomFields[c.Key])
	}
	return append(out, w.Status.String())
}

// columnMap resolves each header cell to a field key. Headers naming no
// known column become new custom columns, returned in sheet order.
type columnMap struct {
	keys  []string
	added []domain.ColumnDef
}

func mapHeader(set *domain.WordSet, cells []string) columnMap {
	known := make(map[string]string)
	for _, c := range domain.DefaultColumns() {
		known[strings.ToLower(c.Name)] = c.Key
		known[c.Key] = c.Key
	}
	known[strings.ToLower(statusHeader)] = domain.KeyStatus
	known[domain.KeyStatus] = domain.KeyStatus
	for _, c := range set.CustomColumns {
		known[strings.ToLower(c.Name)] = c.Key
		known[c.Key] = c.Key
	}

	var m columnMap
	for _, cell := range cells {
		name := strings.TrimSpace(cell)
		if name == "" {
			m.keys = append(m.keys, "")
			continue
		}
		if key, ok := known[strings.ToLower(name)]; ok {
			m.keys = append(m.keys, key)
			continue
		}
		col := domain.NewColumnDef(name)
		if key, ok := known[col.Key]; ok {
			m.keys = append(m.keys, key)
			continue
		}
		known[col.Key] = col.Key
		m.added = append(m.added, col)
		m.keys = append(m.keys, col.Key)
	}
	return m
}

func (m columnMap) has(key string) bool {
	for _, k := range m.keys {
		if k == key {
			return true
		}
	}
	return false
}
