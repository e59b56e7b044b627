package lexiapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/lexitable/internal/domain"
)

// GetCardSettings returns the stored settings and the columns offered by
// the selected tables.
func (c *Client) GetCardSettings(ctx context.Context) (*domain.CardSettingsView, error) {
	var out envelope[cardSettingsDTO]
	if err := c.doJSON(ctx, http.MethodGet, "/card-settings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data.toDomain(), nil
}

// UpdateCardSettings sends a partial update. ClearHint is sent as an
// explicit null; an unset hint is omitted and kept by the server.
func (c *Client) UpdateCardSettings(ctx context.Context, p domain.CardSettingsPatch) (*domain.CardSettingsView, error) {
	var out envelope[cardSettingsDTO]
	if err := c.doJSON(ctx, http.MethodPut, "/card-settings", nil, settingsPatchDTO{patch: p}, &out); err != nil {
		return nil, err
	}
	return out.Data.toDomain(), nil
}

// CountWords returns how many words match the settings' filters.
func (c *Client) CountWords(ctx context.Context, s domain.CardSettings) (int, error) {
	body := countRequestDTO{
		FrontKey:         s.FrontKey,
		BackKey:          s.BackKey,
		HintKey:          s.HintKey,
		SelectedStatuses: statusList(s.Statuses),
		SelectedTables:   tableList(s.Tables),
	}
	var out envelope[struct {
		Count int `json:"count"`
	}]
	if err := c.doJSON(ctx, http.MethodPost, "/card-settings/count", nil, body, &out); err != nil {
		return 0, err
	}
	return out.Data.Count, nil
}

// TrainingCards fetches the words of a training session.
func (c *Client) TrainingCards(ctx context.Context, p domain.TrainParams) ([]domain.Word, error) {
	q := url.Values{}
	q.Set("front", p.Front)
	q.Set("back", p.Back)
	if p.Hint != nil {
		q.Set("hint", *p.Hint)
	}
	if !p.Statuses.IsAll() {
		q.Set("status", strings.Join(statusList(p.Statuses), ","))
	}
	if !p.Tables.IsAll() {
		q.Set("tables", strings.Join(tableList(p.Tables), ","))
	}

	var out []wordDTO
	if err := c.doJSON(ctx, http.MethodGet, "/card-settings/cards", q, nil, &out); err != nil {
		return nil, err
	}
	return wordsToDomain(out), nil
}

// SubmitAnswer records whether the user knew the word.
func (c *Client) SubmitAnswer(ctx context.Context, wordID int64, known bool) error {
	path := "/card-settings/cards/" + strconv.FormatInt(wordID, 10) + "/answer"
	return c.doJSON(ctx, http.MethodPost, path, nil, map[string]bool{"known": known}, nil)
}

func decodeBody(r io.Reader, out any) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("lexiapi: decode response: %w", err)
	}
	return nil
}
