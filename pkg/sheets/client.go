// Package sheets pushes saved activities to the user-configured spreadsheet
// append endpoint. One-way, best-effort: no retry queue, no delivery
// guarantee, and a manual re-push can produce a duplicate row (the remote
// side does not deduplicate by id).
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"kaju/entities"
	"kaju/pkg/remote"
	"kaju/pkg/settings"
)

var (
	ErrNoEndpoint    = errors.New("sync endpoint is not configured (SYNC_ENDPOINT)")
	ErrNoSheetConfig = errors.New("spreadsheet is not configured (settings/sheets)")
)

type Client struct {
	endpoint string
	settings *settings.Service
	loc      *time.Location
	httpc    *http.Client
}

func New(endpoint string, st *settings.Service, loc *time.Location) *Client {
	if loc == nil {
		loc = time.Local
	}
	return &Client{
		endpoint: endpoint,
		settings: st,
		loc:      loc,
		httpc:    &http.Client{Timeout: 15 * time.Second},
	}
}

type appendRequest struct {
	Action        string   `json:"action"`
	SpreadsheetID string   `json:"spreadsheetId"`
	SheetName     string   `json:"sheetName"`
	Row           []string `json:"row"`
}

type appendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Push appends one activity as a spreadsheet row. Missing configuration fails
// immediately with a descriptive error; transport and remote failures carry a
// typed kind for the caller to branch on.
func (c *Client) Push(ctx context.Context, a entities.ActivityRecord) error {
	if c.endpoint == "" {
		return ErrNoEndpoint
	}
	cfg, ok := c.settings.SheetsConfig()
	if !ok {
		return ErrNoSheetConfig
	}

	body := appendRequest{
		Action:        "append",
		SpreadsheetID: cfg.SpreadsheetID,
		SheetName:     cfg.SheetName,
		Row:           Row(a, c.loc),
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return remote.NetError(err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var out appendResponse
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := out.Error
		if msg == "" {
			msg = string(raw)
		}
		return remote.StatusError(resp.StatusCode, msg)
	}
	if !out.Success {
		return &remote.Error{Kind: remote.Unknown, Status: resp.StatusCode, Message: out.Error}
	}
	return nil
}
