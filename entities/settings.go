package entities

import "time"

// SheetsSyncConfig points the sync client at a user-owned spreadsheet. It is
// persisted as-is; the referenced spreadsheet is not validated until the
// remote append call is made.
type SheetsSyncConfig struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	SheetName     string `json:"sheet_name"`
}

// KBDocument is a stored growing note used as context for AI diagnosis.
type KBDocument struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	SourceURL string `json:"source_url,omitempty"`
	Tags      string `json:"tags,omitempty"`
	Text      string `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
