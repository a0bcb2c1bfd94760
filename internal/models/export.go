package models

// ExportPayload is the JSON shape produced by the mobile app's log export and
// accepted by the ingest endpoint.
type ExportPayload struct {
	Sessions []Session `json:"sessions"`
}

// IngestResult summarizes an ingest call.
type IngestResult struct {
	SessionsInserted int `json:"sessions_inserted"`
	SetsInserted     int `json:"sets_inserted"`
	SessionsSkipped  int `json:"sessions_skipped"`
}
