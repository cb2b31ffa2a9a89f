package queries

import (
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/shipment"
)

// timelineEntryRow mirrors the JSON shape of one timeline element as the
// repository stores it in the shipments.timeline jsonb column.
type timelineEntryRow struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Notes       string    `json:"notes,omitempty"`
	Images      []string  `json:"images,omitempty"`
}

// decodeTimeline unmarshals the stored timeline column and enriches every
// entry with its display label. Entries stay in stored (chronological) order.
func decodeTimeline(raw []byte) ([]TimelineEntryResponse, error) {
	rows := make([]timelineEntryRow, 0)
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	entries := make([]TimelineEntryResponse, 0, len(rows))
	for _, row := range rows {
		label, _, err := statusView(row.Status)
		if err != nil {
			return nil, err
		}
		entries = append(entries, TimelineEntryResponse{
			Status:      row.Status,
			StatusLabel: label,
			Timestamp:   row.Timestamp,
			Location:    row.Location,
			Description: row.Description,
			Notes:       row.Notes,
			Images:      row.Images,
		})
	}

	return entries, nil
}

// statusView resolves the display metadata for a stored status value.
// The step is shipment.NoStep for statuses outside the main progression.
func statusView(stored string) (string, int, error) {
	status, err := shipment.StatusFromString(stored)
	if err != nil {
		return "", shipment.NoStep, err
	}

	display, _ := status.Display()
	step, _ := status.Step()
	return display.Label, step, nil
}
