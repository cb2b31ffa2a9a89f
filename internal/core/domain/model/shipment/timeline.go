package shipment

import (
	"fmt"
	"strings"
	"time"
)

// MaxTimelineImages is the maximum number of image payloads kept per
// timeline entry. Longer sequences are truncated to the first
// MaxTimelineImages elements before filtering.
const MaxTimelineImages = 20

// inlineImagePrefix marks an embedded image payload (a data URL).
const inlineImagePrefix = "data:image/"

// TimelineEntry is one immutable record of a status event in a shipment's
// append-only timeline. Entries are created by the aggregate and never
// edited, reordered, or removed; insertion order is chronological order.
type TimelineEntry struct {
	// Status is the status value at the time of the event.
	Status Status

	// Timestamp is the server-assigned event creation time.
	Timestamp time.Time

	// Location is a snapshot of the shipment's location at event time.
	// May be empty.
	Location string

	// Description is the system-generated human-readable summary.
	Description string

	// Notes is optional operator-supplied free text.
	Notes string

	// Images is an optional ordered sequence of embedded image payloads,
	// at most MaxTimelineImages per entry.
	Images []string
}

// newCreationEntry builds the single entry every shipment's timeline starts
// with: status Pending, empty location, system description.
func newCreationEntry(now time.Time) TimelineEntry {
	return TimelineEntry{
		Status:      Pending,
		Timestamp:   now,
		Description: "Shipment created",
	}
}

// newStatusEntry builds the timeline entry recording a status change.
// Notes are trimmed and dropped when empty; images are truncated to the
// first MaxTimelineImages elements and filtered to recognizable inline
// image payloads, with malformed elements dropped individually.
func newStatusEntry(status Status, location, notes string, images []string, now time.Time) TimelineEntry {
	entry := TimelineEntry{
		Status:      status,
		Timestamp:   now,
		Location:    location,
		Description: fmt.Sprintf("Status updated to %s", status),
	}

	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		entry.Notes = trimmed
	}

	if filtered := filterInlineImages(images); len(filtered) > 0 {
		entry.Images = filtered
	}

	return entry
}

func filterInlineImages(images []string) []string {
	if len(images) > MaxTimelineImages {
		images = images[:MaxTimelineImages]
	}

	var valid []string
	for _, img := range images {
		if strings.HasPrefix(img, inlineImagePrefix) {
			valid = append(valid, img)
		}
	}
	return valid
}
