// AngelaMos | 2026
// entity.go

package ob

import (
	"time"
)

const StatusRecorded = "recorded"

// Entry is an occurrence-book record. OBNumber is derived from the record's
// own id at creation: OB/<year>/<id padded to 4 digits>, with the id counter
// running across years. DateTime is stamped by the server when the entry is
// booked, not supplied by the client.
type Entry struct {
	ID                 int       `json:"id"`
	OBNumber           string    `json:"obNumber"`
	DateTime           time.Time `json:"dateTime"`
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	ReportedBy         string    `json:"reportedBy"`
	RecordingOfficerID int       `json:"recordingOfficerId"`
	Location           *string   `json:"location"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
