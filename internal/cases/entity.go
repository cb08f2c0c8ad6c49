// AngelaMos | 2026
// entity.go

package cases

import (
	"time"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"

	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Case is a tracked investigation. CaseNumber is assigned at creation from
// the record's own id: CASE-<year>-<id padded to 3 digits>. The numeric part
// never resets at year boundaries because the id counter is lifetime-global.
type Case struct {
	ID                int       `json:"id"`
	CaseNumber        string    `json:"caseNumber"`
	Title             string    `json:"title"`
	Description       *string   `json:"description"`
	Status            string    `json:"status"`
	Priority          string    `json:"priority"`
	AssignedOfficerID *int      `json:"assignedOfficerId"`
	CreatedByID       int       `json:"createdById"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
