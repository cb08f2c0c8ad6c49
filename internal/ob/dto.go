// AngelaMos | 2026
// dto.go

package ob

type CreateEntryRequest struct {
	Type        string  `json:"type"        validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"required,min=1,max=5000"`
	ReportedBy  string  `json:"reportedBy"  validate:"required,min=1,max=200"`
	Location    *string `json:"location"    validate:"omitempty,max=200"`
}

type UpdateEntryRequest struct {
	Type        *string `json:"type"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,min=1,max=5000"`
	ReportedBy  *string `json:"reportedBy"  validate:"omitempty,min=1,max=200"`
	Location    *string `json:"location"    validate:"omitempty,max=200"`
	Status      *string `json:"status"      validate:"omitempty,min=1,max=50"`
}

type EntriesResponse struct {
	OBEntries []Entry `json:"obEntries"`
}

type EntryResponse struct {
	OBEntry Entry `json:"obEntry"`
}
