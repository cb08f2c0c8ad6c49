// AngelaMos | 2026
// dto.go

package cases

type CreateCaseRequest struct {
	Title       string  `json:"title"       validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Status      string  `json:"status"      validate:"omitempty,oneof=open in_progress closed"`
	Priority    string  `json:"priority"    validate:"omitempty,oneof=low medium high critical"`
}

type UpdateCaseRequest struct {
	Title             *string `json:"title"             validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description"       validate:"omitempty,max=5000"`
	Status            *string `json:"status"            validate:"omitempty,oneof=open in_progress closed"`
	Priority          *string `json:"priority"          validate:"omitempty,oneof=low medium high critical"`
	AssignedOfficerID *int    `json:"assignedOfficerId" validate:"omitempty,min=1"`
}

type CasesResponse struct {
	Cases []Case `json:"cases"`
}

type CaseResponse struct {
	Case Case `json:"case"`
}
