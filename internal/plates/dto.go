// AngelaMos | 2026
// dto.go

package plates

type CreatePlateRequest struct {
	PlateNumber    string  `json:"plateNumber"    validate:"required,min=1,max=20"`
	OwnerName      string  `json:"ownerName"      validate:"required,min=1,max=200"`
	FatherName     *string `json:"fatherName"     validate:"omitempty,max=200"`
	MotherName     *string `json:"motherName"     validate:"omitempty,max=200"`
	IDNumber       *string `json:"idNumber"       validate:"omitempty,max=50"`
	PassportNumber *string `json:"passportNumber" validate:"omitempty,max=50"`
}

type UpdatePlateRequest struct {
	PlateNumber    *string `json:"plateNumber"    validate:"omitempty,min=1,max=20"`
	OwnerName      *string `json:"ownerName"      validate:"omitempty,min=1,max=200"`
	FatherName     *string `json:"fatherName"     validate:"omitempty,max=200"`
	MotherName     *string `json:"motherName"     validate:"omitempty,max=200"`
	IDNumber       *string `json:"idNumber"       validate:"omitempty,max=50"`
	PassportNumber *string `json:"passportNumber" validate:"omitempty,max=50"`
	OwnerImage     *string `json:"ownerImage"     validate:"omitempty,max=500"`
}

type PlatesResponse struct {
	LicensePlates []LicensePlate `json:"licensePlates"`
}

type PlateResponse struct {
	LicensePlate LicensePlate `json:"licensePlate"`
}
