package dto

import "gigboard_backend/internal/models"

type UpdateTalentProfileRequest struct {
	DisplayName  *string  `json:"display_name,omitempty" validate:"omitempty,max=150"`
	Bio          *string  `json:"bio,omitempty" validate:"omitempty,max=2000"`
	HourlyRate   *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	Availability *string  `json:"availability,omitempty" validate:"omitempty,oneof=contract full_time part_time"`
	City         *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Languages    []string `json:"languages,omitempty"`
	IsPublic     *bool    `json:"is_public,omitempty"`
	Skills       []string `json:"skills,omitempty" validate:"omitempty,max=30,dive,min=1,max=60"`
}

type UpdateManagerProfileRequest struct {
	CompanyName   *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	CompanyType   *string `json:"company_type,omitempty" validate:"omitempty,max=100"`
	ContactPerson *string `json:"contact_person,omitempty" validate:"omitempty,max=150"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Website       *string `json:"website,omitempty" validate:"omitempty,url"`
	City          *string `json:"city,omitempty" validate:"omitempty,max=100"`
}

type TalentProfileResponse struct {
	Profile *models.TalentProfile `json:"profile"`
}

type ManagerProfileResponse struct {
	Profile *models.ManagerProfile `json:"profile"`
}
