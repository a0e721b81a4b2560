package models

import (
	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	ManagerProfileID string         `gorm:"type:uuid;not null;index" json:"manager_profile_id"`
	Title            string         `gorm:"not null" json:"title"`
	Description      string         `json:"description"`
	BudgetMin        float64        `json:"budget_min"`
	BudgetMax        float64        `json:"budget_max"`
	RequiredSkills   datatypes.JSON `gorm:"type:jsonb" json:"required_skills"`
	City             string         `json:"city"`
	IsRemote         bool           `gorm:"default:false" json:"is_remote"`
	Status           JobStatus      `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	Views            int            `json:"views"`

	ManagerProfile *ManagerProfile `gorm:"foreignKey:ManagerProfileID" json:"manager_profile,omitempty"`
}
