package models

import (
	"time"

	"github.com/lib/pq"
)

type TalentProfile struct {
	ID           string         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID       string         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	DisplayName  string         `json:"display_name"`
	Bio          string         `json:"bio"`
	HourlyRate   float64        `json:"hourly_rate"`
	Availability Availability   `gorm:"type:varchar(20);default:'contract'" json:"availability"`
	City         string         `json:"city"`
	Languages    pq.StringArray `gorm:"type:text[]" json:"languages"`
	ProfileViews int            `json:"profile_views"`
	IsPublic     bool           `gorm:"default:true" json:"is_public"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	Skills []Skill `gorm:"many2many:talent_skills" json:"skills,omitempty"`
}

type ManagerProfile struct {
	ID            string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CompanyName   string    `json:"company_name"`
	CompanyType   string    `json:"company_type"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Website       string    `json:"website"`
	City          string    `json:"city"`
	IsVerified    bool      `gorm:"default:false" json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Skill struct {
	ID   string `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
