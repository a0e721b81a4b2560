package models

import "time"

type Interview struct {
	BaseModel
	ProposalID       string          `gorm:"type:uuid;not null;index" json:"proposal_id"`
	JobID            string          `gorm:"type:uuid;not null;index" json:"job_id"`
	TalentProfileID  string          `gorm:"type:uuid;not null;index" json:"talent_profile_id"`
	ManagerProfileID string          `gorm:"type:uuid;not null;index" json:"manager_profile_id"`
	ScheduledAt      time.Time       `gorm:"not null" json:"scheduled_at"`
	DurationMinutes  int             `gorm:"default:30" json:"duration_minutes"`
	MeetingLink      string          `json:"meeting_link"`
	Location         string          `json:"location"`
	Notes            string          `json:"notes"`
	Status           InterviewStatus `gorm:"type:varchar(20);default:'scheduled';index" json:"status"`

	Proposal *Proposal `gorm:"foreignKey:ProposalID" json:"proposal,omitempty"`
}
