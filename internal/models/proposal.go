package models

type Proposal struct {
	BaseModel
	JobID           string         `gorm:"type:uuid;not null;uniqueIndex:idx_proposal_job_talent" json:"job_id"`
	TalentProfileID string         `gorm:"type:uuid;not null;uniqueIndex:idx_proposal_job_talent" json:"talent_profile_id"`
	CoverLetter     string         `json:"cover_letter"`
	BidAmount       float64        `json:"bid_amount"`
	Status          ProposalStatus `gorm:"type:varchar(30);default:'pending';index" json:"status"`

	Job           *Job           `gorm:"foreignKey:JobID" json:"job,omitempty"`
	TalentProfile *TalentProfile `gorm:"foreignKey:TalentProfileID" json:"talent_profile,omitempty"`
}
