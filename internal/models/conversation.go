package models

import "time"

// Conversation is a two-party thread between a talent user and a manager
// user, optionally anchored to a job.
type Conversation struct {
	BaseModel
	TalentUserID  string  `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_members" json:"talent_user_id"`
	ManagerUserID string  `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_members" json:"manager_user_id"`
	JobID         *string `gorm:"type:uuid;index" json:"job_id,omitempty"`

	Messages []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

// IsMember reports whether userID participates in the conversation.
func (c *Conversation) IsMember(userID string) bool {
	return c.TalentUserID == userID || c.ManagerUserID == userID
}

// OtherMember returns the counterpart of userID in the conversation.
func (c *Conversation) OtherMember(userID string) string {
	if c.TalentUserID == userID {
		return c.ManagerUserID
	}
	return c.TalentUserID
}

type Message struct {
	BaseModel
	ConversationID string     `gorm:"type:uuid;not null;index" json:"conversation_id"`
	SenderID       string     `gorm:"type:uuid;not null;index" json:"sender_id"`
	Body           string     `gorm:"not null" json:"body"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}
