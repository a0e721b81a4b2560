package dto

import "gigboard_backend/internal/models"

type CreateProposalRequest struct {
	JobID       string  `json:"job_id" binding:"required" validate:"required,uuid"`
	CoverLetter string  `json:"cover_letter" binding:"required" validate:"required,min=10,max=5000"`
	BidAmount   float64 `json:"bid_amount" validate:"gte=0"`
}

type UpdateProposalStatusRequest struct {
	Status models.ProposalStatus `json:"status" binding:"required" validate:"required"`
}

type ProposalListQuery struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ProposalListResponse struct {
	Proposals []models.Proposal `json:"proposals"`
	PageMeta
}
