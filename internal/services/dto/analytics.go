package dto

import (
	"time"

	"gigboard_backend/internal/repositories"
)

type DashboardStats struct {
	Users         UserStats                                 `json:"users"`
	Jobs          map[string]int64                          `json:"jobs"`
	Proposals     map[string]int64                          `json:"proposals"`
	Transactions  map[string]repositories.TransactionTotals `json:"transactions"`
	ArchivedUsers int64                                     `json:"archived_users"`
	RecentSignups []RecentSignup                            `json:"recent_signups"`
}

type UserStats struct {
	Total           int64            `json:"total"`
	ByRole          map[string]int64 `json:"by_role"`
	Verified        int64            `json:"verified"`
	RegisteredToday int64            `json:"registered_today"`
	RegisteredWeek  int64            `json:"registered_week"`
	RegisteredMonth int64            `json:"registered_month"`
	GrowthPercent   float64          `json:"growth_percent"`
}

type RecentSignup struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
