package model

type GetMembersRequest struct{}

type GetMembersResponse struct {
	Members []User `json:"members"`
}

type AssignBonusScratchRequest struct {
	UserID string `json:"user_id"`
}

type AssignBonusScratchResponse struct{}

type RevokeBonusScratchRequest struct {
	UserID string `json:"user_id"`
}

type RevokeBonusScratchResponse struct{}

type GetInventoryStatsRequest struct{}

type GetInventoryStatsResponse InventoryStats

type InventoryStats struct {
	TotalCards     int64 `json:"total_cards"`
	UsedCards      int64 `json:"used_cards"`
	RemainingCards int64 `json:"remaining_cards"`
	BonusCards     int64 `json:"bonus_cards"`
}
