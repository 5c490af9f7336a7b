package model

type GetLeaderboardRequest struct {
	Offset int `json:"offset" form:"offset"`
	Limit  int `json:"limit" form:"limit"`
}

type GetLeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type GetUniqueWinnerRequest struct{}

type GetUniqueWinnerResponse struct {
	Awarded bool   `json:"awarded"`
	Winner  *User  `json:"winner,omitempty"`
	Prize   *Prize `json:"prize,omitempty"`
}

type GetDonorsRequest struct{}

type GetDonorsResponse struct {
	Donors []Donor `json:"donors"`
}
