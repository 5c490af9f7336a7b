package model

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	Session     Session `json:"session"`
}

type Session struct {
	User              User     `json:"user"`
	CollectedPrizeIDs []string `json:"collected_prize_ids"`
	Rank              uint64   `json:"rank"`
	IsAdmin           bool     `json:"is_admin"`
}

type GetMeRequest struct{}

type GetMeResponse Session
