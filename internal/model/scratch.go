package model

type GetScratchStatusRequest struct{}

type GetScratchStatusResponse struct {
	CanScratch               bool  `json:"can_scratch"`
	HasBonus                 bool  `json:"has_bonus"`
	TimeUntilNextScratchMsec int64 `json:"time_until_next_scratch_ms"`
}

type ScratchRequest struct{}

type ScratchResponse ScratchOutcome

type GetCollectionRequest struct{}

type GetCollectionResponse struct {
	Entries []CollectionEntry `json:"entries"`
}

type GetPrizesRequest struct{}

type GetPrizesResponse struct {
	Prizes []Prize `json:"prizes"`
}
