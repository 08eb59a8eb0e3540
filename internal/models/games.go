package models

type GetGamesInfoResponse struct {
	Data []Record `json:"data"`
}
