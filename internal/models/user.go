package models

type GetUserInfoReq struct {
	ID string `json:"id"`
}

type GetUserInfoResponse struct {
	Data []Record `json:"data"`
}
