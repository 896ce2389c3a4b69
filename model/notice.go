package model

import "time"

type Notice struct {
	Content   string
	UpdatedAt time.Time
}

type NoticeResponse struct {
	Notice string `json:"notice"`
}

type UpdateNoticeRequest struct {
	Content string `json:"content" validate:"max=1000"`
}
