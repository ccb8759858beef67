package dto

import "github.com/google/uuid"

type PaginationMeta struct {
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type ListQuery struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Normalize เติมค่า default ของ page/limit
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// Offset คำนวณ offset จาก page/limit
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type IDRequest struct {
	ID uuid.UUID `json:"id" validate:"required" param:"id"`
}
