package leaddto

import (
	models "lead_center/internal/api/lead/models"
)

// LeadCreateInput đầu vào tạo lead.
type LeadCreateInput struct {
	FirstName      string  `json:"first_name" validate:"required,no_xss"`
	LastName       string  `json:"last_name" validate:"required,no_xss"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required"`
	Company        string  `json:"company" validate:"required,no_xss"`
	City           string  `json:"city" validate:"omitempty,no_xss"`
	State          string  `json:"state" validate:"omitempty,no_xss"`
	Source         string  `json:"source" validate:"required,oneof=website facebook_ads google_ads referral events other"`
	Status         string  `json:"status" validate:"omitempty,oneof=new contacted qualified lost won"`
	Score          int     `json:"score" validate:"gte=0,lte=100"`
	LeadValue      float64 `json:"lead_value" validate:"gte=0"`
	IsQualified    bool    `json:"is_qualified"`
	LastActivityAt *int64  `json:"last_activity_at"`
}

// LeadUpdateInput đầu vào cập nhật lead. Tất cả field đều optional (partial update),
// chỉ field được gửi lên mới được cập nhật.
// Dùng omitnil thay vì omitempty: con trỏ non-nil trỏ tới giá trị rỗng vẫn phải được validate.
type LeadUpdateInput struct {
	FirstName      *string  `json:"first_name" validate:"omitnil,min=1,no_xss"`
	LastName       *string  `json:"last_name" validate:"omitnil,min=1,no_xss"`
	Email          *string  `json:"email" validate:"omitnil,email"`
	Phone          *string  `json:"phone" validate:"omitnil,min=1"`
	Company        *string  `json:"company" validate:"omitnil,min=1,no_xss"`
	City           *string  `json:"city" validate:"omitnil,no_xss"`
	State          *string  `json:"state" validate:"omitnil,no_xss"`
	Source         *string  `json:"source" validate:"omitnil,oneof=website facebook_ads google_ads referral events other"`
	Status         *string  `json:"status" validate:"omitnil,oneof=new contacted qualified lost won"`
	Score          *int     `json:"score" validate:"omitnil,gte=0,lte=100"`
	LeadValue      *float64 `json:"lead_value" validate:"omitnil,gte=0"`
	IsQualified    *bool    `json:"is_qualified"`
	LastActivityAt *int64   `json:"last_activity_at"`
}

// LeadPage kết quả phân trang danh sách lead.
type LeadPage struct {
	Data       []models.Lead `json:"data"`
	Page       int64         `json:"page"`
	Limit      int64         `json:"limit"`
	Total      int64         `json:"total"`
	TotalPages int64         `json:"totalPages"`
}
