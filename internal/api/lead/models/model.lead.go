// Package models - Lead thuộc domain lead (leads).
// Mỗi lead thuộc về một chủ sở hữu (owner); mọi truy vấn đều scope theo owner.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nguồn lead.
const (
	LeadSourceWebsite     = "website"
	LeadSourceFacebookAds = "facebook_ads"
	LeadSourceGoogleAds   = "google_ads"
	LeadSourceReferral    = "referral"
	LeadSourceEvents      = "events"
	LeadSourceOther       = "other"
)

// Trạng thái lead.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusLost      = "lost"
	LeadStatusWon       = "won"
)

// Lead lưu thông tin một khách hàng tiềm năng (leads).
type Lead struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Owner primitive.ObjectID `json:"owner" bson:"owner" index:"single"`

	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
	Email     string `json:"email" bson:"email" index:"unique"` // Unique trên toàn hệ thống, không theo owner
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company   string `json:"company,omitempty" bson:"company,omitempty"`
	City      string `json:"city,omitempty" bson:"city,omitempty"`
	State     string `json:"state,omitempty" bson:"state,omitempty"`

	Source string `json:"source" bson:"source"`
	Status string `json:"status" bson:"status" default:"new" index:"single"`

	Score       int     `json:"score" bson:"score"`           // 0..100
	LeadValue   float64 `json:"lead_value" bson:"lead_value"` // >= 0
	IsQualified bool    `json:"is_qualified" bson:"is_qualified"`

	// Unix ms — nil khi chưa có hoạt động nào
	LastActivityAt *int64 `json:"last_activity_at" bson:"last_activity_at"`

	CreatedAt int64 `json:"created_at" bson:"created_at" index:"single,order:-1"`
	UpdatedAt int64 `json:"updated_at" bson:"updated_at"`
}
