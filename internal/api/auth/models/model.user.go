// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng
// Token chứa token xác thực mới nhất của người dùng, được cấp lại mỗi lần đăng nhập
// và bị xóa khi đăng xuất (revoke).
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	PasswordHash string             `json:"-" bson:"password_hash,omitempty"`
	Token        string             `json:"token" bson:"token"`
	IsBlock      bool               `json:"-" bson:"is_block"`
	BlockNote    string             `json:"-" bson:"block_note"`
	CreatedAt    int64              `json:"createdAt" bson:"created_at"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updated_at"`
}
