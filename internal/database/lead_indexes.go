// Package database - Index bổ sung cho leads (compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"lead_center/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateLeadAdditionalIndexes tạo các index bổ sung cho leads.
// Gọi sau CreateIndexes cho collection leads.
func CreateLeadAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// leads: (owner, created_at desc, _id desc) — danh sách lead phân trang theo thời gian tạo
	leads := db.Collection(global.MongoDB_ColNames.Leads)
	if _, err := leads.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		},
		Options: options.Index().SetName("lead_owner_created_id"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// leads: (owner, status) — lọc theo trạng thái trong phạm vi owner
	if _, err := leads.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("lead_owner_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
