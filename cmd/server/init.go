package main

import (
	"context"

	"lead_center/config"
	authmodels "lead_center/internal/api/auth/models"
	leadmodels "lead_center/internal/api/lead/models"
	"lead_center/internal/database"
	"lead_center/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Leads = "leads"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	if err := database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{}); err != nil {
		logrus.Errorf("Failed to create indexes for %s: %v", global.MongoDB_ColNames.Users, err)
	}
	if err := database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Leads), leadmodels.Lead{}); err != nil {
		logrus.Errorf("Failed to create indexes for %s: %v", global.MongoDB_ColNames.Leads, err)
	}

	// Index compound cho leads không biểu diễn được bằng tag (mixed order)
	if err := database.CreateLeadAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create lead compound indexes: %v", err)
	}
}
