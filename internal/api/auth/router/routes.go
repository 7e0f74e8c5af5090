// Package router đăng ký các route thuộc domain auth.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "lead_center/internal/api/auth/handler"
	"lead_center/internal/api/middleware"
	apirouter "lead_center/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Các route công khai, không cần auth
	v1.Post("/auth/register", userHandler.HandleRegister)
	v1.Post("/auth/login", userHandler.HandleLogin)

	// Các route cần đăng nhập
	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/me", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangeInfo)

	return nil
}
