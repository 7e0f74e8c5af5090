// Package router đăng ký các route thuộc domain lead.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	leadhdl "lead_center/internal/api/lead/handler"
	"lead_center/internal/api/middleware"
	apirouter "lead_center/internal/api/router"
)

// Register đăng ký tất cả route lead lên v1. Tất cả đều yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	leadHandler, err := leadhdl.NewLeadHandler()
	if err != nil {
		return fmt.Errorf("tạo LeadHandler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	middlewares := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/leads", "POST", "/", middlewares, leadHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/leads", "GET", "/", middlewares, leadHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/leads", "GET", "/:id", middlewares, leadHandler.HandleGetByID)
	apirouter.RegisterRouteWithMiddleware(v1, "/leads", "PUT", "/:id", middlewares, leadHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/leads", "DELETE", "/:id", middlewares, leadHandler.HandleDelete)

	return nil
}
