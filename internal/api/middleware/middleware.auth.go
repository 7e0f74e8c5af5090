package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authsvc "lead_center/internal/api/auth/service"
	"lead_center/internal/common"
	"lead_center/internal/global"
	"lead_center/internal/utility"
)

// AuthMiddleware middleware xác thực người dùng qua JWT token.
// - Đọc token từ header Authorization (Bearer scheme)
// - Validate chữ ký và thời hạn token
// - Kiểm tra token có khớp với token đang lưu trong database không (hỗ trợ revoke khi logout)
// - Kiểm tra tài khoản có bị khóa không
// - Lưu user_id vào context cho các handler phía sau
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header Authorization
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Validate chữ ký và giải mã token
		userIDHex, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, tokenString)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lấy user từ database để kiểm tra token còn hiệu lực không
		userService, err := authsvc.NewUserService()
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		user, err := userService.FindOneById(context.Background(), userID)
		if err != nil {
			// Không phân biệt user không tồn tại với token sai
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Token đã bị revoke (logout) hoặc đã được cấp lại
		if user.Token == "" || user.Token != tokenString {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra tài khoản bị khóa
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuth,
				"Tài khoản đã bị khóa",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu user_id vào context
		c.Locals("user_id", user.ID.Hex())

		return c.Next()
	}
}
