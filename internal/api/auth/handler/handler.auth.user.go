package authhdl

import (
	"fmt"

	authdto "lead_center/internal/api/auth/dto"
	authsvc "lead_center/internal/api/auth/service"
	basehdl "lead_center/internal/api/base/handler"
	"lead_center/internal/common"
	"lead_center/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &UserHandler{
		userService: userService,
	}, nil
}

// HandleRegister xử lý đăng ký người dùng mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.UserRegisterInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.Register(c.Context(), &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogAuth("register", c, map[string]interface{}{"user_id": user.ID.Hex()})
		basehdl.HandleResponseWithStatus(c, common.StatusCreated, user, nil)
		return nil
	})
}

// HandleLogin xử lý đăng nhập
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.UserLoginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			logger.LogAuth("login_failed", c, map[string]interface{}{"email": input.Email})
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogAuth("login", c, map[string]interface{}{"user_id": user.ID.Hex()})
		basehdl.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất người dùng
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		userID := c.Locals("user_id")
		if userID == nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
			return nil
		}
		objID, err := primitive.ObjectIDFromHex(userID.(string))
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
			return nil
		}
		err = h.userService.Logout(c.Context(), objID)
		if err == nil {
			logger.LogAuth("logout", c, nil)
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleChangeInfo cập nhật thông tin hiển thị của người dùng đang đăng nhập
func (h *UserHandler) HandleChangeInfo(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		userID := c.Locals("user_id")
		if userID == nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
			return nil
		}
		objID, err := primitive.ObjectIDFromHex(userID.(string))
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
			return nil
		}
		var input authdto.UserChangeInfoInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.ChangeInfo(c.Context(), objID, &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogAuth("change_info", c, map[string]interface{}{"user_id": user.ID.Hex()})
		user.PasswordHash = ""
		basehdl.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleGetProfile lấy thông tin profile của người dùng
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		userID := c.Locals("user_id")
		if userID == nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
			return nil
		}
		objID, err := primitive.ObjectIDFromHex(userID.(string))
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
			return nil
		}
		user, err := h.userService.FindOneById(c.Context(), objID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		user.PasswordHash = ""
		basehdl.HandleResponse(c, user, nil)
		return nil
	})
}
