package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"lead_center/internal/common"
	"lead_center/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// SafeHandlerWrapper bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
// Giá trị panic chỉ được ghi log; client nhận message chung, không kèm chi tiết nội bộ.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log panic và stack trace để debug
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic": fmt.Sprintf("%v", r),
				"path":  c.Path(),
			}).Error("Panic trong handler")
			debug.PrintStack()

			HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return fn()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format response thống nhất trong toàn bộ ứng dụng.
//
// Parameters:
// - c: Fiber context
// - data: Dữ liệu trả về cho client (có thể là nil nếu chỉ trả về lỗi)
// - err: Lỗi nếu có (nil nếu không có lỗi)
func HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			// Lỗi 5xx không được lộ chi tiết nội bộ (lỗi store, stack, ...) ra client:
			// log đầy đủ, trả về message chung và bỏ details.
			if customErr.StatusCode >= common.StatusInternalServerError {
				logger.WithRequest(c).WithError(err).Error("Lỗi hệ thống khi xử lý request")
				JSONResponse(c, customErr.StatusCode, fiber.Map{
					"code":    customErr.Code.Code,
					"message": common.MsgInternalError,
					"status":  "error",
				})
				return
			}
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}
		// Lỗi không phân loại được cũng là lỗi hệ thống: log chi tiết, trả về message chung
		logger.WithRequest(c).WithError(err).Error("Lỗi không phân loại được khi xử lý request")
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeDatabase.Code,
			"message": common.MsgInternalError,
			"status":  "error",
		})
		return
	}

	// Trường hợp thành công
	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// HandleResponseWithStatus giống HandleResponse nhưng cho phép chỉ định status code thành công
// (201 cho tạo mới, v.v). Lỗi vẫn được xử lý như HandleResponse.
func HandleResponseWithStatus(c fiber.Ctx, statusCode int, data interface{}, err error) {
	if err != nil {
		HandleResponse(c, nil, err)
		return
	}

	JSONResponse(c, statusCode, fiber.Map{
		"code":    statusCode,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
