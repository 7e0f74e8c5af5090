// Package leadhdl - Handler CRUD lead.
package leadhdl

import (
	"encoding/json"
	"fmt"
	"strconv"

	basehdl "lead_center/internal/api/base/handler"
	leaddto "lead_center/internal/api/lead/dto"
	leadsvc "lead_center/internal/api/lead/service"
	"lead_center/internal/common"
	"lead_center/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeadHandler xử lý API lead.
type LeadHandler struct {
	leadService *leadsvc.LeadService
}

// NewLeadHandler tạo LeadHandler mới.
func NewLeadHandler() (*LeadHandler, error) {
	svc, err := leadsvc.NewLeadService()
	if err != nil {
		return nil, fmt.Errorf("tạo LeadService: %w", err)
	}
	return &LeadHandler{leadService: svc}, nil
}

// HandleCreate xử lý POST /leads.
func (h *LeadHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		owner, err := getUserIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		var input leaddto.LeadCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		lead, err := h.leadService.Create(c.Context(), owner, &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("create", "lead", lead.ID.Hex(), c, nil)
		basehdl.HandleResponseWithStatus(c, common.StatusCreated, lead, nil)
		return nil
	})
}

// HandleList xử lý GET /leads.
// Query: filters (JSON đã URL-encode), page, limit.
func (h *LeadHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		owner, err := getUserIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var descriptor leadsvc.FilterDescriptor
		if raw := c.Query("filters"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &descriptor); err != nil {
				basehdl.HandleResponse(c, nil, common.NewFilterError("filters", "JSON không hợp lệ"))
				return nil
			}
		}

		page := parseQueryInt(c, "page", 0)
		limit := parseQueryInt(c, "limit", 0)

		result, err := h.leadService.List(c.Context(), owner, descriptor, page, limit)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleGetByID xử lý GET /leads/:id.
func (h *LeadHandler) HandleGetByID(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		owner, err := getUserIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		id, err := parseLeadID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		lead, err := h.leadService.GetByID(c.Context(), owner, id)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, lead, nil)
		return nil
	})
}

// HandleUpdate xử lý PUT /leads/:id.
func (h *LeadHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		owner, err := getUserIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		id, err := parseLeadID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		var input leaddto.LeadUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		lead, err := h.leadService.Update(c.Context(), owner, id, &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("update", "lead", lead.ID.Hex(), c, nil)
		basehdl.HandleResponse(c, lead, nil)
		return nil
	})
}

// HandleDelete xử lý DELETE /leads/:id.
func (h *LeadHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		owner, err := getUserIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		id, err := parseLeadID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.leadService.Delete(c.Context(), owner, id); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("delete", "lead", id.Hex(), c, nil)
		return c.SendStatus(common.StatusNoContent)
	})
}

// parseLeadID đọc và validate path param :id.
func parseLeadID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không hợp lệ",
			common.StatusBadRequest,
			err,
		)
	}
	return id, nil
}

// parseQueryInt đọc query param số nguyên, trả về def khi vắng mặt hoặc không đọc được.
func parseQueryInt(c fiber.Ctx, name string, def int64) int64 {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// getUserIDFromContext lấy user ID từ context (đã được set bởi AuthMiddleware).
func getUserIDFromContext(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil)
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return userID, nil
}
