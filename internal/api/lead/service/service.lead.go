package leadsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	basesvc "lead_center/internal/api/base/service"
	leaddto "lead_center/internal/api/lead/dto"
	models "lead_center/internal/api/lead/models"
	"lead_center/internal/common"
	"lead_center/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// Timeout cho mỗi thao tác database
	leadRequestTimeout = 10 * time.Second

	// Số lần thử lại tối đa cho thao tác đọc khi gặp lỗi tạm thời (network/timeout).
	// Thao tác ghi không bao giờ được thử lại để tránh ghi trùng.
	leadMaxReadRetries = 2

	// Phân trang mặc định
	leadDefaultPage  = int64(1)
	leadDefaultLimit = int64(20)
	leadMaxLimit     = int64(100)
)

// LeadService xử lý logic nghiệp vụ cho lead.
type LeadService struct {
	*basesvc.BaseServiceMongoImpl[models.Lead]
}

// NewLeadService tạo LeadService mới.
func NewLeadService() (*LeadService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Leads)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Leads, common.ErrNotFound)
	}
	return &LeadService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Lead](coll),
	}, nil
}

// Create tạo lead mới cho owner.
// Email trùng với lead đã tồn tại (của bất kỳ owner nào) trả về ErrDuplicateEmail.
func (s *LeadService) Create(ctx context.Context, owner primitive.ObjectID, input *leaddto.LeadCreateInput) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, leadRequestTimeout)
	defer cancel()

	lead := models.Lead{
		Owner:          owner,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		Company:        input.Company,
		City:           input.City,
		State:          input.State,
		Source:         input.Source,
		Status:         input.Status,
		Score:          input.Score,
		LeadValue:      input.LeadValue,
		IsQualified:    input.IsQualified,
		LastActivityAt: input.LastActivityAt,
	}

	created, err := s.InsertOne(ctx, lead)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, err
	}
	return &created, nil
}

// List trả về danh sách lead của owner theo filter, có phân trang.
// page < 1 về mặc định 1; limit ngoài [1, 100] bị clamp im lặng.
// Sort cố định: created_at giảm dần, _id giảm dần làm tiebreaker để phân trang ổn định.
func (s *LeadService) List(ctx context.Context, owner primitive.ObjectID, descriptor FilterDescriptor, page, limit int64) (*leaddto.LeadPage, error) {
	page, limit = normalizePageLimit(page, limit)

	filter, err := BuildFilterQuery(descriptor, owner)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, leadRequestTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})

	return retryRead(ctx, func() (*leaddto.LeadPage, error) {
		pr, err := s.FindWithPagination(ctx, filter, page, limit, opts)
		if err != nil {
			return nil, err
		}
		return &leaddto.LeadPage{
			Data:       pr.Items,
			Page:       pr.Page,
			Limit:      pr.Limit,
			Total:      pr.Total,
			TotalPages: pr.TotalPage,
		}, nil
	})
}

// GetByID trả về lead theo id, scope theo owner.
// Lead của owner khác trả về ErrNotFound, không phân biệt với lead không tồn tại.
func (s *LeadService) GetByID(ctx context.Context, owner primitive.ObjectID, id primitive.ObjectID) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, leadRequestTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "owner": owner}
	lead, err := retryRead(ctx, func() (*models.Lead, error) {
		found, err := s.FindOne(ctx, filter, nil)
		if err != nil {
			return nil, err
		}
		return &found, nil
	})
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// Update cập nhật một phần lead theo id, scope theo owner.
// Chỉ các field non-nil của input được ghi. Email trùng trả về ErrDuplicateEmail.
func (s *LeadService) Update(ctx context.Context, owner primitive.ObjectID, id primitive.ObjectID, input *leaddto.LeadUpdateInput) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, leadRequestTimeout)
	defer cancel()

	set := make(map[string]interface{})
	if input.FirstName != nil {
		set["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		set["last_name"] = *input.LastName
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Company != nil {
		set["company"] = *input.Company
	}
	if input.City != nil {
		set["city"] = *input.City
	}
	if input.State != nil {
		set["state"] = *input.State
	}
	if input.Source != nil {
		set["source"] = *input.Source
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Score != nil {
		set["score"] = *input.Score
	}
	if input.LeadValue != nil {
		set["lead_value"] = *input.LeadValue
	}
	if input.IsQualified != nil {
		set["is_qualified"] = *input.IsQualified
	}
	if input.LastActivityAt != nil {
		set["last_activity_at"] = *input.LastActivityAt
	}

	filter := bson.M{"_id": id, "owner": owner}
	updated, err := s.UpdateOne(ctx, filter, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, err
	}
	return &updated, nil
}

// Delete xóa lead theo id, scope theo owner.
// Lead của owner khác trả về ErrNotFound, không phân biệt với lead không tồn tại.
func (s *LeadService) Delete(ctx context.Context, owner primitive.ObjectID, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, leadRequestTimeout)
	defer cancel()

	return s.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
}

// normalizePageLimit đưa page/limit về khoảng hợp lệ:
// page < 1 về mặc định, limit < 1 về mặc định, limit > leadMaxLimit bị clamp.
func normalizePageLimit(page, limit int64) (int64, int64) {
	if page < 1 {
		page = leadDefaultPage
	}
	if limit < 1 {
		limit = leadDefaultLimit
	}
	if limit > leadMaxLimit {
		limit = leadMaxLimit
	}
	return page, limit
}

// retryRead chạy một thao tác đọc, thử lại tối đa leadMaxReadRetries lần
// khi gặp lỗi tạm thời (network/timeout). Chỉ dùng cho thao tác đọc.
func retryRead[T any](ctx context.Context, fn func() (*T, error)) (*T, error) {
	var lastErr error
	for attempt := 0; attempt <= leadMaxReadRetries; attempt++ {
		if ctx.Err() != nil {
			break
		}
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !common.IsTransientMongoError(err) {
			return nil, err
		}
	}
	return nil, lastErr
}
