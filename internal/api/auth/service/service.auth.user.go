// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "lead_center/internal/api/auth/dto"
	models "lead_center/internal/api/auth/models"
	basesvc "lead_center/internal/api/base/service"
	"lead_center/internal/common"
	"lead_center/internal/global"
	"lead_center/internal/utility"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký người dùng mới với email và mật khẩu
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			"Không thể mã hóa mật khẩu",
			common.StatusInternalServerError,
			err,
		)
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		// Email trùng với tài khoản đã tồn tại
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("Register: Đăng ký thành công")
	return &created, nil
}

// Login đăng nhập bằng email và mật khẩu, trả về user kèm JWT token mới
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Không phân biệt email không tồn tại với mật khẩu sai
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị khóa", common.StatusForbidden, nil)
	}

	// Tạo JWT token mới
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		user.ID.Hex(),
		strconv.FormatInt(currentTime, 16),
		strconv.Itoa(rdNumber),
	)
	if err != nil {
		return nil, err
	}

	// Cập nhật token vào user (token cũ bị thay thế)
	tokenUpdateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token": tokenMap["token"],
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, tokenUpdateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("Login: Đăng nhập thành công")
	return &updatedUser, nil
}

// ChangeInfo cập nhật thông tin hiển thị của người dùng đang đăng nhập
func (s *UserService) ChangeInfo(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangeInfoInput) (*models.User, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"name": input.Name,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex()}).Info("ChangeInfo: Cập nhật thông tin thành công")
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (revoke token hiện tại)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token": "",
		},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}
