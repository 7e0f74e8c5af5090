package authdto

import (
	"testing"

	"lead_center/internal/global"

	"github.com/stretchr/testify/assert"
)

func init() {
	global.InitValidator()
}

func TestUserChangeInfoInput_Validate(t *testing.T) {
	input := UserChangeInfoInput{Name: "Nguyễn Văn A"}
	assert.NoError(t, global.Validate.Struct(&input), "name hợp lệ không được báo lỗi")

	input.Name = ""
	assert.Error(t, global.Validate.Struct(&input), "thiếu name phải báo lỗi")

	input.Name = "<script>alert(1)</script>"
	assert.Error(t, global.Validate.Struct(&input), "name chứa XSS phải bị từ chối")
}

func TestUserRegisterInput_Validate(t *testing.T) {
	input := UserRegisterInput{
		Name:     "Nguyễn Văn A",
		Email:    "a@example.com",
		Password: "MatKhau123!",
	}
	assert.NoError(t, global.Validate.Struct(&input), "đầu vào hợp lệ không được báo lỗi")

	input.Email = "khong-phai-email"
	assert.Error(t, global.Validate.Struct(&input), "email sai định dạng phải báo lỗi")

	input.Email = "a@example.com"
	input.Password = "yeu"
	assert.Error(t, global.Validate.Struct(&input), "mật khẩu yếu phải bị từ chối")
}
