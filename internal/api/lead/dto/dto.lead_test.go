package leaddto

import (
	"testing"

	"lead_center/internal/global"

	"github.com/stretchr/testify/assert"
)

func init() {
	global.InitValidator()
}

func validCreateInput() LeadCreateInput {
	return LeadCreateInput{
		FirstName: "Minh",
		LastName:  "Nguyen",
		Email:     "minh.nguyen@example.com",
		Phone:     "+84901234567",
		Company:   "Acme VN",
		City:      "Ha Noi",
		Source:    "website",
		Status:    "new",
		Score:     50,
		LeadValue: 1500,
	}
}

func TestLeadCreateInput_HopLe(t *testing.T) {
	input := validCreateInput()
	assert.NoError(t, global.Validate.Struct(input), "input hợp lệ không được báo lỗi")

	// Status để trống là hợp lệ (service sẽ gán mặc định)
	input.Status = ""
	assert.NoError(t, global.Validate.Struct(input))
}

func TestLeadCreateInput_ThieuTruongBatBuoc(t *testing.T) {
	input := validCreateInput()
	input.FirstName = ""
	assert.Error(t, global.Validate.Struct(input), "thiếu first_name phải báo lỗi")

	input = validCreateInput()
	input.Email = ""
	assert.Error(t, global.Validate.Struct(input), "thiếu email phải báo lỗi")

	input = validCreateInput()
	input.Phone = ""
	assert.Error(t, global.Validate.Struct(input), "thiếu phone phải báo lỗi")

	input = validCreateInput()
	input.Company = ""
	assert.Error(t, global.Validate.Struct(input), "thiếu company phải báo lỗi")

	input = validCreateInput()
	input.Source = ""
	assert.Error(t, global.Validate.Struct(input), "thiếu source phải báo lỗi")
}

func TestLeadCreateInput_EmailKhongHopLe(t *testing.T) {
	input := validCreateInput()
	input.Email = "khong-phai-email"
	assert.Error(t, global.Validate.Struct(input))
}

func TestLeadCreateInput_EnumNgoaiDanhSach(t *testing.T) {
	input := validCreateInput()
	input.Source = "tiktok_ads"
	assert.Error(t, global.Validate.Struct(input), "source ngoài danh sách phải bị từ chối")

	input = validCreateInput()
	input.Status = "archived"
	assert.Error(t, global.Validate.Struct(input), "status ngoài danh sách phải bị từ chối")
}

func TestLeadCreateInput_GioiHanSo(t *testing.T) {
	input := validCreateInput()
	input.Score = 101
	assert.Error(t, global.Validate.Struct(input), "score > 100 phải bị từ chối")

	input = validCreateInput()
	input.Score = -1
	assert.Error(t, global.Validate.Struct(input), "score âm phải bị từ chối")

	input = validCreateInput()
	input.Score = 0
	assert.NoError(t, global.Validate.Struct(input), "score 0 là hợp lệ")

	input = validCreateInput()
	input.Score = 100
	assert.NoError(t, global.Validate.Struct(input), "score 100 là hợp lệ")

	input = validCreateInput()
	input.LeadValue = -0.01
	assert.Error(t, global.Validate.Struct(input), "lead_value âm phải bị từ chối")
}

func TestLeadUpdateInput_PartialUpdate(t *testing.T) {
	// Không gửi field nào vẫn hợp lệ
	assert.NoError(t, global.Validate.Struct(LeadUpdateInput{}))

	status := "qualified"
	assert.NoError(t, global.Validate.Struct(LeadUpdateInput{Status: &status}))

	badStatus := "archived"
	assert.Error(t, global.Validate.Struct(LeadUpdateInput{Status: &badStatus}))

	badScore := 200
	assert.Error(t, global.Validate.Struct(LeadUpdateInput{Score: &badScore}))

	emptyName := ""
	assert.Error(t, global.Validate.Struct(LeadUpdateInput{FirstName: &emptyName}), "first_name rỗng phải bị từ chối")

	emptyPhone := ""
	assert.Error(t, global.Validate.Struct(LeadUpdateInput{Phone: &emptyPhone}), "phone rỗng phải bị từ chối")

	emptyCompany := ""
	assert.Error(t, global.Validate.Struct(LeadUpdateInput{Company: &emptyCompany}), "company rỗng phải bị từ chối")

	badEmail := "abc"
	assert.Error(t, global.Validate.Struct(LeadUpdateInput{Email: &badEmail}))
}
