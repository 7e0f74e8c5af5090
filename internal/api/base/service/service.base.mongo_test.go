package basesvc

import (
	"reflect"
	"testing"
)

// defaultTagModel mô phỏng một model có tag default trên các kiểu được hỗ trợ.
type defaultTagModel struct {
	Status      string `bson:"status" default:"new"`
	Score       int    `bson:"score" default:"10"`
	Retries     int64  `bson:"retries" default:"3"`
	IsQualified bool   `bson:"is_qualified" default:"false"`
	Name        string `bson:"name"`
}

func TestGetInsertDefaultsFromModelType(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(defaultTagModel{}))

	if len(defaults) != 4 {
		t.Fatalf("expected 4 default, got: %d (%v)", len(defaults), defaults)
	}
	if defaults["status"] != "new" {
		t.Errorf("default của status phải là 'new', got: %v", defaults["status"])
	}
	if _, ok := defaults["name"]; ok {
		t.Error("trường không có tag default không được xuất hiện")
	}
}

func TestApplyInsertDefaultsToModel_ChiGanKhiZero(t *testing.T) {
	m := defaultTagModel{}
	applyInsertDefaultsToModel(&m)
	if m.Status != "new" {
		t.Errorf("status rỗng phải nhận giá trị default 'new', got: %s", m.Status)
	}
	if m.Score != 10 {
		t.Errorf("score zero phải nhận giá trị default 10, got: %d", m.Score)
	}
	if m.Retries != 3 {
		t.Errorf("retries zero phải nhận giá trị default 3, got: %d", m.Retries)
	}

	// Giá trị đã được set không bị ghi đè
	m2 := defaultTagModel{Status: "contacted", Score: 85}
	applyInsertDefaultsToModel(&m2)
	if m2.Status != "contacted" {
		t.Errorf("status đã set không được ghi đè, got: %s", m2.Status)
	}
	if m2.Score != 85 {
		t.Errorf("score đã set không được ghi đè, got: %d", m2.Score)
	}
}

func TestApplyInsertDefaultsToModel_InputKhongHopLe(t *testing.T) {
	// Không panic với nil hoặc non-pointer
	applyInsertDefaultsToModel(nil)
	applyInsertDefaultsToModel(defaultTagModel{})
	applyInsertDefaultsToModel(new(int))
}

func TestParseDefaultValue(t *testing.T) {
	if v := parseDefaultValue("new", reflect.TypeOf("")); v != "new" {
		t.Errorf("string default sai, got: %v", v)
	}
	if v := parseDefaultValue("true", reflect.TypeOf(false)); v != true {
		t.Errorf("bool default sai, got: %v", v)
	}
	if v := parseDefaultValue("7", reflect.TypeOf(int64(0))); v != int64(7) {
		t.Errorf("int64 default sai, got: %v", v)
	}
	if v := parseDefaultValue("abc", reflect.TypeOf(int64(0))); v != int64(0) {
		t.Errorf("chuỗi không phải số phải trả về zero, got: %v", v)
	}
}

func TestComputeTotalPage(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		limit int64
		want  int64
	}{
		{"total 0 thì 0 trang", 0, 20, 0},
		{"chia hết", 100, 20, 5},
		{"làm tròn lên", 101, 20, 6},
		{"ít hơn một trang", 5, 20, 1},
		{"đúng một bản ghi", 1, 100, 1},
		{"limit không hợp lệ", 50, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := computeTotalPage(tc.total, tc.limit); got != tc.want {
				t.Errorf("computeTotalPage(%d, %d) = %d, muốn %d", tc.total, tc.limit, got, tc.want)
			}
		})
	}
}

func TestToUpdateData(t *testing.T) {
	// UpdateData truyền thẳng
	original := &UpdateData{Set: map[string]interface{}{"status": "won"}}
	got, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData thất bại: %v", err)
	}
	if got != original {
		t.Error("con trỏ UpdateData phải được trả về nguyên vẹn")
	}

	// UpdateData theo giá trị cũng được chấp nhận
	got, err = ToUpdateData(UpdateData{Set: map[string]interface{}{"status": "lost"}})
	if err != nil {
		t.Fatalf("ToUpdateData thất bại: %v", err)
	}
	if got.Set["status"] != "lost" {
		t.Errorf("UpdateData theo giá trị phải được giữ nguyên, got: %+v", got.Set)
	}

	// Map thường được wrap trong $set
	got, err = ToUpdateData(map[string]interface{}{"status": "won"})
	if err != nil {
		t.Fatalf("ToUpdateData thất bại: %v", err)
	}
	if got.Set == nil || got.Set["status"] != "won" {
		t.Errorf("map thường phải được wrap trong Set, got: %+v", got)
	}
}
