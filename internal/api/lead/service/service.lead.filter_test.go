// Package leadsvc - Test biên dịch FilterDescriptor sang filter MongoDB.
package leadsvc

import (
	"errors"
	"testing"
	"time"

	"lead_center/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilterQuery_LuonInjectOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	query, err := BuildFilterQuery(nil, owner)
	if err != nil {
		t.Fatalf("BuildFilterQuery lỗi với descriptor rỗng: %v", err)
	}
	if got, ok := query["owner"]; !ok || got != owner {
		t.Errorf("filter thiếu điều kiện owner, got: %v", query)
	}
}

func TestBuildFilterQuery_LoaiBoOwnerCuaClient(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"owner": {Operator: OpEquals, Value: other.Hex()},
	}
	query, err := BuildFilterQuery(descriptor, owner)
	if err != nil {
		t.Fatalf("BuildFilterQuery lỗi: %v", err)
	}
	if query["owner"] != owner {
		t.Errorf("điều kiện owner của client phải bị loại bỏ, owner thật phải được giữ; got: %v", query["owner"])
	}
}

func TestBuildFilterQuery_Equals(t *testing.T) {
	owner := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"status":       {Operator: OpEquals, Value: "new"},
		"is_qualified": {Operator: OpEquals, Value: true},
		"score":        {Operator: OpEquals, Value: float64(50)},
	}
	query, err := BuildFilterQuery(descriptor, owner)
	if err != nil {
		t.Fatalf("BuildFilterQuery lỗi: %v", err)
	}
	if query["status"] != "new" {
		t.Errorf("status equals sai: %v", query["status"])
	}
	if query["is_qualified"] != true {
		t.Errorf("is_qualified equals sai: %v", query["is_qualified"])
	}
	if query["score"] != float64(50) {
		t.Errorf("score equals sai: %v", query["score"])
	}
}

func TestBuildFilterQuery_Contains_RegexKhongPhanBietHoaThuong(t *testing.T) {
	owner := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"company": {Operator: OpContains, Value: "acme (vn)"},
	}
	query, err := BuildFilterQuery(descriptor, owner)
	if err != nil {
		t.Fatalf("BuildFilterQuery lỗi: %v", err)
	}
	clause, ok := query["company"].(bson.M)
	if !ok {
		t.Fatalf("company phải là bson.M, got: %T", query["company"])
	}
	if clause["$options"] != "i" {
		t.Errorf("contains phải không phân biệt hoa thường, $options: %v", clause["$options"])
	}
	// Ký tự đặc biệt của regex phải được escape
	if clause["$regex"] != `acme \(vn\)` {
		t.Errorf("regex chưa escape ký tự đặc biệt: %v", clause["$regex"])
	}
}

func TestBuildFilterQuery_In(t *testing.T) {
	owner := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"source": {Operator: OpIn, Value: []interface{}{"website", "referral"}},
	}
	query, err := BuildFilterQuery(descriptor, owner)
	if err != nil {
		t.Fatalf("BuildFilterQuery lỗi: %v", err)
	}
	clause, ok := query["source"].(bson.M)
	if !ok {
		t.Fatalf("source phải là bson.M, got: %T", query["source"])
	}
	in, ok := clause["$in"].([]interface{})
	if !ok || len(in) != 2 {
		t.Errorf("$in phải có 2 phần tử: %v", clause["$in"])
	}
}

func TestBuildFilterQuery_In_MangRongBiTuChoi(t *testing.T) {
	owner := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"source": {Operator: OpIn, Value: []interface{}{}},
	}
	_, err := BuildFilterQuery(descriptor, owner)
	if err == nil || !common.IsFilterError(err) {
		t.Errorf("mảng in rỗng phải trả về filter error, got: %v", err)
	}
}

func TestBuildFilterQuery_GtLt(t *testing.T) {
	owner := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"score":      {Operator: OpGt, Value: float64(30)},
		"lead_value": {Operator: OpLt, Value: float64(1000)},
	}
	query, err := BuildFilterQuery(descriptor, owner)
	if err != nil {
		t.Fatalf("BuildFilterQuery lỗi: %v", err)
	}
	if query["score"].(bson.M)["$gt"] != float64(30) {
		t.Errorf("gt sai: %v", query["score"])
	}
	if query["lead_value"].(bson.M)["$lt"] != float64(1000) {
		t.Errorf("lt sai: %v", query["lead_value"])
	}
}

func TestBuildFilterQuery_Between_BaoGomHaiDau(t *testing.T) {
	owner := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"score": {Operator: OpBetween, Value: []interface{}{float64(10), float64(90)}},
	}
	query, err := BuildFilterQuery(descriptor, owner)
	if err != nil {
		t.Fatalf("BuildFilterQuery lỗi: %v", err)
	}
	clause := query["score"].(bson.M)
	if clause["$gte"] != float64(10) || clause["$lte"] != float64(90) {
		t.Errorf("between phải dùng $gte/$lte (bao gồm hai đầu): %v", clause)
	}
}

func TestBuildFilterQuery_Between_SaiSoPhanTu(t *testing.T) {
	owner := primitive.NewObjectID()
	for _, value := range []interface{}{
		[]interface{}{float64(10)},
		[]interface{}{float64(10), float64(20), float64(30)},
		float64(10),
	} {
		descriptor := FilterDescriptor{
			"score": {Operator: OpBetween, Value: value},
		}
		_, err := BuildFilterQuery(descriptor, owner)
		if err == nil || !common.IsFilterError(err) {
			t.Errorf("between với giá trị %v phải trả về filter error, got: %v", value, err)
		}
	}
}

func TestBuildFilterQuery_On_CuaSoMotNgayUTC(t *testing.T) {
	owner := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"created_at": {Operator: OpOn, Value: "2026-08-15"},
	}
	query, err := BuildFilterQuery(descriptor, owner)
	if err != nil {
		t.Fatalf("BuildFilterQuery lỗi: %v", err)
	}
	clause := query["created_at"].(bson.M)
	dayStart := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	dayEnd := time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC).UnixMilli()
	if clause["$gte"] != dayStart {
		t.Errorf("đầu ngày sai: got %v, want %v", clause["$gte"], dayStart)
	}
	if clause["$lt"] != dayEnd {
		t.Errorf("cửa sổ phải nửa mở ($lt đầu ngày hôm sau): got %v, want %v", clause["$lt"], dayEnd)
	}
	if _, ok := clause["$lte"]; ok {
		t.Error("on không được dùng $lte")
	}
}

func TestBuildFilterQuery_BeforeAfter(t *testing.T) {
	owner := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"created_at":       {Operator: OpBefore, Value: "2026-01-01"},
		"last_activity_at": {Operator: OpAfter, Value: "2025-06-30T12:00:00Z"},
	}
	query, err := BuildFilterQuery(descriptor, owner)
	if err != nil {
		t.Fatalf("BuildFilterQuery lỗi: %v", err)
	}
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if query["created_at"].(bson.M)["$lt"] != want {
		t.Errorf("before sai: %v", query["created_at"])
	}
	wantAfter := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC).UnixMilli()
	if query["last_activity_at"].(bson.M)["$gt"] != wantAfter {
		t.Errorf("after sai: %v", query["last_activity_at"])
	}
}

func TestBuildFilterQuery_NgayKhongDocDuoc(t *testing.T) {
	owner := primitive.NewObjectID()
	for _, bad := range []interface{}{"15/08/2026", "not-a-date", float64(1234)} {
		descriptor := FilterDescriptor{
			"created_at": {Operator: OpOn, Value: bad},
		}
		_, err := BuildFilterQuery(descriptor, owner)
		if err == nil || !common.IsFilterError(err) {
			t.Errorf("giá trị ngày %v phải trả về filter error, got: %v", bad, err)
		}
	}
}

func TestBuildFilterQuery_TruongKhongHoTro(t *testing.T) {
	owner := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"secret_field": {Operator: OpEquals, Value: "x"},
	}
	_, err := BuildFilterQuery(descriptor, owner)
	if err == nil || !common.IsFilterError(err) {
		t.Fatalf("trường ngoài danh sách phải trả về filter error, got: %v", err)
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatal("lỗi phải là *common.Error")
	}
	details, ok := customErr.Details.(map[string]string)
	if !ok || details["field"] != "secret_field" {
		t.Errorf("lỗi phải nêu tên trường, details: %v", customErr.Details)
	}
}

func TestBuildFilterQuery_OperatorKhongHoTro(t *testing.T) {
	owner := primitive.NewObjectID()
	descriptor := FilterDescriptor{
		"status": {Operator: "regex", Value: ".*"},
	}
	_, err := BuildFilterQuery(descriptor, owner)
	if err == nil || !common.IsFilterError(err) {
		t.Errorf("operator ngoài danh sách phải trả về filter error, got: %v", err)
	}
}

func TestBuildFilterQuery_SaiKieuGiaTri(t *testing.T) {
	owner := primitive.NewObjectID()
	cases := []FilterDescriptor{
		{"score": {Operator: OpEquals, Value: "năm mươi"}},
		{"status": {Operator: OpEquals, Value: float64(1)}},
		{"is_qualified": {Operator: OpEquals, Value: "true"}},
		{"first_name": {Operator: OpContains, Value: float64(5)}},
		{"is_qualified": {Operator: OpGt, Value: true}},
		{"first_name": {Operator: OpOn, Value: "2026-01-01"}},
	}
	for i, descriptor := range cases {
		_, err := BuildFilterQuery(descriptor, owner)
		if err == nil || !common.IsFilterError(err) {
			t.Errorf("case %d: kiểu giá trị sai phải trả về filter error, got: %v", i, err)
		}
	}
}

func TestParseFilterDate_UuTienDinhDangNgay(t *testing.T) {
	got, err := parseFilterDate("2026-08-15")
	if err != nil {
		t.Fatalf("parseFilterDate lỗi: %v", err)
	}
	want := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ngày phải pin UTC đầu ngày: got %v, want %v", got, want)
	}

	got, err = parseFilterDate("2026-08-15T07:30:00+07:00")
	if err != nil {
		t.Fatalf("parseFilterDate RFC3339 lỗi: %v", err)
	}
	if got.Location() != time.UTC {
		t.Errorf("RFC3339 phải được chuyển về UTC, got location: %v", got.Location())
	}
}
