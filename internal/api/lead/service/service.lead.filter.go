// Package leadsvc - Service lead (leads).
package leadsvc

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"lead_center/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterCondition là một điều kiện lọc trên một trường.
type FilterCondition struct {
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// FilterDescriptor map tên trường -> điều kiện lọc, client gửi lên dưới dạng JSON
// trong query param "filters".
type FilterDescriptor map[string]FilterCondition

// Các operator được hỗ trợ. Operator ngoài danh sách này bị từ chối.
const (
	OpEquals   = "equals"
	OpContains = "contains"
	OpIn       = "in"
	OpGt       = "gt"
	OpLt       = "lt"
	OpBetween  = "between"
	OpOn       = "on"
	OpBefore   = "before"
	OpAfter    = "after"
)

// fieldKind phân loại trường để quyết định operator và kiểu giá trị hợp lệ.
type fieldKind int

const (
	fieldString fieldKind = iota
	fieldNumber
	fieldDate
	fieldBool
	fieldEnum
)

// leadFilterFields là danh sách đóng các trường được phép lọc.
// Trường ngoài danh sách (kể cả trường có thật trong document) bị từ chối.
var leadFilterFields = map[string]fieldKind{
	"first_name":       fieldString,
	"last_name":        fieldString,
	"email":            fieldString,
	"phone":            fieldString,
	"company":          fieldString,
	"city":             fieldString,
	"state":            fieldString,
	"source":           fieldEnum,
	"status":           fieldEnum,
	"score":            fieldNumber,
	"lead_value":       fieldNumber,
	"is_qualified":     fieldBool,
	"last_activity_at": fieldDate,
	"created_at":       fieldDate,
	"updated_at":       fieldDate,
}

// BuildFilterQuery biên dịch FilterDescriptor thành filter MongoDB.
// Điều kiện owner LUÔN do hàm này tự thêm vào; điều kiện "owner" do client gửi lên
// bị loại bỏ để client không thể truy vấn dữ liệu của người khác.
// Lỗi đầu tiên gặp phải sẽ dừng biên dịch ngay (fail-fast).
func BuildFilterQuery(descriptor FilterDescriptor, owner primitive.ObjectID) (bson.M, error) {
	query := bson.M{}

	for field, cond := range descriptor {
		// Client không được tự điều kiện hóa owner
		if field == "owner" {
			continue
		}

		kind, ok := leadFilterFields[field]
		if !ok {
			return nil, common.NewFilterError(field, "trường không được hỗ trợ lọc")
		}

		clause, err := compileCondition(field, kind, cond)
		if err != nil {
			return nil, err
		}
		query[field] = clause
	}

	query["owner"] = owner
	return query, nil
}

// compileCondition biên dịch một điều kiện lọc thành mệnh đề MongoDB.
func compileCondition(field string, kind fieldKind, cond FilterCondition) (interface{}, error) {
	switch cond.Operator {
	case OpEquals:
		return compileScalar(field, kind, cond.Value)

	case OpContains:
		if kind != fieldString && kind != fieldEnum {
			return nil, common.NewFilterError(field, "operator 'contains' chỉ áp dụng cho trường chuỗi")
		}
		s, ok := cond.Value.(string)
		if !ok {
			return nil, common.NewFilterError(field, "giá trị 'contains' phải là chuỗi")
		}
		// So khớp không phân biệt hoa thường, escape ký tự đặc biệt của regex
		return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}, nil

	case OpIn:
		values, ok := cond.Value.([]interface{})
		if !ok {
			return nil, common.NewFilterError(field, "giá trị 'in' phải là mảng")
		}
		if len(values) == 0 {
			return nil, common.NewFilterError(field, "mảng 'in' không được rỗng")
		}
		compiled := make([]interface{}, 0, len(values))
		for _, v := range values {
			cv, err := compileScalar(field, kind, v)
			if err != nil {
				return nil, err
			}
			compiled = append(compiled, cv)
		}
		return bson.M{"$in": compiled}, nil

	case OpGt, OpLt:
		if kind != fieldNumber && kind != fieldDate {
			return nil, common.NewFilterError(field, fmt.Sprintf("operator '%s' chỉ áp dụng cho trường số hoặc ngày", cond.Operator))
		}
		v, err := compileScalar(field, kind, cond.Value)
		if err != nil {
			return nil, err
		}
		if cond.Operator == OpGt {
			return bson.M{"$gt": v}, nil
		}
		return bson.M{"$lt": v}, nil

	case OpBetween:
		if kind != fieldNumber && kind != fieldDate {
			return nil, common.NewFilterError(field, "operator 'between' chỉ áp dụng cho trường số hoặc ngày")
		}
		values, ok := cond.Value.([]interface{})
		if !ok || len(values) != 2 {
			return nil, common.NewFilterError(field, "giá trị 'between' phải là mảng đúng 2 phần tử [thấp, cao]")
		}
		lo, err := compileScalar(field, kind, values[0])
		if err != nil {
			return nil, err
		}
		hi, err := compileScalar(field, kind, values[1])
		if err != nil {
			return nil, err
		}
		// Biên bao gồm cả hai đầu
		return bson.M{"$gte": lo, "$lte": hi}, nil

	case OpOn:
		if kind != fieldDate {
			return nil, common.NewFilterError(field, "operator 'on' chỉ áp dụng cho trường ngày")
		}
		s, ok := cond.Value.(string)
		if !ok {
			return nil, common.NewFilterError(field, "giá trị 'on' phải là chuỗi ngày")
		}
		t, err := parseFilterDate(s)
		if err != nil {
			return nil, common.NewFilterError(field, "không đọc được ngày: "+s)
		}
		// Cửa sổ một ngày theo UTC, nửa mở [00:00, 00:00 hôm sau)
		dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		dayEnd := dayStart.Add(24 * time.Hour)
		return bson.M{"$gte": dayStart.UnixMilli(), "$lt": dayEnd.UnixMilli()}, nil

	case OpBefore, OpAfter:
		if kind != fieldDate {
			return nil, common.NewFilterError(field, fmt.Sprintf("operator '%s' chỉ áp dụng cho trường ngày", cond.Operator))
		}
		v, err := compileScalar(field, kind, cond.Value)
		if err != nil {
			return nil, err
		}
		if cond.Operator == OpBefore {
			return bson.M{"$lt": v}, nil
		}
		return bson.M{"$gt": v}, nil

	default:
		return nil, common.NewFilterError(field, fmt.Sprintf("operator '%s' không được hỗ trợ", cond.Operator))
	}
}

// compileScalar validate và chuyển một giá trị đơn theo kiểu trường.
// Trường ngày trả về Unix ms để so sánh với giá trị lưu trong document.
func compileScalar(field string, kind fieldKind, value interface{}) (interface{}, error) {
	switch kind {
	case fieldString, fieldEnum:
		s, ok := value.(string)
		if !ok {
			return nil, common.NewFilterError(field, "giá trị phải là chuỗi")
		}
		return s, nil

	case fieldNumber:
		n, ok := toFloat64(value)
		if !ok {
			return nil, common.NewFilterError(field, "giá trị phải là số")
		}
		return n, nil

	case fieldBool:
		b, ok := value.(bool)
		if !ok {
			return nil, common.NewFilterError(field, "giá trị phải là true/false")
		}
		return b, nil

	case fieldDate:
		s, ok := value.(string)
		if !ok {
			return nil, common.NewFilterError(field, "giá trị ngày phải là chuỗi")
		}
		t, err := parseFilterDate(s)
		if err != nil {
			return nil, common.NewFilterError(field, "không đọc được ngày: "+s)
		}
		return t.UnixMilli(), nil
	}

	return nil, common.NewFilterError(field, "kiểu trường không được hỗ trợ")
}

// parseFilterDate đọc chuỗi ngày: thử "2006-01-02" trước, sau đó RFC3339. Luôn pin UTC.
func parseFilterDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// toFloat64 chuyển giá trị số từ JSON decode (float64 hoặc json.Number) về float64.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
