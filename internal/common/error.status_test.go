// Package common - Test chuyển đổi lỗi MongoDB và phân loại lỗi.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	writeErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{
			{Code: 11000, Message: "E11000 duplicate key error collection: leads index: email_unique"},
		},
	}
	converted := ConvertMongoError(writeErr)
	if !errors.Is(converted, ErrMongoDuplicate) {
		t.Errorf("lỗi 11000 phải được chuyển thành ErrMongoDuplicate, got: %v", converted)
	}
}

func TestConvertMongoError_GiuNguyenErrNotFound(t *testing.T) {
	converted := ConvertMongoError(ErrNotFound)
	if !errors.Is(converted, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, got: %v", converted)
	}
}

func TestConvertMongoError_NilTraVeNil(t *testing.T) {
	if ConvertMongoError(nil) != nil {
		t.Error("nil phải trả về nil")
	}
}

func TestIsTransientMongoError(t *testing.T) {
	for _, err := range []error{ErrMongoNetwork, ErrMongoTimeout, ErrMongoConnection} {
		if !IsTransientMongoError(err) {
			t.Errorf("%v phải được coi là lỗi tạm thời", err)
		}
	}
	for _, err := range []error{ErrMongoDuplicate, ErrNotFound, ErrDuplicateEmail, nil} {
		if IsTransientMongoError(err) {
			t.Errorf("%v không được coi là lỗi tạm thời", err)
		}
	}
}

func TestNewFilterError(t *testing.T) {
	err := NewFilterError("created_at", "không đọc được ngày")
	if !IsFilterError(err) {
		t.Fatal("NewFilterError phải được IsFilterError nhận diện")
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("lỗi phải là *Error")
	}
	if appErr.StatusCode != StatusBadRequest {
		t.Errorf("filter error phải có status 400, got: %d", appErr.StatusCode)
	}
	details, ok := appErr.Details.(map[string]string)
	if !ok {
		t.Fatalf("details phải là map[string]string, got: %T", appErr.Details)
	}
	if details["field"] != "created_at" {
		t.Errorf("details phải chứa tên trường, got: %v", details)
	}
}

func TestIsFilterError_LoiKhac(t *testing.T) {
	if IsFilterError(ErrInvalidInput) {
		t.Error("lỗi validation thường không phải filter error")
	}
	if IsFilterError(errors.New("lỗi bất kỳ")) {
		t.Error("lỗi thường không phải filter error")
	}
}

func TestErrDuplicateEmail_Status(t *testing.T) {
	var dupErr *Error
	if !errors.As(ErrDuplicateEmail, &dupErr) {
		t.Fatal("ErrDuplicateEmail phải là *Error")
	}
	if dupErr.StatusCode != StatusBadRequest {
		t.Errorf("ErrDuplicateEmail phải trả về 400, got: %d", dupErr.StatusCode)
	}
	var notFoundErr *Error
	if !errors.As(ErrNotFound, &notFoundErr) {
		t.Fatal("ErrNotFound phải là *Error")
	}
	if notFoundErr.StatusCode != StatusNotFound {
		t.Errorf("ErrNotFound phải trả về 404, got: %d", notFoundErr.StatusCode)
	}
}
