package utility

import (
	"errors"
	"testing"

	"lead_center/internal/common"
)

func TestCreateToken_ParseToken_Roundtrip(t *testing.T) {
	secret := "test-secret-key"
	userID := "64f1a2b3c4d5e6f7a8b9c0d1"

	result, err := CreateToken(secret, userID, "1756500000", "42")
	if err != nil {
		t.Fatalf("tạo token thất bại: %v", err)
	}
	tokenString := result["token"]
	if tokenString == "" {
		t.Fatal("token không được rỗng")
	}

	parsedUserID, err := ParseToken(secret, tokenString)
	if err != nil {
		t.Fatalf("parse token thất bại: %v", err)
	}
	if parsedUserID != userID {
		t.Errorf("userID không khớp, expected: %s, got: %s", userID, parsedUserID)
	}
}

func TestParseToken_SaiSecret(t *testing.T) {
	result, err := CreateToken("secret-a", "64f1a2b3c4d5e6f7a8b9c0d1", "1756500000", "42")
	if err != nil {
		t.Fatalf("tạo token thất bại: %v", err)
	}

	_, err = ParseToken("secret-b", result["token"])
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("token ký bằng secret khác phải bị từ chối, got: %v", err)
	}
}

func TestParseToken_ChuoiRac(t *testing.T) {
	for _, tokenString := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ParseToken("secret", tokenString); !errors.Is(err, common.ErrTokenInvalid) {
			t.Errorf("chuỗi '%s' phải bị từ chối với ErrTokenInvalid, got: %v", tokenString, err)
		}
	}
}
