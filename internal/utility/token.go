package utility

import (
	"fmt"

	"lead_center/internal/common"

	"github.com/dgrijalva/jwt-go"
)

// jwtClaims chứa data được mã hóa trong JWT token.
type jwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token từ secret và thông tin người dùng.
// Trả về map có key "token" chứa chuỗi token đã ký (HS256).
func CreateToken(secret string, userID string, time string, randomNumber string) (map[string]string, error) {
	claims := jwtClaims{
		UserID:       userID,
		Time:         time,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeAuthToken,
			"Không thể tạo token",
			common.StatusInternalServerError,
			err,
		)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken xác thực chữ ký và giải mã JWT token, trả về userID được mã hóa trong token.
func ParseToken(secret string, tokenString string) (string, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrTokenInvalid
	}

	return claims.UserID, nil
}
