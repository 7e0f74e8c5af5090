package authdto

// UserRegisterInput đầu vào đăng ký người dùng.
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập người dùng.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name string `json:"name" validate:"required,no_xss"`
}
