package auth

import (
	"fmt"
	"zenchat/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type UpdateProfileRequest struct {
	UserName string `form:"userName" validate:"omitempty,min=1,max=50"`
	About    string `form:"about" validate:"omitempty,max=140"`
	Agreed   *bool  `form:"agreed"`
}

// Validate checks a request struct, failures wrap ErrInvalidRequest.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return nil
}
