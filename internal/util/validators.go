package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var phoneRegexp = regexp.MustCompile(`^1[3-9]\d{9}$`)

// ValidatePhone 验证中国大陆手机号
func ValidatePhone(fl validator.FieldLevel) bool {
	return phoneRegexp.MatchString(fl.Field().String())
}
