package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("thaiphone", thaiPhoneValidator)
		if err != nil {
			log.Fatal("register thaiphone validator failed")
		}
	}
}

// Thai mobile numbers: 10 digits, 06/08/09 prefix.
var thaiMobilePattern = regexp.MustCompile(`^0[689][0-9]{8}$`)

func IsThaiMobile(phoneNumber string) bool {
	return thaiMobilePattern.MatchString(phoneNumber)
}

var thaiPhoneValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsThaiMobile(fl.Field().String())
}
