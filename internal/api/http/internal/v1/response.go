package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cheechan-golf/backend/internal/domain"
	"github.com/cheechan-golf/backend/pkg/logger"
)

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
} // @name MessageResponse

type userResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	User    *domain.Member `json:"user"`
} // @name UserResponse

type usersResponse struct {
	Success bool            `json:"success"`
	Users   []domain.Member `json:"users"`
} // @name UsersResponse

type profileResponse struct {
	Success bool            `json:"success"`
	User    *domain.Profile `json:"user"`
} // @name ProfileResponse

// consentResponse deliberately has no omitempty on Consent: absence of
// consent is a successful state and must serialize as an explicit null.
type consentResponse struct {
	Success bool            `json:"success"`
	Consent *domain.Consent `json:"consent"`
} // @name ConsentResponse

type pdpaResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Pdpa    *domain.Consent `json:"pdpa"`
} // @name PdpaResponse

type ValidationError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
} // @name ValidationError

type ValidationErrorsResponse struct {
	Errors []ValidationError `json:"errors"`
} // @name ValidationErrorsResponse

func userNotFoundResponse(c *gin.Context) {
	c.JSON(http.StatusNotFound, messageResponse{Success: false, Message: "User not found"})
}

func serverErrorResponse(c *gin.Context, err error) {
	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, messageResponse{Success: false, Message: "Server error"})
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		c.JSON(http.StatusBadRequest, ValidationErrorsResponse{Errors: out})
		return
	}

	c.JSON(http.StatusBadRequest, ValidationErrorsResponse{
		Errors: []ValidationError{{Field: "", Msg: "invalid request body"}},
	})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %v", value)
	case "max":
		return fmt.Sprintf("Maximum length is %v", value)
	case "thaiphone":
		return "Invalid Thai mobile number"
	}
	return tag
}
