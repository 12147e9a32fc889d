package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cheechan-golf/backend/internal/rate"
	"github.com/cheechan-golf/backend/internal/sms"
)

func (h *Handler) initOTPRoutes(user *gin.RouterGroup) {
	user.POST("/request-otp", h.requestOTP)
	user.POST("/verify-otp", h.verifyOTP)
}

type requestOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,thaiphone"`
}

// @Summary Request an OTP SMS
// @Tags OTP
// @Description Validates the Thai mobile format, then relays the provider response verbatim, session token included. No OTP state is kept server-side.
// @Accept json
// @Produce json
// @Param input body requestOTPRequest true "phone number"
// @Success 200 {object} object "provider response, verbatim"
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 429 {object} MessageResponse
// @Failure 500 {object} object "provider error, verbatim"
// @Router /user/request-otp [post]
func (h *Handler) requestOTP(c *gin.Context) {
	var req requestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.OTP.Request(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, rate.ErrTooSoon) || errors.Is(err, rate.ErrBlocked) {
			c.JSON(http.StatusTooManyRequests, messageResponse{Success: false, Message: err.Error()})
			return
		}
		providerErrorResponse(c, err)
		return
	}

	c.Data(result.StatusCode, "application/json", result.Body)
}

type verifyOTPRequest struct {
	Token   string `json:"token" binding:"required"`
	OTPCode string `json:"otp_code" binding:"required"`
}

// @Summary Verify an OTP code
// @Tags OTP
// @Description Relays the (token, otp_code) pair to the provider and returns its answer verbatim.
// @Accept json
// @Produce json
// @Param input body verifyOTPRequest true "session token and code"
// @Success 200 {object} object "provider response, verbatim"
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 500 {object} object "provider error, verbatim"
// @Router /user/verify-otp [post]
func (h *Handler) verifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.OTP.Verify(c.Request.Context(), req.Token, req.OTPCode)
	if err != nil {
		providerErrorResponse(c, err)
		return
	}

	c.Data(result.StatusCode, "application/json", result.Body)
}

func providerErrorResponse(c *gin.Context, err error) {
	var apiErr *sms.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"errors": apiErr.Body})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"errors": err.Error()})
}
