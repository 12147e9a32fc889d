package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cheechan-golf/backend/internal/service"
)

func (h *Handler) initProfileRoutes(user *gin.RouterGroup) {
	user.POST("/get-profile", h.getProfile)
	user.POST("/update-profile", h.updateProfile)
}

type getProfileRequest struct {
	Email string `json:"email" binding:"required"`
}

// @Summary Get profile by email
// @Tags Profile
// @Accept json
// @Produce json
// @Param input body getProfileRequest true "member email"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /user/get-profile [post]
func (h *Handler) getProfile(c *gin.Context) {
	var req getProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	profile, err := h.services.Members.Profile(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			userNotFoundResponse(c)
			return
		}
		serverErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{Success: true, User: profile})
}

type updateProfileRequest struct {
	Email              string `json:"email" binding:"required"`
	Fullname           string `json:"fullname"`
	PhoneNumber        string `json:"phonenumber"`
	Birthdate          string `json:"birthdate"`
	StartPrivilegeDate string `json:"startPrivilegeDate"`
}

// @Summary Update profile by email
// @Tags Profile
// @Description Splits the submitted fullname into name and surname (first token / remainder) and maps phonenumber onto the stored mobile.
// @Accept json
// @Produce json
// @Param input body updateProfileRequest true "profile fields"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /user/update-profile [post]
func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	birthdate, ok := parseBirthdate(c, req.Birthdate)
	if !ok {
		return
	}

	var startPrivilegeDate *time.Time
	if req.StartPrivilegeDate != "" {
		for _, layout := range []string{"2006-01-02", time.RFC3339} {
			if t, err := time.Parse(layout, req.StartPrivilegeDate); err == nil {
				startPrivilegeDate = &t
				break
			}
		}
		if startPrivilegeDate == nil {
			c.JSON(http.StatusBadRequest, ValidationErrorsResponse{
				Errors: []ValidationError{{Field: "startPrivilegeDate", Msg: "Invalid date format"}},
			})
			return
		}
	}

	user, err := h.services.Members.UpdateProfile(c.Request.Context(), service.ProfileInput{
		Email:              req.Email,
		Fullname:           req.Fullname,
		PhoneNumber:        req.PhoneNumber,
		Birthdate:          birthdate,
		StartPrivilegeDate: startPrivilegeDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			userNotFoundResponse(c)
			return
		}
		serverErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{Success: true, Message: "User profile updated successfully", User: user})
}
