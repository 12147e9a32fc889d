package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cheechan-golf/backend/internal/service"
)

func (h *Handler) initConsentRoutes(user *gin.RouterGroup) {
	user.POST("/saveConsent", h.saveConsent)
	user.POST("/check-consent", h.checkConsent)
}

type saveConsentRequest struct {
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Checkbox1 bool   `json:"checkbox1"`
	Checkbox2 bool   `json:"checkbox2"`
}

// @Summary Save PDPA consent
// @Tags Consent
// @Description Upserts the one consent record of the member found by email (preferred) or mobile.
// @Accept json
// @Produce json
// @Param input body saveConsentRequest true "consent flags plus a lookup key"
// @Success 201 {object} PdpaResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /user/saveConsent [post]
func (h *Handler) saveConsent(c *gin.Context) {
	var req saveConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	pdpa, err := h.services.Consents.Save(c.Request.Context(), req.Mobile, req.Email, req.Checkbox1, req.Checkbox2)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingLookupKey):
			c.JSON(http.StatusBadRequest, messageResponse{Success: false, Message: "Mobile or email is required"})
		case errors.Is(err, service.ErrMemberNotFound):
			userNotFoundResponse(c)
		default:
			c.JSON(http.StatusInternalServerError, messageResponse{Success: false, Message: "Failed to save consent. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, pdpaResponse{Success: true, Message: "Consent saved successfully!", Pdpa: pdpa})
}

type checkConsentRequest struct {
	Email string `json:"email"`
}

// @Summary Check PDPA consent
// @Tags Consent
// @Description Absence of consent is a successful state: an unknown email or a member without a consent record both answer success with a null consent, never 404.
// @Accept json
// @Produce json
// @Param input body checkConsentRequest true "member email"
// @Success 200 {object} ConsentResponse
// @Failure 500 {object} MessageResponse
// @Router /user/check-consent [post]
func (h *Handler) checkConsent(c *gin.Context) {
	var req checkConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	consent, err := h.services.Consents.Check(c.Request.Context(), req.Email)
	if err != nil {
		serverErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, consentResponse{Success: true, Consent: consent})
}
