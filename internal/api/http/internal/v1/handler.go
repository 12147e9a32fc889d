package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/cheechan-golf/backend/internal/service"
)

// @title Membership API
// @version 1.0
// @description Customer registration and phone verification for the resort membership system

// @BasePath /

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	user := api.Group("/user")

	h.initMemberRoutes(user)
	h.initProfileRoutes(user)
	h.initConsentRoutes(user)
	h.initOTPRoutes(user)
}
