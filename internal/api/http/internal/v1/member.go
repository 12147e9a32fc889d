package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cheechan-golf/backend/internal/service"
)

func (h *Handler) initMemberRoutes(user *gin.RouterGroup) {
	user.POST("/getuser", h.getUser)
	user.GET("/all", h.getAllUsers)
	user.POST("/add-or-update", h.addOrUpdateUser)
	user.PUT("/update", h.updateUser)
	user.GET("/:id", h.getUserByID)
	user.GET("/", h.root)
}

type getUserRequest struct {
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

// @Summary Get user by mobile or email
// @Tags Users
// @Accept json
// @Produce json
// @Param input body getUserRequest true "lookup keys, email preferred"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /user/getuser [post]
func (h *Handler) getUser(c *gin.Context) {
	var req getUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	user, err := h.services.Members.Get(c.Request.Context(), req.Mobile, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			userNotFoundResponse(c)
		case errors.Is(err, service.ErrMissingLookupKey):
			c.JSON(http.StatusBadRequest, messageResponse{Success: false, Message: "Mobile or email is required"})
		default:
			serverErrorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}

// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {object} UsersResponse
// @Failure 500 {object} MessageResponse
// @Router /user/all [get]
func (h *Handler) getAllUsers(c *gin.Context) {
	users, err := h.services.Members.GetAll(c.Request.Context())
	if err != nil {
		serverErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, usersResponse{Success: true, Users: users})
}

type upsertUserRequest struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Mobile    string `json:"mobile"`
	Birthdate string `json:"birthdate"`
	Email     string `json:"email"`
}

// @Summary Create or update a user
// @Tags Users
// @Description Upsert keyed by unique mobile/email. The privilege start date is stamped on first creation and preserved on every later update.
// @Accept json
// @Produce json
// @Param input body upsertUserRequest true "user fields"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 500 {object} MessageResponse
// @Router /user/add-or-update [post]
func (h *Handler) addOrUpdateUser(c *gin.Context) {
	var req upsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	birthdate, ok := parseBirthdate(c, req.Birthdate)
	if !ok {
		return
	}

	user, created, err := h.services.Members.AddOrUpdate(c.Request.Context(), service.AddOrUpdateInput{
		Name:      req.Name,
		Surname:   req.Surname,
		Mobile:    req.Mobile,
		Email:     req.Email,
		Birthdate: birthdate,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingLookupKey) {
			c.JSON(http.StatusBadRequest, messageResponse{Success: false, Message: "Mobile or email is required"})
			return
		}
		serverErrorResponse(c, err)
		return
	}

	message := "User updated successfully"
	if created {
		message = "User added successfully"
	}

	c.JSON(http.StatusOK, userResponse{Success: true, Message: message, User: user})
}

// @Summary Update a user by mobile
// @Tags Users
// @Accept json
// @Produce json
// @Param input body upsertUserRequest true "user fields, mobile is the key"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 500 {object} MessageResponse
// @Router /user/update [put]
func (h *Handler) updateUser(c *gin.Context) {
	var req upsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	birthdate, ok := parseBirthdate(c, req.Birthdate)
	if !ok {
		return
	}

	user, err := h.services.Members.UpdateByMobile(c.Request.Context(), service.AddOrUpdateInput{
		Name:      req.Name,
		Surname:   req.Surname,
		Mobile:    req.Mobile,
		Email:     req.Email,
		Birthdate: birthdate,
	})
	if err != nil {
		// An update on an unknown mobile has no row to touch; the
		// original API surfaced that as a 500 and callers depend on it.
		c.JSON(http.StatusInternalServerError, messageResponse{Success: false, Message: "Error updating user"})
		return
	}

	c.JSON(http.StatusOK, userResponse{Success: true, Message: "User updated successfully", User: user})
}

// @Summary Get user by id
// @Tags Users
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} UserResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /user/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		userNotFoundResponse(c)
		return
	}

	user, err := h.services.Members.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			userNotFoundResponse(c)
			return
		}
		serverErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "User data fetched successfully"})
}

// parseBirthdate accepts a date-only or RFC3339 value; empty means no
// birthdate. On a malformed value it writes the 400 and reports false.
func parseBirthdate(c *gin.Context, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}

	c.JSON(http.StatusBadRequest, ValidationErrorsResponse{
		Errors: []ValidationError{{Field: "birthdate", Msg: "Invalid date format"}},
	})
	return nil, false
}
