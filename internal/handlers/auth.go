package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"telehealth-server/internal/models"
	"telehealth-server/internal/utils"
)

// DefaultUserName is the name given to a signed-in user nobody has
// registered under the submitted email.
const DefaultUserName = "Jane Doe"

// AuthHandler handles sign-in, sign-up and profile requests. No password
// is checked or stored.
type AuthHandler struct {
	Now func() time.Time
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{Now: time.Now}
}

// LoginRequest represents the request body for sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"notblank"`
	Password string `json:"password" binding:"notblank"`
}

// RegisterRequest represents the request body for sign-up.
type RegisterRequest struct {
	Name     string `json:"name" binding:"notblank"`
	Email    string `json:"email" binding:"notblank"`
	Password string `json:"password" binding:"notblank"`
}

func (h *AuthHandler) newUser(name, email string) *models.User {
	return &models.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Profile: &models.UserProfile{
			JoinedDate: h.Now().UTC().Format(time.RFC3339),
		},
	}
}

// Login signs the session in. Any credentials succeed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	email := strings.TrimSpace(req.Email)
	user := sess.Store.User()
	if user == nil || !strings.EqualFold(user.Email, email) {
		user = h.newUser(DefaultUserName, email)
	}
	sess.Store.SetUser(c.Request.Context(), user)
	utils.Success(c, "Login successful", user)
}

// Register signs the session in as a new user.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	user := h.newUser(strings.TrimSpace(req.Name), strings.TrimSpace(req.Email))
	sess.Store.SetUser(c.Request.Context(), user)
	utils.Created(c, "User registered successfully", user)
}

// Logout signs the session out.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Store.SetUser(c.Request.Context(), nil)
	utils.Success(c, "Logout successful", nil)
}

// GetProfile returns the signed-in user.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	_, user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.Success(c, "Profile retrieved successfully", user)
}

// UpdateProfileRequest holds the fields to change; omitted fields stay.
type UpdateProfileRequest struct {
	Name    *string `json:"name" binding:"omitempty,notblank"`
	Email   *string `json:"email" binding:"omitempty,notblank"`
	DOB     *string `json:"dob"`
	Gender  *string `json:"gender"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Bio     *string `json:"bio"`
}

// UpdateProfile merges the request into the signed-in user and persists it.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	sess, user, ok := currentUser(c)
	if !ok {
		return
	}

	setIfPresent(&user.Name, req.Name)
	setIfPresent(&user.Email, req.Email)
	if user.Profile == nil {
		user.Profile = &models.UserProfile{}
	}
	p := user.Profile
	setIfPresent(&p.DOB, req.DOB)
	setIfPresent(&p.Gender, req.Gender)
	setIfPresent(&p.Phone, req.Phone)
	setIfPresent(&p.Address, req.Address)
	setIfPresent(&p.Bio, req.Bio)

	sess.Store.SetUser(c.Request.Context(), user)
	utils.Success(c, "Profile updated successfully", user)
}

func setIfPresent(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}
