package account

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mycloudhq/mycloud/internal/quota"
)

// RegisterRoutes mounts signup and login endpoints under /auth.
func RegisterRoutes(router *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", handler.register)
		authGroup.POST("/login", handler.login)
	}
}

// RegisterMeRoutes mounts the session-scoped account endpoints.
func RegisterMeRoutes(group *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}
	group.GET("/me", handler.me)
	group.POST("/me/plan", handler.changePlan)
}

type httpHandler struct {
	service *Service
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=128"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type changePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

type userResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Plan         string    `json:"plan"`
	StorageUsed  int64     `json:"storage_used"`
	StorageLimit int64     `json:"storage_limit"`
	UsedHuman    string    `json:"used_human"`
	LimitHuman   string    `json:"limit_human"`
	UsagePercent float64   `json:"usage_percent"`
	CreatedAt    time.Time `json:"created_at"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token struct {
		Value     string `json:"value"`
		ExpiresAt int64  `json:"expires_at"`
	} `json:"token"`
}

func (h *httpHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case ErrEmailExists:
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
		case ErrMissingField:
			c.JSON(http.StatusBadRequest, gin.H{"error": "please fill all fields"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		}
		return
	}

	resp, err := h.marshalAuthResponse(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *httpHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Authenticate(c.Request.Context(), LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to authenticate"})
		}
		return
	}

	resp, err := h.marshalAuthResponse(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// me returns the current user snapshot straight from the authoritative
// store, never a cached copy.
func (h *httpHandler) me(c *gin.Context) {
	userID, _, ok := RequireUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": marshalUser(user)})
}

func (h *httpHandler) changePlan(c *gin.Context) {
	userID, _, ok := RequireUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req changePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.ChangePlan(c.Request.Context(), userID, req.Plan)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": marshalUser(user)})
}

func (h *httpHandler) marshalAuthResponse(user User) (authResponse, error) {
	token, expiresAt, err := h.service.IssueSessionToken(user)
	if err != nil {
		return authResponse{}, err
	}

	resp := authResponse{User: marshalUser(user)}
	resp.Token.Value = token
	resp.Token.ExpiresAt = expiresAt.Unix()
	return resp, nil
}

func marshalUser(user User) userResponse {
	user = user.SafeUser()
	return userResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Plan:         user.Plan,
		StorageUsed:  user.StorageUsed,
		StorageLimit: user.StorageLimit,
		UsedHuman:    formatBytes(user.StorageUsed),
		LimitHuman:   formatBytes(user.StorageLimit),
		UsagePercent: quota.Percent(user.StorageUsed, user.StorageLimit),
		CreatedAt:    user.CreatedAt,
	}
}

var byteUnits = []string{"Bytes", "KB", "MB", "GB"}

func formatBytes(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp >= len(byteUnits) {
		exp = len(byteUnits) - 1
	}
	value := math.Round(float64(bytes)/math.Pow(1024, float64(exp))*100) / 100
	return fmt.Sprintf("%g %s", value, byteUnits[exp])
}
