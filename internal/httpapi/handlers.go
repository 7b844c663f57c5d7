package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartattend/internal/attendance"
	"smartattend/internal/auth"
	"smartattend/internal/user"
)

// UserService is the account surface the handlers need.
type UserService interface {
	Register(ctx context.Context, name, email, password string, role user.Role, enroll user.Enrollment) (*user.User, error)
	Login(ctx context.Context, email, password string) (*user.User, error)
}

// AttendanceService is the attendance surface the handlers need.
type AttendanceService interface {
	Submit(ctx context.Context, userID string, method attendance.Method, biometricData string, loc *attendance.Location) error
	ListForUser(ctx context.Context, targetID string) ([]attendance.Record, error)
	ListAll(ctx context.Context) ([]attendance.Record, error)
}

// Handler holds the HTTP handlers for the service.
type Handler struct {
	users      UserService
	attendance AttendanceService

	jwtIssuer     string
	jwtSigningKey string
	tokenTTL      time.Duration
}

// NewHandler creates the handler set.
func NewHandler(users UserService, att AttendanceService, jwtIssuer, jwtSigningKey string, tokenTTL time.Duration) *Handler {
	return &Handler{
		users:         users,
		attendance:    att,
		jwtIssuer:     jwtIssuer,
		jwtSigningKey: jwtSigningKey,
		tokenTTL:      tokenTTL,
	}
}

type registerRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	Role            string `json:"role"`
	FaceData        string `json:"faceData"`
	VoiceData       string `json:"voiceData"`
	FingerprintData string `json:"fingerprintData"`
}

// Register creates an account. No token is issued at registration.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password, user.Role(req.Role), user.Enrollment{
		Face:        req.FaceData,
		Voice:       req.VoiceData,
		Fingerprint: req.FingerprintData,
	})
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrMissingFields), errors.Is(err, user.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "user registered successfully"})
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns a session token plus the public
// user projection.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	token, _, err := auth.Issue(u.ID, string(u.Role), h.jwtIssuer, h.jwtSigningKey, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": u.Public()})
}

type locationRequest struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address *string  `json:"address"`
}

type submitRequest struct {
	Method        string           `json:"method" binding:"required"`
	BiometricData string           `json:"biometricData"`
	Location      *locationRequest `json:"location"`
}

// Submit records an attendance event for the authenticated caller.
func (h *Handler) Submit(c *gin.Context) {
	claims, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var loc *attendance.Location
	if req.Location != nil {
		if req.Location.Lat == nil || req.Location.Lng == nil || req.Location.Address == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "location requires lat, lng and address"})
			return
		}
		loc = &attendance.Location{Lat: *req.Location.Lat, Lng: *req.Location.Lng, Address: *req.Location.Address}
	}

	method := attendance.Method(req.Method)
	err := h.attendance.Submit(c.Request.Context(), claims.UserID, method, req.BiometricData, loc)
	switch {
	case errors.Is(err, user.ErrNotFound):
		submissionsTotal.WithLabelValues(req.Method, "rejected").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, attendance.ErrVerificationFailed), errors.Is(err, attendance.ErrInvalidMethod):
		submissionsTotal.WithLabelValues(req.Method, "rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		submissionsTotal.WithLabelValues(req.Method, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "attendance submission failed"})
	default:
		submissionsTotal.WithLabelValues(req.Method, "accepted").Inc()
		c.JSON(http.StatusOK, gin.H{"message": "attendance submitted successfully"})
	}
}

// ListUser returns the attendance history of the user named in the path.
// Any authenticated caller may query any id.
func (h *Handler) ListUser(c *gin.Context) {
	records, err := h.attendance.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []attendance.Record{}
	}
	c.JSON(http.StatusOK, records)
}

// ListAll returns every record. The supervisor gate runs in middleware.
func (h *Handler) ListAll(c *gin.Context) {
	records, err := h.attendance.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []attendance.Record{}
	}
	c.JSON(http.StatusOK, records)
}
