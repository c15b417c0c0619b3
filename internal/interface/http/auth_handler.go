package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rakafirdaus/go-blog-api/internal/application"
	"github.com/rakafirdaus/go-blog-api/internal/infrastructure/media"
	"github.com/rakafirdaus/go-blog-api/pkg/validation"
)

// AuthHandler serves the two unauthenticated entry routes: register and login.
type AuthHandler struct {
	Svc    *application.AuthService
	Media  media.Store
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, store media.Store, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Media: store, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/users/register. The body is multipart: email and
// password fields plus a mandatory profileImage file, which is ingested before
// the user is created.
func (h *AuthHandler) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	imageRef, present, err := ingestUpload(c, h.Media, "profileImage")
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("profile image ingest failed")
		}
		fail(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if email == "" || password == "" || !present {
		fail(c, http.StatusBadRequest, "all fields are required", nil)
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), email, password, imageRef)
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	ok(c, http.StatusCreated, res, "registered")
}

// Login handles POST /api/users/login with a JSON body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	ok(c, http.StatusOK, res, "login successful")
}
