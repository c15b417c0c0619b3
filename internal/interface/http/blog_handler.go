package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rakafirdaus/go-blog-api/internal/application"
	"github.com/rakafirdaus/go-blog-api/internal/infrastructure/media"
	"github.com/rakafirdaus/go-blog-api/internal/interface/middleware"
	"github.com/rakafirdaus/go-blog-api/pkg/validation"
)

// BlogHandler serves the ownership-scoped blog CRUD and the comment/reply
// thread routes. All of its routes sit behind the bearer auth middleware.
type BlogHandler struct {
	Svc    *application.BlogService
	Media  media.Store
	Logger *logrus.Logger
}

func NewBlogHandler(svc *application.BlogService, store media.Store, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Media: store, Logger: logger}
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

func callerID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserIDKey)
}

// Create handles POST /api/blogs. Multipart body: title, description,
// content fields plus a mandatory image file.
func (h *BlogHandler) Create(c *gin.Context) {
	in := application.CreateBlogInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Content:     c.PostForm("content"),
	}

	imageRef, present, err := ingestUpload(c, h.Media, "image")
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("blog image ingest failed")
		}
		fail(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if in.Title == "" || in.Description == "" || in.Content == "" || !present {
		fail(c, http.StatusBadRequest, "all fields are required", nil)
		return
	}
	in.Image = imageRef

	blog, err := h.Svc.Create(c.Request.Context(), callerID(c), in)
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	ok(c, http.StatusCreated, blog, "blog created")
}

// List handles GET /api/blogs: the caller's own blogs, newest first.
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.Svc.ListByAuthor(c.Request.Context(), callerID(c))
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	ok(c, http.StatusOK, blogs, "blogs")
}

// Get handles GET /api/blogs/:id with authors resolved at every level.
func (h *BlogHandler) Get(c *gin.Context) {
	blog, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	ok(c, http.StatusOK, blog, "blog")
}

// Update handles PUT /api/blogs/:id. Multipart body; every field is optional
// and only supplied values replace stored ones. A replacement image file may
// ride along under the image field.
func (h *BlogHandler) Update(c *gin.Context) {
	in := application.UpdateBlogInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Content:     c.PostForm("content"),
	}

	imageRef, present, err := ingestUpload(c, h.Media, "image")
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("blog image ingest failed")
		}
		fail(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if present {
		in.Image = imageRef
	}

	blog, err := h.Svc.Update(c.Request.Context(), c.Param("id"), callerID(c), in)
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	ok(c, http.StatusOK, blog, "blog updated")
}

// Delete handles DELETE /api/blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"deleted": true}, "blog deleted")
}

// AddComment handles POST /api/blogs/:id/comments.
func (h *BlogHandler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "comment text is required", validation.ToDetails(err))
		return
	}

	comment, err := h.Svc.AddComment(c.Request.Context(), c.Param("id"), callerID(c), req.Text)
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	ok(c, http.StatusCreated, comment, "comment added")
}

// AddReply handles POST /api/blogs/:id/comments/:commentId/replies.
func (h *BlogHandler) AddReply(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "reply text is required", validation.ToDetails(err))
		return
	}

	reply, err := h.Svc.AddReply(c.Request.Context(), c.Param("id"), c.Param("commentId"), callerID(c), req.Text)
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	ok(c, http.StatusCreated, reply, "reply added")
}
