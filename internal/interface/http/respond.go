package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rakafirdaus/go-blog-api/internal/application"
	"github.com/rakafirdaus/go-blog-api/internal/infrastructure/media"
	"github.com/rakafirdaus/go-blog-api/pkg/response"
)

func ok[T any](c *gin.Context, status int, data T, message string) {
	resp := response.Success(c, status, data, message, nil)
	c.JSON(resp.Status, resp)
}

func fail(c *gin.Context, status int, message string, details any) {
	resp := response.Error[any](c, status, message, details)
	c.JSON(resp.Status, resp)
}

// failFromService maps service error kinds onto HTTP statuses. Anything
// unrecognized is an internal failure: logged, answered with a generic 500.
func failFromService(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		fail(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrDuplicateEmail):
		fail(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		fail(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrForbidden):
		fail(c, http.StatusForbidden, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		fail(c, http.StatusInternalServerError, "server error", nil)
	}
}

// ingestUpload stores the uploaded file from the named multipart field and
// returns its reference path. present is false when the field carries no file.
func ingestUpload(c *gin.Context, store media.Store, field string) (ref string, present bool, err error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", false, nil
		}
		return "", false, err
	}
	f, err := fh.Open()
	if err != nil {
		return "", true, err
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	ref, err = store.Save(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		return "", true, err
	}
	return ref, true, nil
}
