package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chaos-io/peptide-catalog/auth"
	"github.com/chaos-io/peptide-catalog/catalog"
	"github.com/chaos-io/peptide-catalog/storage"
)

func init() {
	// report form/json names instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				if name := strings.Split(fld.Tag.Get(tag), ",")[0]; name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	}
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// abortWithError maps domain errors onto status codes.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		abortWithDetail(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, auth.ErrInvalidCredentials):
		abortWithDetail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, storage.ErrInvalidFilename):
		abortWithDetail(c, http.StatusBadRequest, "invalid image filename")
	case errors.Is(err, context.DeadlineExceeded):
		abortWithDetail(c, http.StatusGatewayTimeout, "request timed out")
	default:
		zap.L().Error("request failed",
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		abortWithDetail(c, http.StatusInternalServerError, "internal server error")
	}
}

func bindingDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
