package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pbrudny/financial-decisions-retro/models"
	"github.com/pbrudny/financial-decisions-retro/services"
)

func currentParty(c *gin.Context) (models.UserID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(models.UserID), true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error) {
	var appErr *services.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message, "code": appErr.Code})
		return
	}
	zap.L().Error("unhandled error", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, gin.H{"field": fe.Field(), "rule": fe.Tag()})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}
