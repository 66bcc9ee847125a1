package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pbrudny/financial-decisions-retro/services"
)

func GetSharedConclusion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	conclusion, err := services.GetSharedConclusion(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conclusion)
}

func UpdateSharedConclusion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.UpdateConclusionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	conclusion, err := services.UpdateSharedConclusion(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conclusion)
}
