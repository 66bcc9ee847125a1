package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pbrudny/financial-decisions-retro/services"
)

func ListMetaConclusions(c *gin.Context) {
	conclusions, err := services.ListMetaConclusions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conclusions)
}

func CreateMetaConclusion(c *gin.Context) {
	var input services.CreateMetaConclusionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	conclusion, err := services.CreateMetaConclusion(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conclusion)
}

func UpdateMetaConclusion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.UpdateMetaConclusionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	conclusion, err := services.UpdateMetaConclusion(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conclusion)
}

func DeleteMetaConclusion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteMetaConclusion(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
