package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pbrudny/financial-decisions-retro/services"
)

func GetMyResponsibility(c *gin.Context) {
	user, ok := currentParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	responsibility, err := services.GetMyResponsibility(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, responsibility)
}

func UpdateMyResponsibility(c *gin.Context) {
	user, ok := currentParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.UpdateResponsibilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	responsibility, err := services.UpdateMyResponsibility(id, user, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, responsibility)
}

func CompareResponsibilities(c *gin.Context) {
	user, ok := currentParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	comparison, err := services.CompareResponsibilities(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}
