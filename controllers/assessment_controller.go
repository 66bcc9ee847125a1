package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pbrudny/financial-decisions-retro/services"
)

func GetMyAssessment(c *gin.Context) {
	user, ok := currentParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	assessment, err := services.GetMyAssessment(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

func UpdateMyAssessment(c *gin.Context) {
	user, ok := currentParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.UpdateAssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	assessment, err := services.UpdateMyAssessment(id, user, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

func LockMyAssessment(c *gin.Context) {
	user, ok := currentParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.LockMyAssessment(id, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locked": true})
}

func GetAssessmentStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	status, err := services.GetAssessmentStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func CompareAssessments(c *gin.Context) {
	user, ok := currentParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	comparison, err := services.CompareAssessments(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}
