package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pbrudny/financial-decisions-retro/services"
)

func ListDecisions(c *gin.Context) {
	decisions, err := services.ListDecisions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decisions)
}

func CreateDecision(c *gin.Context) {
	user, ok := currentParty(c)
	if !ok {
		return
	}

	var input services.CreateDecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	decision, err := services.CreateDecision(input, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, decision)
}

func GetDecision(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	decision, err := services.GetDecision(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}

func ApproveDecision(c *gin.Context) {
	user, ok := currentParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	decision, err := services.ApproveDecision(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}

func CloseDecision(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	decision, err := services.CloseDecision(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}
