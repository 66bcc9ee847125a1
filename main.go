package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pbrudny/financial-decisions-retro/database"
	"github.com/pbrudny/financial-decisions-retro/middleware"
	"github.com/pbrudny/financial-decisions-retro/routes"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := database.Connect(); err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	if err := database.Migrate(database.DB); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	r.Use(cors.Default())

	routes.AuthRoutes(r)
	routes.DecisionRoutes(r)
	routes.MetaConclusionRoutes(r)
	routes.StatusRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	logger.Info("listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
