package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vidshare/vidshare-be/config"
	appdb "github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/db/cache"
	"github.com/vidshare/vidshare-be/db/mysql"
	"github.com/vidshare/vidshare-be/routes"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	cfg := config.Load()

	var database appdb.Database
	database, err := mysql.GetDatabase(cfg.Mysql)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to mysql")
	}
	defer database.Close()

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		database = cache.Wrap(database, client, cfg.Redis.ScriptTTL)
		logrus.WithField("addr", cfg.Redis.Addr).Info("script cache enabled")
	}

	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.FeOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.AddHealthCheckRoutes(&r.RouterGroup)
	routes.AddParticipantRoutes(&r.RouterGroup, database)
	routes.AddFeedRoutes(&r.RouterGroup, database, cfg)
	routes.AddLogRoutes(&r.RouterGroup, database)
	routes.AddExportRoutes(&r.RouterGroup, database, cfg.Server.AdminKey)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logrus.WithError(err).Fatal("error when attempting to run web server")
	}
}
