package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vidshare/vidshare-be/app"
	"github.com/vidshare/vidshare-be/config"
	"github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/middleware"
	"github.com/vidshare/vidshare-be/util"
)

type feedRoutes struct {
	db  db.Database
	cfg *config.Config
}

func AddFeedRoutes(group *gin.RouterGroup, database db.Database, cfg *config.Config) {
	routes := feedRoutes{db: database, cfg: cfg}
	feed := group.Group("/feed", middleware.Auth(database))
	feed.GET("", util.HandlerWrapper(routes.getFeed, &util.HandlerOpts{}))
}

func (fr *feedRoutes) getFeed(c *gin.Context) (interface{}, *util.HTTPError) {
	participant := middleware.MustGetParticipant(c)
	videos, err := app.AssembleFeed(c, fr.db, participant, fr.cfg.Study, fr.cfg.Messages)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return &gin.H{
		"participant": participant,
		"videos":      app.NormalizeFeed(videos),
	}, nil
}
