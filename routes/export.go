package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vidshare/vidshare-be/app"
	"github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/util"
)

type exportRoutes struct {
	db       db.Database
	adminKey string
}

func AddExportRoutes(group *gin.RouterGroup, database db.Database, adminKey string) {
	routes := exportRoutes{db: database, adminKey: adminKey}
	export := group.Group("/export", routes.requireAdminKey)
	export.GET("/actions.csv", routes.exportActions)
	export.GET("/pageviews.csv", routes.exportPageViews)
}

func (er *exportRoutes) requireAdminKey(c *gin.Context) {
	if er.adminKey == "" || c.Query("key") != er.adminKey {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "invalid export key",
		})
		c.Abort()
	}
}

func (er *exportRoutes) exportActions(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="actions.csv"`)
	if err := app.WriteActionsCSV(c, er.db, c.Writer); err != nil {
		logrus.WithError(err).Error("actions export failed")
		util.HandleMidStreamError(c)
	}
}

func (er *exportRoutes) exportPageViews(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="pageviews.csv"`)
	if err := app.WritePageViewsCSV(c, er.db, c.Writer); err != nil {
		logrus.WithError(err).Error("pageviews export failed")
		util.HandleMidStreamError(c)
	}
}
