package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/middleware"
	"github.com/vidshare/vidshare-be/model"
	"github.com/vidshare/vidshare-be/util"
)

type logRoutes struct {
	db db.Database
}

// AddLogRoutes wires the interaction- and page-time-logging endpoints. These
// are the only writers of the action log the feed engine replays.
func AddLogRoutes(group *gin.RouterGroup, database db.Database) {
	routes := logRoutes{database}
	logged := group.Group("", middleware.Auth(database))
	logged.POST("/feed/actions", util.HandlerWrapper(routes.logFeedAction, &util.HandlerOpts{}))
	logged.POST("/pageviews", util.HandlerWrapper(routes.logPageView, &util.HandlerOpts{}))
}

func (lr *logRoutes) logFeedAction(c *gin.Context) (interface{}, *util.HTTPError) {
	var action model.FeedAction
	if err := c.BindJSON(&action); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if action.PostId == 0 {
		return nil, &util.HTTPError{
			Status:  http.StatusBadRequest,
			Message: "postID is required",
		}
	}
	for _, entry := range action.Comments {
		if entry.NewComment {
			entry.Body = util.XSSSanitize(entry.Body)
		}
	}

	participant := middleware.MustGetParticipant(c)
	if err := lr.db.UpsertFeedAction(c, participant.Id, &action); err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return nil, nil
}

type pageViewReq struct {
	Page string `json:"page"`
	Ms   int64  `json:"ms"`
}

func (lr *logRoutes) logPageView(c *gin.Context) (interface{}, *util.HTTPError) {
	var req pageViewReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	participant := middleware.MustGetParticipant(c)
	if err := lr.db.CreatePageView(c, participant.Id, &db.CreatePageView{
		Page: req.Page,
		Ms:   req.Ms,
	}); err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return nil, nil
}
