package routes

import (
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/model"
	"github.com/vidshare/vidshare-be/util"
)

type participantRoutes struct {
	db db.Database
}

func AddParticipantRoutes(group *gin.RouterGroup, database db.Database) {
	routes := participantRoutes{database}
	participants := group.Group("/participants")
	participants.PUT("", util.HandlerWrapper(routes.signup, &util.HandlerOpts{}))
	participants.GET("/interests", util.HandlerWrapper(routes.getInterests, &util.HandlerOpts{}))
}

type signupReq struct {
	Interest string `json:"interest"`
}

func (pr *participantRoutes) signup(c *gin.Context) (interface{}, *util.HTTPError) {
	var req signupReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if req.Interest == "" {
		return nil, &util.HTTPError{
			Status:  http.StatusBadRequest,
			Message: "interest is required",
		}
	}

	interests, err := pr.db.GetInterests(c)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if !knownInterest(interests, req.Interest) {
		return nil, &util.HTTPError{
			Status:  http.StatusBadRequest,
			Message: "unknown interest",
		}
	}

	condition, err := drawCondition(c, pr.db)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}

	alias := util.GenerateAlias()
	token := uuid.NewString()
	participantId, err := pr.db.CreateParticipant(c, &db.CreateParticipant{
		Token:     token,
		Alias:     alias,
		Avatar:    util.Avatar(alias),
		Interest:  req.Interest,
		Condition: condition,
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}

	return &gin.H{
		"id":    participantId,
		"token": token,
		"alias": alias,
	}, nil
}

func (pr *participantRoutes) getInterests(c *gin.Context) (interface{}, *util.HTTPError) {
	interests, err := pr.db.GetInterests(c)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return interests, nil
}

// drawCondition picks the least-filled arm so the nine cells stay balanced
// as participants trickle in; ties break randomly.
func drawCondition(c *gin.Context, participantDB db.ParticipantDatabase) (model.Condition, error) {
	counts, err := participantDB.CountByCondition(c)
	if err != nil {
		return "", err
	}
	minCount := -1
	var candidates []model.Condition
	for _, condition := range model.Conditions {
		count := counts[condition]
		switch {
		case minCount == -1 || count < minCount:
			minCount = count
			candidates = []model.Condition{condition}
		case count == minCount:
			candidates = append(candidates, condition)
		}
	}
	return candidates[rand.Intn(len(candidates))], nil
}

func knownInterest(interests []*model.Interest, name string) bool {
	for _, interest := range interests {
		if interest.Name == name {
			return true
		}
	}
	return false
}
