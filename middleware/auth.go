package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/model"
)

const PARTICIPANT_KEY = "participant"

// Auth resolves the survey token handed out at signup into the participant
// it belongs to. There is no account system behind the token: possessing it
// is the whole credential.
func Auth(participantDB db.ParticipantDatabase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader, ok := c.Request.Header["Authorization"]
		if !ok || len(authorizationHeader) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "no authorization header",
			})
			c.Abort()
			return
		}
		if strings.Index(authorizationHeader[0], "Bearer ") != 0 || len(authorizationHeader[0]) < 8 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "incorrectly formatted authorization header",
			})
			c.Abort()
			return
		}

		participant, err := participantDB.GetParticipantByToken(c, authorizationHeader[0][7:])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "database error",
			})
			c.Abort()
			return
		}
		if participant == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "unknown survey token",
			})
			c.Abort()
			return
		}
		c.Set(PARTICIPANT_KEY, participant)
	}
}

func MustGetParticipant(c *gin.Context) *model.Participant {
	participant, _ := c.Get(PARTICIPANT_KEY)
	return participant.(*model.Participant)
}
