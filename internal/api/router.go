package api

import (
	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every HTTP route. authHandler's Google callback is only
// exposed when Google sign-in is configured.
func NewRouter(handler *GameHandler, authHandler *AuthHandler, sessions *Sessions) *gin.Engine {
	router := gin.Default()

	router.GET(constants.RouteHealth, Health)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)

		apiRoutes.POST(constants.RouteAuthSession, authHandler.Session)
		apiRoutes.GET(constants.RouteAuthUser, authHandler.User)
		apiRoutes.POST(constants.RouteAuthLogout, authHandler.Logout)
		if authHandler.google != nil {
			apiRoutes.POST(constants.RouteAuthGoogleCallBack, authHandler.GoogleOAuthCallback)
		}

		// Public endpoints
		apiRoutes.GET(constants.RouteGames, handler.ListGames)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteRooms, handler.ListRooms)

		// Anonymous play is allowed; signed-in players get their runs recorded.
		play := apiRoutes.Group("")
		play.Use(sessions.OptionalAuth())
		play.POST(constants.RoutePlay, handler.CreatePlay)
		play.GET(constants.RoutePlayWS, handler.PlayWS)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(sessions.AuthRequired())
		protected.GET(constants.RoutePlayerStats, handler.GetPlayerStats)
		protected.GET(constants.RouteScores, handler.ListScores)
	}
	return router
}
