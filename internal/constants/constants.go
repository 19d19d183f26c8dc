package constants

import "time"

// Centralized constants for environment keys, routes, cookies and messages.
const (
	// Environment variable keys
	// The full set is declared as env tags on config.Env.
	EnvSessionSecret      = "SESSION_SECRET"
	EnvGoogleClientID     = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret = "GOOGLE_CLIENT_SECRET"
	EnvServerAddress      = "LARO_ADDR"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	// Session / Cookie names
	CookieSessionName = "laro_session"
	SessionTTL        = 24 * time.Hour

	// Google OAuth constants
	GoogleOAuthRedirect = "postmessage"
	GoogleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var (
	// Scopes for Google userinfo
	GoogleUserInfoScopes = []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"}
)

// Routes used by the backend router
const (
	RouteAPIPrefix          = "/api"
	RouteHealth             = "/healthz"
	RouteVersion            = "/version"
	RouteAuthSession        = "/auth/session"
	RouteAuthUser           = "/auth/user"
	RouteAuthLogout         = "/auth/logout"
	RouteAuthGoogleCallBack = "/auth/google/oauth2callback"
	RouteGames              = "/games"
	RouteLeaderboard        = "/leaderboard/:game"
	RoutePlayerStats        = "/player-stats"
	RouteScores             = "/scores"
	RouteRooms              = "/rooms"
	RoutePlay               = "/play/:game"
	RoutePlayWS             = "/play/:game/ws"
)

// Gin context keys carrying the session identity.
const (
	CtxUserUID   = "userUID"
	CtxUserEmail = "userEmail"
	CtxUserName  = "userName"
)

// Common JSON response keys
const (
	JSONKeyError         = "error"
	JSONKeyMessage       = "message"
	JSONKeyDetails       = "details"
	JSONKeySuccess       = "success"
	JSONKeyAuthenticated = "authenticated"
	JSONKeyUser          = "user"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrUIDAndEmailRequired    = "uid and email are required"
	ErrMissingGoogleEnv       = "Missing GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET in environment"
	ErrFailedExchangeToken    = "Failed to exchange token"
	ErrFailedGetUserInfo      = "Failed to get user info"
	ErrFailedReadUserData     = "Failed to read user data: %s"
	ErrNoEmailInGoogleProfile = "No email in Google profile"
	ErrFailedCreateSession    = "Failed to create session"
	ErrAuthRequired           = "Authentication required"
	ErrInvalidSession         = "Invalid session"

	ErrUnknownGame              = "Unknown game"
	ErrRoomNotFound             = "Room not found"
	ErrFailedCreateRoom         = "Failed to create room"
	ErrFailedFetchLeaderboard   = "Failed to fetch leaderboard"
	ErrFailedFetchStats         = "Failed to fetch stats"
	ErrFailedFetchScores        = "Failed to fetch scores"
	ErrWebsocketUpgradeRequired = "Websocket upgrade required"
)

// Logging field names
const (
	LogFieldAddr     = "addr"
	LogFieldUID      = "uid"
	LogFieldGame     = "game"
	LogFieldRoom     = "room"
	LogFieldRole     = "role"
	LogFieldScore    = "score"
	LogFieldPath     = "config_path"
	LogFieldDB       = "db_path"
	LogFieldIdleFor  = "idle_for"
	LogFieldClientID = "client_id"
)
