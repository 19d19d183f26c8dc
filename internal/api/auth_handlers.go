package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/ericogr/laro-arcade/internal/game"
	"github.com/ericogr/laro-arcade/internal/logging"
	"github.com/ericogr/laro-arcade/internal/storage"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthHandler struct {
	repo        storage.Repository
	sessions    *Sessions
	// google is nil when the Google code exchange is not configured.
	google      *oauth2.Config
	userInfoURL string
}

func NewAuthHandler(repo storage.Repository, sessions *Sessions, googleConf *oauth2.Config) *AuthHandler {
	return &AuthHandler{repo: repo, sessions: sessions, google: googleConf, userInfoURL: constants.GoogleUserInfoURL}
}

// NewGoogleConfig builds the OAuth2 config for the popup code flow.
func NewGoogleConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  constants.GoogleOAuthRedirect,
		Scopes:       constants.GoogleUserInfoScopes,
		Endpoint:     google.Endpoint,
	}
}

type SessionRequest struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"displayname"`
}

// identity fills in the optional names: username falls back to the local
// part of the email and displayname to the username.
func (r SessionRequest) identity() Identity {
	id := Identity{
		UID:         strings.TrimSpace(r.UID),
		Email:       strings.TrimSpace(r.Email),
		Username:    strings.TrimSpace(r.Username),
		DisplayName: strings.TrimSpace(r.DisplayName),
	}
	if id.Username == "" {
		id.Username = id.Email
		if at := strings.IndexByte(id.Email, '@'); at > 0 {
			id.Username = id.Email[:at]
		}
	}
	if id.DisplayName == "" {
		id.DisplayName = id.Username
	}
	return id
}

func failure(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyMessage: msg})
}

// Session exchanges an identity asserted by the sign-in widget for a session
// cookie.
func (h *AuthHandler) Session(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, constants.ErrInvalidRequest)
		return
	}
	id := req.identity()
	if id.UID == "" || id.Email == "" {
		failure(c, http.StatusBadRequest, constants.ErrUIDAndEmailRequired)
		return
	}
	if !h.login(c, id) {
		failure(c, http.StatusInternalServerError, constants.ErrFailedCreateSession)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySuccess: true})
}

// login mints the session cookie and records the profile. Storage problems
// are logged and do not block the login.
func (h *AuthHandler) login(c *gin.Context, id Identity) bool {
	token, err := h.sessions.createSessionToken(id)
	if err != nil {
		logging.Error("failed to create session token", err, logging.Fields{constants.LogFieldUID: id.UID})
		return false
	}
	h.sessions.setSessionCookie(c, token)

	if h.repo != nil {
		u := &game.User{
			UID:         id.UID,
			Email:       id.Email,
			Username:    id.Username,
			DisplayName: id.DisplayName,
			LastLoginAt: time.Now(),
		}
		if err := h.repo.UpsertUser(u); err != nil {
			logging.Warn("failed to store user profile", err, logging.Fields{constants.LogFieldUID: id.UID})
		}
	}
	logging.Info("session created", logging.Fields{constants.LogFieldUID: id.UID})
	return true
}

// User reports the identity behind the session cookie. Token problems are
// reported as unauthenticated, never as errors.
func (h *AuthHandler) User(c *gin.Context) {
	id := h.sessions.identityFromCookie(c)
	if id == nil {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyAuthenticated: false})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyAuthenticated: true, constants.JSONKeyUser: id})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySuccess: true})
}

type GoogleOAuthCallbackRequest struct {
	Code string `json:"code"`
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (h *AuthHandler) GoogleOAuthCallback(c *gin.Context) {
	var req GoogleOAuthCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if h.google == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingGoogleEnv})
		return
	}

	ctx := c.Request.Context()
	token, err := h.google.Exchange(ctx, req.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrFailedExchangeToken, constants.JSONKeyDetails: err.Error()})
		return
	}

	client := h.google.Client(ctx, token)
	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedGetUserInfo, constants.JSONKeyDetails: err.Error()})
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedGetUserInfo, constants.JSONKeyDetails: resp.Status})
		return
	}

	userData, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrFailedReadUserData, err.Error())})
		return
	}
	var info googleUserInfo
	if err := json.Unmarshal(userData, &info); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedGetUserInfo, constants.JSONKeyDetails: err.Error()})
		return
	}
	if info.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrNoEmailInGoogleProfile})
		return
	}
	uid := info.ID
	if uid == "" {
		uid = info.Email
	}

	id := SessionRequest{UID: uid, Email: info.Email, DisplayName: info.Name}.identity()
	// Keep a display name the player already has on file.
	if h.repo != nil {
		if u, err := h.repo.GetUserByUID(uid); err == nil && u.DisplayName != "" {
			id.DisplayName = u.DisplayName
		}
	}
	if !h.login(c, id) {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateSession})
		return
	}

	out := gin.H{constants.JSONKeySuccess: true, constants.JSONKeyUser: id}
	if info.Picture != "" {
		out["picture"] = info.Picture
	}
	c.JSON(http.StatusOK, out)
}
