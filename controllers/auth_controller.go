package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Elziee/BIOOO-comp/middlewares"
	"github.com/Elziee/BIOOO-comp/services"
	"github.com/Elziee/BIOOO-comp/utils"
)

const sessionMaxAge = 72 * 60 * 60 // seconds, matches the token expiry

type AuthController struct {
	auth   *services.AuthService
	secret []byte
	log    *logrus.Logger
}

func NewAuthController(auth *services.AuthService, secret []byte, log *logrus.Logger) *AuthController {
	return &AuthController{auth: auth, secret: secret, log: log}
}

func (a *AuthController) startSession(c *gin.Context, userID uint) error {
	token, err := utils.GenerateJWT(userID, a.secret)
	if err != nil {
		return err
	}
	c.SetCookie(middlewares.SessionCookie, token, sessionMaxAge, "/", "", false, true)
	return nil
}

// GET /login
func (a *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// POST /login (form-encoded)
func (a *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := a.auth.Authenticate(email, password)
	if err != nil {
		// One message for every failure mode, so callers cannot probe
		// which accounts exist.
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "Invalid email or password"})
		return
	}

	if err := a.startSession(c, user.ID); err != nil {
		a.log.WithError(err).Error("failed to issue session token")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "An unexpected error occurred"})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// GET /register
func (a *AuthController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// POST /register (form-encoded)
func (a *AuthController) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := a.auth.Register(username, email, password)
	if errors.Is(err, services.ErrEmailTaken) {
		c.HTML(http.StatusOK, "register.html", gin.H{"error": "Email already registered"})
		return
	}
	if err != nil {
		a.log.WithError(err).Error("failed to register user")
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"error": "An unexpected error occurred"})
		return
	}

	// New accounts are signed in right away.
	if err := a.startSession(c, user.ID); err != nil {
		a.log.WithError(err).Error("failed to issue session token")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// GET /logout
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// GET /
func (a *AuthController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}
