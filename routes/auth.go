package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"fixfleet-server/config"
	"fixfleet-server/middleware"
	"fixfleet-server/models"
	"fixfleet-server/services"
	"fixfleet-server/store"
	"fixfleet-server/types"
	"fixfleet-server/utils"
)

// AuthHandler orchestrates the password, OTP and OAuth enrollment and
// login flows. Every flow terminates in "issue token and return
// {user, token}".
type AuthHandler struct {
	users  *store.UserStore
	tokens *services.TokenService
	otps   *services.OTPService
	sms    services.SMSSender
	oauth  *services.OAuthService
}

// NewAuthHandler creates an auth handler wired to its collaborators
func NewAuthHandler(users *store.UserStore, tokens *services.TokenService, otps *services.OTPService, sms services.SMSSender, oauth *services.OAuthService) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		otps:   otps,
		sms:    sms,
		oauth:  oauth,
	}
}

// RegisterAuthRoutes registers the authentication endpoints
func RegisterAuthRoutes(router *gin.RouterGroup, h *AuthHandler) {
	router.POST("/signup", h.signUp)
	router.POST("/login", h.logIn)
	router.POST("/signup-mobile", h.signUpMobile)
	router.POST("/login-mobile", h.logInMobile)
	router.POST("/verify-otp", h.verifyOTP)

	router.GET("/google", h.oauthStart(models.ProviderGoogle))
	router.GET("/google/callback", h.oauthCallback(models.ProviderGoogle))
	router.GET("/facebook", h.oauthStart(models.ProviderFacebook))
	router.GET("/facebook/callback", h.oauthCallback(models.ProviderFacebook))

	router.GET("/me", middleware.AuthMiddleware(h.tokens), h.currentUser)
}

// signUp handles email/password registration
func (h *AuthHandler) signUp(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"message": err.Error(),
		})
		return
	}

	if _, exists := h.users.FindByEmail(req.Email); exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Email already registered",
			"message": "An account with this email already exists",
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Password hashing failed",
			"message": "Failed to process password",
		})
		return
	}

	user := h.users.Create(models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})

	h.respondWithToken(c, http.StatusCreated, user)
}

// logIn handles email/password authentication. Unknown email and wrong
// password produce the same response so accounts cannot be enumerated.
func (h *AuthHandler) logIn(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"message": err.Error(),
		})
		return
	}

	user, exists := h.users.FindByEmail(req.Email)
	if !exists || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Invalid credentials",
			"message": "Invalid email or password",
		})
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// signUpMobile starts the OTP signup flow
func (h *AuthHandler) signUpMobile(c *gin.Context) {
	var req models.MobileSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing name or phone",
			"message": err.Error(),
		})
		return
	}

	phone := utils.NormalizePhoneNumber(req.Phone)
	if !utils.ValidatePhoneNumber(phone) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid phone number",
			"message": "Phone number must be in international format, e.g. +919876511001",
		})
		return
	}

	if _, exists := h.users.FindByPhone(phone); exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Phone number already registered",
			"message": "An account with this phone number already exists",
		})
		return
	}

	h.sendOTP(c, phone, req.Name, true,
		"Your FixFleet verification code is: %s. Valid for %d minutes.")
}

// logInMobile starts the OTP login flow. The challenge is issued whether
// or not the phone is known, so this endpoint does not reveal accounts.
func (h *AuthHandler) logInMobile(c *gin.Context) {
	var req models.MobileLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing phone number",
			"message": err.Error(),
		})
		return
	}

	phone := utils.NormalizePhoneNumber(req.Phone)
	if !utils.ValidatePhoneNumber(phone) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid phone number",
			"message": "Phone number must be in international format, e.g. +919876511001",
		})
		return
	}

	h.sendOTP(c, phone, "", false,
		"Your FixFleet login code is: %s. Valid for %d minutes.")
}

// sendOTP issues a challenge and delivers it through the SMS gateway
func (h *AuthHandler) sendOTP(c *gin.Context, phone, name string, isSignup bool, template string) {
	code, err := h.otps.Issue(phone, name, isSignup)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate OTP",
			"message": "Could not create a verification code",
		})
		return
	}

	message := fmt.Sprintf(template, code, config.AppConfig.OTP.ExpiryMinutes)
	demo, err := h.sms.Send(phone, message)
	if err != nil && !demo {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send OTP",
			"message": "The SMS provider rejected the message",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP sent successfully",
		"phone":   phone,
		"demo":    demo,
	})
}

// verifyOTP completes either OTP flow using the stored challenge context
func (h *AuthHandler) verifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing phone or OTP",
			"message": err.Error(),
		})
		return
	}

	phone := utils.NormalizePhoneNumber(req.Phone)
	challenge, err := h.otps.Verify(phone, req.OTP)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, services.ErrOTPExpired):
			message = "OTP expired"
		case errors.Is(err, services.ErrOTPMismatch):
			message = "Invalid OTP"
		default:
			message = "OTP not found or expired"
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   message,
			"message": "Please request a new code and try again",
		})
		return
	}

	user, exists := h.users.FindByPhone(phone)

	if challenge.IsSignup {
		// A user may have appeared between issue and verify.
		if exists {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "User already exists",
				"message": "An account with this phone number already exists",
			})
			return
		}
		user = h.users.Create(models.User{Name: challenge.Name, Phone: phone})
	} else if !exists {
		if !config.AppConfig.OTP.AutoProvision {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Unknown phone number",
				"message": "No account exists for this phone number",
			})
			return
		}
		user = h.users.Create(models.User{Name: "User", Phone: phone})
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// oauthStart returns the provider's authorize URL
func (h *AuthHandler) oauthStart(provider models.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authURL, err := h.oauth.AuthURL(provider)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "OAuth provider unavailable",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authUrl": authURL})
	}
}

// oauthCallback finishes the redirect flow and hands the session back to
// the frontend via query parameters.
func (h *AuthHandler) oauthCallback(provider models.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		frontend := config.AppConfig.Server.FrontendURL

		code := c.Query("code")
		if code == "" {
			c.Redirect(http.StatusFound, frontend+"/auth?error=no_code")
			return
		}

		profile, err := h.oauth.FetchProfile(c.Request.Context(), provider, code)
		if err != nil {
			log.Printf("❌ %s OAuth error: %v", provider, err)
			c.Redirect(http.StatusFound, frontend+"/auth?error=oauth_failed")
			return
		}

		user := h.users.UpsertByIdentity(store.OAuthIdentity{
			Provider:   provider,
			ProviderID: profile.ID,
			Name:       profile.Name,
			Email:      profile.Email,
			Picture:    profile.Picture,
		})

		token, err := h.tokens.Issue(user)
		if err != nil {
			c.Redirect(http.StatusFound, frontend+"/auth?error=oauth_failed")
			return
		}

		userJSON, err := json.Marshal(user)
		if err != nil {
			c.Redirect(http.StatusFound, frontend+"/auth?error=oauth_failed")
			return
		}

		target := fmt.Sprintf("%s/auth?token=%s&user=%s",
			frontend, url.QueryEscape(token), url.QueryEscape(string(userJSON)))
		c.Redirect(http.StatusFound, target)
	}
}

// currentUser returns the authenticated user's record
func (h *AuthHandler) currentUser(c *gin.Context) {
	value, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "User not authenticated",
			"message": "Please log in to access your profile",
		})
		return
	}

	claims := value.(*types.Claims)
	user, found := h.users.FindByID(claims.UserID)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "User not found",
			"message": "User associated with token not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User profile retrieved successfully",
		"data":    user,
	})
}

// respondWithToken issues a session token and writes the standard
// {user, token} body.
func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user models.User) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Token generation failed",
			"message": "Failed to generate authentication token",
		})
		return
	}

	c.JSON(status, models.AuthResponse{User: user, Token: token})
}
