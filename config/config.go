package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Twilio   TwilioConfig
	Google   OAuthProviderConfig
	Facebook OAuthProviderConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	FrontendURL string
}

type JWTConfig struct {
	Secret     string
	ExpiryDays int
}

type OTPConfig struct {
	ExpiryMinutes int
	AutoProvision bool
}

type TwilioConfig struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
}

type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

var AppConfig *Config

func Load() {
	port := getEnv("PORT", "4000")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:        port,
			GinMode:     getEnv("GIN_MODE", "debug"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			ExpiryDays: getEnvAsInt("JWT_EXPIRY_DAYS", 7),
		},
		OTP: OTPConfig{
			ExpiryMinutes: getEnvAsInt("OTP_EXPIRY_MINUTES", 10),
			AutoProvision: getEnvAsBool("OTP_AUTO_PROVISION", true),
		},
		Twilio: TwilioConfig{
			AccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
			PhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		},
		Google: OAuthProviderConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:"+port+"/api/auth/google/callback"),
		},
		Facebook: OAuthProviderConfig{
			ClientID:     getEnv("FACEBOOK_APP_ID", ""),
			ClientSecret: getEnv("FACEBOOK_APP_SECRET", ""),
			RedirectURI:  getEnv("FACEBOOK_REDIRECT_URI", "http://localhost:"+port+"/api/auth/facebook/callback"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
