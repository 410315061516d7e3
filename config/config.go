package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ImageStoreLocal = "local"
	ImageStoreS3    = "s3"

	VerifierStatic = "static"
	VerifierBcrypt = "bcrypt"

	TokenModeStatic = "static"
	TokenModeJWT    = "jwt"
)

type Config struct {
	Port      string
	Env       string
	StaticDir string

	ImageStore string
	AWS        AWSConfig

	AuthVerifier  string
	AuthUsers     string
	AuthTokenMode string
	JWTSecret     string
	JWTTTL        time.Duration

	RequestTimeout  time.Duration
	MaxUploadMB     int64
	LoginRatePerMin int

	ImageAuditSchedule string
	ImageAuditDelete   bool
}

type AWSConfig struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	S3Bucket     string
	S3Prefix     string
	S3PublicBase string
}

// Load reads an optional .env file, then the environment. A missing .env is fine;
// one that exists but cannot be read is an error, since the logger is not up yet to report it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8000"),
		Env:       getEnv("APP_ENV", "development"),
		StaticDir: getEnv("STATIC_DIR", "static"),

		ImageStore: strings.ToLower(getEnv("IMAGE_STORE", ImageStoreLocal)),
		AWS: AWSConfig{
			Region:       getEnv("AWS_REGION", "us-east-1"),
			Endpoint:     os.Getenv("AWS_ENDPOINT"),
			AccessKey:    os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Prefix:     os.Getenv("AWS_S3_PREFIX"),
			S3PublicBase: os.Getenv("AWS_S3_PUBLIC_BASE"),
		},

		AuthVerifier:  strings.ToLower(getEnv("AUTH_VERIFIER", VerifierStatic)),
		AuthUsers:     os.Getenv("AUTH_USERS"),
		AuthTokenMode: strings.ToLower(getEnv("AUTH_TOKEN_MODE", TokenModeStatic)),
		JWTSecret:     os.Getenv("JWT_SECRET"),

		ImageAuditSchedule: os.Getenv("IMAGE_AUDIT_SCHEDULE"),
	}

	var err error
	if cfg.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	maxUpload, err := getInt("MAX_UPLOAD_MB", 32)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadMB = int64(maxUpload)
	if cfg.LoginRatePerMin, err = getInt("LOGIN_RATE_PER_MIN", 0); err != nil {
		return nil, err
	}
	if cfg.ImageAuditDelete, err = getBool("IMAGE_AUDIT_DELETE", false); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.ImageStore {
	case ImageStoreLocal:
	case ImageStoreS3:
		if c.AWS.S3Bucket == "" {
			return fmt.Errorf("AWS_S3_BUCKET is required when IMAGE_STORE=s3")
		}
	default:
		return fmt.Errorf("unknown IMAGE_STORE %q", c.ImageStore)
	}

	switch c.AuthVerifier {
	case VerifierStatic:
	case VerifierBcrypt:
		if c.AuthUsers == "" {
			return fmt.Errorf("AUTH_USERS is required when AUTH_VERIFIER=bcrypt")
		}
	default:
		return fmt.Errorf("unknown AUTH_VERIFIER %q", c.AuthVerifier)
	}

	switch c.AuthTokenMode {
	case TokenModeStatic:
	case TokenModeJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when AUTH_TOKEN_MODE=jwt")
		}
	default:
		return fmt.Errorf("unknown AUTH_TOKEN_MODE %q", c.AuthTokenMode)
	}

	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	if c.LoginRatePerMin < 0 {
		return fmt.Errorf("LOGIN_RATE_PER_MIN must not be negative")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, val, err)
	}
	return n, nil
}

func getBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, val, err)
	}
	return b, nil
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, val, err)
	}
	return d, nil
}
