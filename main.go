package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chaos-io/peptide-catalog/auth"
	"github.com/chaos-io/peptide-catalog/catalog"
	"github.com/chaos-io/peptide-catalog/config"
	"github.com/chaos-io/peptide-catalog/logger"
	"github.com/chaos-io/peptide-catalog/server"
	"github.com/chaos-io/peptide-catalog/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.Initialize(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = zl.Sync()
	}()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		zap.L().Fatal("catalog server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		return fmt.Errorf("failed to create static dir: %w", err)
	}

	authn, err := newAuthenticator(cfg)
	if err != nil {
		return err
	}

	store := catalog.NewSeededStore()

	var images storage.ImageStore
	switch cfg.ImageStore {
	case config.ImageStoreS3:
		s3cfg := storage.S3Config{
			Region:     cfg.AWS.Region,
			Endpoint:   cfg.AWS.Endpoint,
			AccessKey:  cfg.AWS.AccessKey,
			SecretKey:  cfg.AWS.SecretKey,
			Bucket:     cfg.AWS.S3Bucket,
			Prefix:     cfg.AWS.S3Prefix,
			PublicBase: cfg.AWS.S3PublicBase,
		}
		client, err := storage.NewS3Client(ctx, s3cfg)
		if err != nil {
			return err
		}
		if images, err = storage.NewS3Store(client, s3cfg); err != nil {
			return err
		}
	default:
		local := storage.NewLocalStore(cfg.StaticDir)
		images = local

		if cfg.ImageAuditSchedule != "" {
			sched, err := server.NewImageAuditor(store, local, cfg.ImageAuditDelete).Schedule(cfg.ImageAuditSchedule)
			if err != nil {
				return fmt.Errorf("invalid IMAGE_AUDIT_SCHEDULE: %w", err)
			}
			defer sched.Stop()
		}
	}

	zap.L().Info("catalog ready",
		zap.Int("products", store.Len()),
		zap.String("image_store", cfg.ImageStore),
		zap.String("auth_verifier", cfg.AuthVerifier),
		zap.String("auth_token_mode", cfg.AuthTokenMode))

	srv := server.New(store, authn, images, server.Options{
		StaticDir:       cfg.StaticDir,
		MaxUploadMB:     cfg.MaxUploadMB,
		RequestTimeout:  cfg.RequestTimeout,
		LoginRatePerMin: cfg.LoginRatePerMin,
	})
	return srv.Run(ctx, ":"+cfg.Port)
}

func newAuthenticator(cfg *config.Config) (*auth.Authenticator, error) {
	users := auth.DefaultUsers()
	if cfg.AuthUsers != "" {
		var err error
		if users, err = auth.ParseUsers(cfg.AuthUsers); err != nil {
			return nil, fmt.Errorf("invalid AUTH_USERS: %w", err)
		}
	}

	var verifier auth.Verifier
	switch cfg.AuthVerifier {
	case config.VerifierBcrypt:
		verifier = auth.NewBcryptVerifier(users)
	default:
		verifier = auth.NewStaticVerifier(users)
	}

	var issuer auth.Issuer = auth.StaticIssuer{}
	if cfg.AuthTokenMode == config.TokenModeJWT {
		jwtIssuer, err := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)
		if err != nil {
			return nil, err
		}
		issuer = jwtIssuer
	}

	return auth.NewAuthenticator(verifier, issuer), nil
}
