package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"bank-backoffice.backend/internal/config"
	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/pkg/jwt"
)

var (
	loadEnv           = godotenv.Load
	loadCfg           = config.Load
	stdout  io.Writer = os.Stdout
)

func parseUserID(userID string) (uuid.UUID, error) {
	if userID == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(userID)
}

func run(args []string) error {
	fs := flag.NewFlagSet("token-gen", flag.ContinueOnError)
	userIDFlag := fs.String("user-id", "", "subject user UUID (random when empty)")
	email := fs.String("email", "operator@bank.local", "email claim")
	roles := fs.String("roles", string(entities.UserRoleAdmin), "role combination claim")
	if err := fs.Parse(args); err != nil {
		return err
	}

	userID, err := parseUserID(*userIDFlag)
	if err != nil {
		return fmt.Errorf("invalid --user-id: %w", err)
	}
	normalized, err := entities.NormalizeRoles(*roles)
	if err != nil {
		return fmt.Errorf("invalid --roles: %w", err)
	}

	if err := loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := loadCfg()

	svc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	pair, err := svc.GenerateTokenPair(userID, *email, normalized)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Fprintln(stdout, "Generated bearer tokens")
	fmt.Fprintf(stdout, "USER_ID=%s\n", userID)
	fmt.Fprintf(stdout, "ACCESS_TOKEN=%s\n", pair.AccessToken)
	fmt.Fprintf(stdout, "REFRESH_TOKEN=%s\n", pair.RefreshToken)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
