// Command issue-token mints an access token for local development and tests.
// Production tokens are issued by the identity provider that shares the
// signing secret.
//
// Usage:
//
//	issue-token --user=<uuid> [--role=admin] [--ttl=24h] [--config=path]
//
// Reads the signing secret and issuer from the regular configuration
// (--config, else CONFIG_PATH, else ./config.yaml plus ENV).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/auth"
	"github.com/heartmarshall/flashdeck-backend/internal/config"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

func main() {
	user := flag.String("user", "", "user id (uuid); a random one when empty")
	role := flag.String("role", string(domain.UserRoleUser), "user or admin")
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to auth.access_token_ttl")
	cfgPath := flag.String("config", os.Getenv("CONFIG_PATH"), "config file path")
	flag.Parse()

	cfg, err := config.LoadFrom(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *user != "" {
		if userID, err = uuid.Parse(*user); err != nil {
			fmt.Fprintf(os.Stderr, "invalid --user: %v\n", err)
			os.Exit(1)
		}
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime)
	token, err := jwt.GenerateAccessToken(userID, domain.UserRole(*role))
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user %s, role %s, expires %s\n", userID, *role, time.Now().Add(lifetime).Format(time.RFC3339))
	fmt.Println(token)
}
