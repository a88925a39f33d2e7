package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"loyalty-server/internal/auth/processor"
	"loyalty-server/internal/observability"

	"github.com/joho/godotenv"
)

// admin-token mints an operator JWT for the /api/admin routes.
func main() {
	subject := flag.String("sub", "", "operator identifier stored in the token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("failed to load env.local: %v", err)
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" || *subject == "" {
		log.Fatal("JWT_SECRET and -sub are required")
	}

	auth := processor.New(secret, "", 0, observability.NewNopLogger())
	token, err := auth.GenerateAdminToken(context.Background(), *subject, *ttl)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(token)
}
