// Command promote creates an admin record for a user, looked up by share
// code. It is used to bootstrap the first super-admin.
//
// Usage:
//
//	promote --code=AB12CD34 [--role=super-admin]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/infinitevocab/backend/internal/domain"
)

func main() {
	code := flag.String("code", "", "share code of the user to promote")
	role := flag.String("role", "super-admin", "role to assign: admin or super-admin")
	flag.Parse()

	if *code == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --code=AB12CD34 [--role=super-admin]")
		os.Exit(1)
	}
	if !domain.AdminRole(*role).IsValid() {
		log.Fatalf("invalid role %q", *role)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx,
		`INSERT INTO admins (user_id, role, assigned_by)
		 SELECT id, $2, id FROM users WHERE code = $1
		 ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`,
		strings.ToUpper(strings.TrimSpace(*code)), *role,
	)
	if err != nil {
		log.Fatalf("create admin record: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("No user found with code %q.\n", *code)
		os.Exit(1)
	}

	fmt.Printf("User with code %q is now %s.\n", *code, *role)
}
