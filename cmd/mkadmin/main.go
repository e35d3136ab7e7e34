// Command mkadmin creates a local admin account directly in the database.
// It is meant for bootstrapping a fresh install, before any user exists
// that could invite others.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

const accessLevelAdmin = 4

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	pass := os.Getenv("HAVEN_DB_PASSWORD")
	host := os.Getenv("HAVEN_DB_HOST")
	port := os.Getenv("HAVEN_DB_PORT")
	if pass == "" || host == "" || port == "" {
		return fmt.Errorf("HAVEN_DB_PASSWORD, HAVEN_DB_HOST and HAVEN_DB_PORT must be set")
	}

	conn, err := pgx.Connect(ctx, fmt.Sprintf("postgres://haven:%s@%s:%s/haven?sslmode=disable", pass, host, port))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)

	fmt.Print("Display name: ")
	name, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	fmt.Print("Password: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}
	if len(secret) < 10 {
		return fmt.Errorf("password must be at least 10 characters")
	}

	hash, err := bcrypt.GenerateFromPassword(secret, bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var id int32
	err = conn.QueryRow(ctx, `
		INSERT INTO appuser (email, display_name, password_hash, access_level, email_verified, time_created)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id
	`, email, name, string(hash), accessLevelAdmin).Scan(&id)
	if err != nil {
		return err
	}

	fmt.Printf("Created admin user %d (%s)\n", id, email)
	return nil
}
