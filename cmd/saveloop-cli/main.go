// The saveloop-cli tool manages user accounts from the shell, for boxes
// where the web UI is not reachable or the only admin locked themselves
// out. It works directly against the same configuration and database as
// the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/saveloop/saveloop/internal/assets"
	"github.com/saveloop/saveloop/internal/auth"
	"github.com/saveloop/saveloop/internal/config"
	"github.com/saveloop/saveloop/internal/db"
	"github.com/saveloop/saveloop/internal/store"
)

func main() {
	if len(os.Args) < 3 || os.Args[1] != "user" {
		usage()
		os.Exit(2)
	}

	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the database connection
	database, err := db.InitDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Run database migrations so the CLI also works against a fresh box.
	if err := db.RunMigrations(database, assets.MigrationsFS); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	st := store.New(database)

	switch os.Args[2] {
	case "add":
		cmdUserAdd(st, os.Args[3:])
	case "list":
		cmdUserList(st)
	case "passwd":
		cmdUserPasswd(st, os.Args[3:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Saveloop admin CLI.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  saveloop-cli user add [-role user|admin] [-password <pw>] <username> <email>")
	fmt.Fprintln(os.Stderr, "  saveloop-cli user list")
	fmt.Fprintln(os.Stderr, "  saveloop-cli user passwd [-password <pw>] <username>")
}

func cmdUserAdd(st *store.Store, args []string) {
	fs := flag.NewFlagSet("user add", flag.ExitOnError)
	role := fs.String("role", "user", "account role: user or admin")
	password := fs.String("password", "", "password for the new account (generated when empty)")
	fs.Parse(args)
	if fs.NArg() != 2 {
		log.Fatalf("Usage: saveloop-cli user add [-role user|admin] [-password <pw>] <username> <email>")
	}
	username, email := fs.Arg(0), fs.Arg(1)

	if *role != "user" && *role != "admin" {
		log.Fatalf("Role must be 'user' or 'admin'.")
	}
	pw := *password
	generated := false
	if pw == "" {
		pw = generateRandomPassword(12)
		generated = true
	}
	if err := auth.ValidateRegistration(username, email, pw); err != nil {
		log.Fatalf("Invalid user details: %v", err)
	}
	passwordHash, err := auth.HashPassword(pw)
	if err != nil {
		log.Fatalf("Could not hash password: %v", err)
	}
	user, err := st.CreateUser(username, email, passwordHash, *role)
	if err != nil {
		log.Fatalf("Could not create user: %v", err)
	}

	fmt.Printf("Created %s account '%s' (id %d).\n", user.Role, user.Username, user.ID)
	if generated {
		fmt.Printf("Generated password: %s\n", pw)
	}
}

func cmdUserList(st *store.Store) {
	users, err := st.ListUsers()
	if err != nil {
		log.Fatalf("Could not list users: %v", err)
	}
	if len(users) == 0 {
		fmt.Println("No users.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, u.Email, u.Role, u.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()
}

func cmdUserPasswd(st *store.Store, args []string) {
	fs := flag.NewFlagSet("user passwd", flag.ExitOnError)
	password := fs.String("password", "", "new password (generated when empty)")
	fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatalf("Usage: saveloop-cli user passwd [-password <pw>] <username>")
	}
	username := fs.Arg(0)

	user, err := st.GetUserByUsername(username)
	if err != nil {
		log.Fatalf("Could not find user '%s': %v", username, err)
	}
	pw := *password
	generated := false
	if pw == "" {
		pw = generateRandomPassword(12)
		generated = true
	}
	if len(pw) < 8 {
		log.Fatalf("Password must be at least 8 characters.")
	}
	passwordHash, err := auth.HashPassword(pw)
	if err != nil {
		log.Fatalf("Could not hash password: %v", err)
	}
	if err := st.UpdateUserPassword(user.ID, passwordHash); err != nil {
		log.Fatalf("Could not update password: %v", err)
	}

	fmt.Printf("Password updated for '%s'.\n", user.Username)
	if generated {
		fmt.Printf("Generated password: %s\n", pw)
	}
}

func generateRandomPassword(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}
