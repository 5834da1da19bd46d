package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"design-vault/internal/config"
	"design-vault/internal/db"
	"design-vault/internal/designs"
)

func main() {
	issue := flag.String("issue", "", "issue a new credential with the given description and print its upload token")
	revoke := flag.Uint("revoke", 0, "revoke the credential with the given user id, keeping the row for provenance")
	remove := flag.Uint("delete", 0, "delete the credential with the given user id, detaching its images")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	store := designs.NewStore(conn)

	switch {
	case *issue != "":
		auth, token, err := store.IssueAuthorization(*issue)
		if err != nil {
			log.Fatalf("issue failed: %v", err)
		}
		fmt.Printf("user %d\n%s\n", auth.ID, token)
	case *revoke != 0:
		if err := store.RevokeAuthorization(uint(*revoke)); err != nil {
			log.Fatalf("revoke failed: %v", err)
		}
		log.Printf("revoked user %d", *revoke)
	case *remove != 0:
		if err := store.DeleteAuthorization(uint(*remove)); err != nil {
			log.Fatalf("delete failed: %v", err)
		}
		log.Printf("deleted user %d", *remove)
	default:
		flag.Usage()
		os.Exit(2)
	}
}
