// Command hashtoken prints the bcrypt hash of an admin bearer token, for
// the AUTH_ADMIN_TOKEN_HASH setting.
// Usage: go run cmd/hashtoken/main.go -token <secret>
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ayayoy/lendhub/internal/auth"
)

func main() {
	token := flag.String("token", "", "token to hash")
	cost := flag.Int("cost", 0, "bcrypt cost (0 = default)")
	flag.Parse()

	if *token == "" {
		log.Fatal("usage: hashtoken -token <secret>")
	}

	hash, err := auth.HashToken(*token, *cost)
	if err != nil {
		log.Fatalf("Failed to hash token: %v", err)
	}
	fmt.Println(hash)
}
