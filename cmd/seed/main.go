// Command seed creates a database with a sample catalog and accounts, for
// local development and demos.
// Usage: go run cmd/seed/main.go [-db path/to/lendhub.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ayayoy/lendhub/internal/database"
	"github.com/ayayoy/lendhub/internal/database/borrows"
	"github.com/ayayoy/lendhub/internal/entities"
)

const defaultDatabasePath = "./lendhub.db"

func main() {
	dbPath := flag.String("db", defaultDatabasePath, "path to the database file")
	flag.Parse()

	log.Printf("Seeding database at %s...", *dbPath)

	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	for _, book := range sampleBooks() {
		if err := db.DB.Create(&book).Error; err != nil {
			log.Printf("Failed to save book %s: %v", book.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s", book.Title, book.Author)
	}

	users := sampleUsers()
	for i := range users {
		if err := db.DB.Create(&users[i]).Error; err != nil {
			log.Printf("Failed to save user %s: %v", users[i].Email, err)
		}
	}

	// One pending request and one accepted loan, so the admin views have
	// something to show out of the box.
	borrowRepo := borrows.NewRepository(db.DB, 0)
	if _, err := borrowRepo.Submit(1, 1); err != nil {
		log.Printf("Failed to seed borrow request: %v", err)
	}
	if loan, err := borrowRepo.Submit(2, 1); err != nil {
		log.Printf("Failed to seed loan: %v", err)
	} else if err := borrowRepo.Accept(loan.ID, time.Now().AddDate(0, 1, 0)); err != nil {
		log.Printf("Failed to accept seeded loan: %v", err)
	}

	log.Println("Seed complete")
}

func sampleBooks() []entities.Book {
	return []entities.Book{
		{
			Title:      "The Go Programming Language",
			Author:     "Alan Donovan",
			Subject:    "Programming",
			ISBN:       "9780134190440",
			RackNumber: "RACK-A1",
		},
		{
			Title:      "Structure and Interpretation of Computer Programs",
			Author:     "Harold Abelson",
			Subject:    "Computer Science",
			ISBN:       "9780262510875",
			RackNumber: "RACK-A2",
		},
		{
			Title:      "The Design of Everyday Things",
			Author:     "Don Norman",
			Subject:    "Design",
			ISBN:       "9780465050659",
			RackNumber: "RACK-B1",
		},
		{
			Title:      "A Short History of Nearly Everything",
			Author:     "Bill Bryson",
			Subject:    "Science",
			ISBN:       "9780767908184",
			RackNumber: "RACK-B2",
		},
	}
}

func sampleUsers() []entities.User {
	return []entities.User{
		{
			Email:  "approved@example.com",
			Name:   "Approved Reader",
			Token:  "dev-user-token",
			Status: entities.UserStatusApproved,
		},
		{
			Email:  "pending@example.com",
			Name:   "Pending Reader",
			Status: entities.UserStatusPending,
		},
	}
}
