// Command seed creates a demo user with a spread of random transactions so
// the API has data to serve during local development.
package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/bxcodec/faker/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/Saikrishnach4/financial/internal/transactions"
)

var categories = []string{"Food", "Rent", "Travel", "Utilities", "Entertainment", "Health", "Shopping"}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()

	email := strings.ToLower(faker.Email())
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("error hashing password: %v", err)
	}

	var userID string
	err = pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, full_name)
		 VALUES ($1, $2, $3)
		 RETURNING id::text`,
		email, string(hash), faker.Name(),
	).Scan(&userID)
	if err != nil {
		log.Fatalf("error creating demo user: %v", err)
	}

	repo := transactions.NewRepo(pool)
	now := time.Now().UTC()

	// A salary per month plus a handful of expenses spread over 90 days.
	for m := 0; m < 3; m++ {
		salary := transactions.Transaction{
			Date:        time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -m, 0),
			Category:    "Salary",
			Amount:      decimal.NewFromInt(int64(2500 + rand.Intn(1000))),
			Type:        transactions.TypeIncome,
			Description: "Monthly salary",
		}
		if _, err := repo.Create(ctx, userID, salary); err != nil {
			log.Fatalf("error seeding income: %v", err)
		}
	}
	for i := 0; i < 40; i++ {
		exp := transactions.Transaction{
			Date:        now.AddDate(0, 0, -rand.Intn(90)),
			Category:    categories[rand.Intn(len(categories))],
			Amount:      decimal.NewFromFloat(float64(rand.Intn(15000)+100) / 100),
			Type:        transactions.TypeExpense,
			Description: faker.Sentence(),
		}
		if _, err := repo.Create(ctx, userID, exp); err != nil {
			log.Fatalf("error seeding expense: %v", err)
		}
	}

	log.Printf("Seeded user %s (password: password123) with demo transactions", email)
}
