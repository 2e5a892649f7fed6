// Command seed-demo populates a development database with demo users and
// exercise logs.
//
// Usage:
//
//	go run ./scripts/seed-demo.go -database-url postgres://... -users 3 -entries 10
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/oklog/ulid/v2"
)

var demoActivities = []string{
	"morning run",
	"swimming",
	"cycling",
	"yoga",
	"weight training",
	"rowing",
	"hiking",
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		userCount   = flag.Int("users", 3, "Number of demo users to create")
		entryCount  = flag.Int("entries", 10, "Exercise entries per user")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Fprintln(os.Stderr, "ping database:", err)
		os.Exit(1)
	}

	now := time.Now().UTC()

	for i := 0; i < *userCount; i++ {
		userID := uuid.New().String()
		username := fmt.Sprintf("demo-user-%d-%d", i+1, now.UnixNano())

		_, err := db.Exec(
			`INSERT INTO users (id, username, created_at) VALUES ($1, $2, $3)`,
			userID, username, now,
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, "insert user:", err)
			os.Exit(1)
		}

		for j := 0; j < *entryCount; j++ {
			day := now.AddDate(0, 0, -rand.Intn(90))
			date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

			_, err := db.Exec(
				`INSERT INTO exercises (id, user_id, description, duration, exercise_date, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				ulid.Make().String(),
				userID,
				demoActivities[rand.Intn(len(demoActivities))],
				10+rand.Intn(110),
				date,
				now.Add(time.Duration(j)*time.Millisecond),
			)
			if err != nil {
				fmt.Fprintln(os.Stderr, "insert exercise:", err)
				os.Exit(1)
			}
		}

		fmt.Printf("seeded %s with %d entries (%s)\n", username, *entryCount, userID)
	}
}
