// CLI tool that writes a meal/workout catalog into Postgres, replacing the
// current contents of the meals and workouts tables.
// Usage: go run ./cmd/seed-catalog [dir]
// With no dir the catalog embedded in the server binary is used; otherwise
// dir must hold meals.yaml and workouts.yaml.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"lg/fitplan-go-api/internal/catalog"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	var (
		cat *catalog.Catalog
		err error
	)
	if len(os.Args) > 1 {
		cat, err = catalog.LoadDir(os.Args[1])
	} else {
		cat, err = catalog.LoadEmbedded()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	err = pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
		return catalog.StorePostgres(ctx, tx, cat)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nCatalog seeded successfully!\n")
	fmt.Printf("  Meals:    %d\n", len(cat.Meals()))
	fmt.Printf("  Workouts: %d\n", len(cat.Workouts()))
}
