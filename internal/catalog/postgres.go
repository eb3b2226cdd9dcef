package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the read side shared by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Execer is the write side shared by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](ctx context.Context, q Querier, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := q.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryMany] Query error: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryMany] Scan error: %v", err)
	}
	return results, err
}

// LoadPostgres reads the meals and workouts tables created by the db/
// migrations, in catalog (position) order.
func LoadPostgres(ctx context.Context, q Querier) (*Catalog, error) {
	meals, err := queryMany[Meal](ctx, q,
		`SELECT id, name, calories, protein_g, carbs_g, fat_g, link, tags
		 FROM meals ORDER BY position, id`, nil)
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}
	workouts, err := queryMany[Workout](ctx, q,
		`SELECT id, title, goal, level, blocks
		 FROM workouts ORDER BY position, id`, nil)
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}
	return New(meals, workouts)
}

// StorePostgres replaces the contents of the meals and workouts tables with
// c. Callers should pass a transaction so a failed write leaves the previous
// catalog in place.
func StorePostgres(ctx context.Context, db Execer, c *Catalog) error {
	if _, err := db.Exec(ctx, "DELETE FROM meals"); err != nil {
		return fmt.Errorf("clear meals: %w", err)
	}
	if _, err := db.Exec(ctx, "DELETE FROM workouts"); err != nil {
		return fmt.Errorf("clear workouts: %w", err)
	}

	for i, m := range c.Meals() {
		_, err := db.Exec(ctx,
			`INSERT INTO meals (id, position, name, calories, protein_g, carbs_g, fat_g, link, tags)
			 VALUES (@id, @position, @name, @calories, @proteinG, @carbsG, @fatG, @link, @tags)`,
			pgx.NamedArgs{
				"id": m.ID, "position": i, "name": m.Name, "calories": m.Calories,
				"proteinG": m.ProteinG, "carbsG": m.CarbsG, "fatG": m.FatG,
				"link": m.Link, "tags": m.Tags,
			})
		if err != nil {
			return fmt.Errorf("insert meal %q: %w", m.ID, err)
		}
	}

	for i, w := range c.Workouts() {
		_, err := db.Exec(ctx,
			`INSERT INTO workouts (id, position, title, goal, level, blocks)
			 VALUES (@id, @position, @title, @goal, @level, @blocks)`,
			pgx.NamedArgs{
				"id": w.ID, "position": i, "title": w.Title,
				"goal": w.Goal, "level": w.Level, "blocks": w.Blocks,
			})
		if err != nil {
			return fmt.Errorf("insert workout %q: %w", w.ID, err)
		}
	}
	return nil
}
