package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pokemonreview/src/core/domain"
	"pokemonreview/src/core/ports"
	"pokemonreview/src/infra/db"
)

var _ ports.Store = (*PostgresRepository)(nil)

// PostgreSQL error code for foreign_key_violation.
const foreignKeyViolation = "23503"

// PostgresRepository implements ports.Store using pgx.
type PostgresRepository struct {
	pg   *db.Postgres
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pg:   pg,
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pg.Health(ctx)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolation
	}
	return false
}

// Pokemon

func (r *PostgresRepository) CreatePokemon(ctx context.Context, p domain.Pokemon) (*domain.Pokemon, error) {
	const q = `
		INSERT INTO pokemon (name, type)
		VALUES ($1, $2)
		RETURNING id, name, type
	`
	var out domain.Pokemon
	if err := r.pool.QueryRow(ctx, q, p.Name, p.Type).Scan(&out.ID, &out.Name, &out.Type); err != nil {
		return nil, fmt.Errorf("failed to insert pokemon: %w", err)
	}
	return &out, nil
}

func (r *PostgresRepository) GetPokemonByID(ctx context.Context, id int64) (*domain.Pokemon, error) {
	const q = `
		SELECT id, name, type
		FROM pokemon
		WHERE id = $1
	`
	var out domain.Pokemon
	if err := r.pool.QueryRow(ctx, q, id).Scan(&out.ID, &out.Name, &out.Type); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("pokemon", id)
		}
		return nil, fmt.Errorf("failed to get pokemon: %w", err)
	}

	reviews, err := r.ListReviewsByPokemonID(ctx, id)
	if err != nil {
		return nil, err
	}
	out.Reviews = reviews
	return &out, nil
}

func (r *PostgresRepository) ListPokemon(ctx context.Context, page domain.PageRequest) (*domain.Page[domain.Pokemon], error) {
	const countQ = `SELECT COUNT(*) FROM pokemon`
	const listQ = `
		SELECT id, name, type
		FROM pokemon
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`

	out := &domain.Page[domain.Pokemon]{
		Items:    []domain.Pokemon{},
		PageNo:   page.PageNo,
		PageSize: page.PageSize,
	}

	// Count and page read from one snapshot so the envelope stays consistent.
	snapshot := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := r.pg.InTx(ctx, snapshot, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, countQ).Scan(&out.TotalElements); err != nil {
			return fmt.Errorf("failed to count pokemon: %w", err)
		}

		rows, err := tx.Query(ctx, listQ, page.PageSize, page.Offset())
		if err != nil {
			return fmt.Errorf("failed to list pokemon: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var p domain.Pokemon
			if err := rows.Scan(&p.ID, &p.Name, &p.Type); err != nil {
				return fmt.Errorf("failed to scan pokemon: %w", err)
			}
			out.Items = append(out.Items, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) UpdatePokemon(ctx context.Context, p domain.Pokemon) (*domain.Pokemon, error) {
	const q = `
		UPDATE pokemon
		SET name = $2, type = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, type
	`
	var out domain.Pokemon
	if err := r.pool.QueryRow(ctx, q, p.ID, p.Name, p.Type).Scan(&out.ID, &out.Name, &out.Type); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("pokemon", p.ID)
		}
		return nil, fmt.Errorf("failed to update pokemon: %w", err)
	}
	return &out, nil
}

// DeletePokemon removes the row; its reviews go with it through the
// ON DELETE CASCADE foreign key on reviews.pokemon_id.
func (r *PostgresRepository) DeletePokemon(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM pokemon WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pokemon: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("pokemon", id)
	}
	r.log.Debug("pokemon row deleted", "pokemon_id", id)
	return nil
}

// Reviews

func (r *PostgresRepository) CreateReview(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	const q = `
		INSERT INTO reviews (pokemon_id, title, content, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, pokemon_id, title, content, rating
	`
	var out domain.Review
	err := r.pool.QueryRow(ctx, q, rv.PokemonID, rv.Title, rv.Content, rv.Rating).
		Scan(&out.ID, &out.PokemonID, &out.Title, &out.Content, &out.Rating)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("pokemon", rv.PokemonID)
		}
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}
	return &out, nil
}

func (r *PostgresRepository) GetReviewByID(ctx context.Context, id int64) (*domain.Review, error) {
	const q = `
		SELECT id, pokemon_id, title, content, rating
		FROM reviews
		WHERE id = $1
	`
	var out domain.Review
	if err := r.pool.QueryRow(ctx, q, id).Scan(&out.ID, &out.PokemonID, &out.Title, &out.Content, &out.Rating); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("review", id)
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &out, nil
}

func (r *PostgresRepository) ListReviewsByPokemonID(ctx context.Context, pokemonID int64) ([]domain.Review, error) {
	const q = `
		SELECT id, pokemon_id, title, content, rating
		FROM reviews
		WHERE pokemon_id = $1
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, q, pokemonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.PokemonID, &rv.Title, &rv.Content, &rv.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}
	return reviews, nil
}

func (r *PostgresRepository) UpdateReview(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	const q = `
		UPDATE reviews
		SET title = $2, content = $3, rating = $4, updated_at = now()
		WHERE id = $1
		RETURNING id, pokemon_id, title, content, rating
	`
	var out domain.Review
	err := r.pool.QueryRow(ctx, q, rv.ID, rv.Title, rv.Content, rv.Rating).
		Scan(&out.ID, &out.PokemonID, &out.Title, &out.Content, &out.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("review", rv.ID)
		}
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return &out, nil
}

func (r *PostgresRepository) DeleteReview(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("review", id)
	}
	return nil
}
