package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/datafield/asset-library-backend/internal/entity"
)

type CollectionRepository interface {
	Create(ctx context.Context, collection *entity.Collection) error
	GetByUID(ctx context.Context, uid string) (*entity.Collection, error)
	GetByFilter(ctx context.Context, filter entity.CollectionFilter) ([]entity.Collection, error)
	CountByFilter(ctx context.Context, filter entity.CollectionFilter) (int, error)
	Update(ctx context.Context, collection *entity.Collection) error
	Delete(ctx context.Context, uid string) error
	ListTags(ctx context.Context, ownerID uuid.UUID) ([]entity.TagCount, error)
}

type collectionRepository struct {
	db *sqlx.DB
}

func NewCollectionRepository(db *sqlx.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	collection.CreatedAt = time.Now()
	collection.UpdatedAt = time.Now()

	query := `
		INSERT INTO collections (id, uid, name, asset_type, owner_id, settings, tags, public, created_at, updated_at)
		VALUES (:id, :uid, :name, :asset_type, :owner_id, :settings, :tags, :public, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, collection)
	return err
}

func (r *collectionRepository) GetByUID(ctx context.Context, uid string) (*entity.Collection, error) {
	var collection entity.Collection
	query := `SELECT * FROM collections WHERE uid = $1`

	err := r.db.GetContext(ctx, &collection, query, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &collection, nil
}

func (r *collectionRepository) GetByFilter(ctx context.Context, filter entity.CollectionFilter) ([]entity.Collection, error) {
	query := "SELECT * FROM collections WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.OwnerID != nil {
		query += fmt.Sprintf(" AND owner_id = $%d", argIndex)
		args = append(args, *filter.OwnerID)
		argIndex++
	}

	if filter.AssetType != nil {
		query += fmt.Sprintf(" AND asset_type = $%d", argIndex)
		args = append(args, *filter.AssetType)
		argIndex++
	}

	if filter.Tag != nil {
		query += fmt.Sprintf(" AND $%d = ANY(tags)", argIndex)
		args = append(args, *filter.Tag)
		argIndex++
	}

	if filter.Public != nil {
		query += fmt.Sprintf(" AND public = $%d", argIndex)
		args = append(args, *filter.Public)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
		argIndex++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filter.Offset)
		argIndex++
	}

	var collections []entity.Collection
	err := r.db.SelectContext(ctx, &collections, query, args...)
	if err != nil {
		return nil, err
	}

	return collections, nil
}

func (r *collectionRepository) CountByFilter(ctx context.Context, filter entity.CollectionFilter) (int, error) {
	query := "SELECT COUNT(*) FROM collections WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.OwnerID != nil {
		query += fmt.Sprintf(" AND owner_id = $%d", argIndex)
		args = append(args, *filter.OwnerID)
		argIndex++
	}

	if filter.AssetType != nil {
		query += fmt.Sprintf(" AND asset_type = $%d", argIndex)
		args = append(args, *filter.AssetType)
		argIndex++
	}

	if filter.Tag != nil {
		query += fmt.Sprintf(" AND $%d = ANY(tags)", argIndex)
		args = append(args, *filter.Tag)
		argIndex++
	}

	if filter.Public != nil {
		query += fmt.Sprintf(" AND public = $%d", argIndex)
		args = append(args, *filter.Public)
		argIndex++
	}

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *collectionRepository) Update(ctx context.Context, collection *entity.Collection) error {
	collection.UpdatedAt = time.Now()

	query := `
		UPDATE collections
		SET name = :name, settings = :settings, tags = :tags, public = :public, updated_at = :updated_at
		WHERE uid = :uid`

	result, err := r.db.NamedExecContext(ctx, query, collection)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("collection not found")
	}

	return nil
}

func (r *collectionRepository) Delete(ctx context.Context, uid string) error {
	query := `DELETE FROM collections WHERE uid = $1`
	result, err := r.db.ExecContext(ctx, query, uid)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("collection not found")
	}

	return nil
}

func (r *collectionRepository) ListTags(ctx context.Context, ownerID uuid.UUID) ([]entity.TagCount, error) {
	query := `
		SELECT t.name, COUNT(*) AS count
		FROM collections c, unnest(c.tags) AS t(name)
		WHERE c.owner_id = $1
		GROUP BY t.name
		ORDER BY count DESC, t.name ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []entity.TagCount
	for rows.Next() {
		var tag entity.TagCount
		if err := rows.Scan(&tag.Name, &tag.Count); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}
