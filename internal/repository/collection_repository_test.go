package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datafield/asset-library-backend/internal/entity"
)

func newMockRepo(t *testing.T) (CollectionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewCollectionRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCollectionRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	collection := &entity.Collection{
		ID:        uuid.Must(uuid.NewV4()),
		UID:       "cabc123",
		Name:      "Health Survey",
		AssetType: entity.AssetTypeCollection,
		OwnerID:   uuid.Must(uuid.NewV4()),
		Settings:  []byte(`{"organization":"Acme"}`),
		Tags:      pq.StringArray{"survey"},
	}

	mock.ExpectExec("INSERT INTO collections").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), collection)
	require.NoError(t, err)
	assert.False(t, collection.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepositoryGetByUID(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())
	now := time.Now()

	columns := []string{"id", "uid", "name", "asset_type", "owner_id", "settings", "tags", "public", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT \\* FROM collections WHERE uid = ").
		WithArgs("cabc123").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id.String(), "cabc123", "Health Survey", "collection", ownerID.String(),
				[]byte(`{"organization":"Acme"}`), "{survey,health}", true, now, now))

	collection, err := repo.GetByUID(context.Background(), "cabc123")
	require.NoError(t, err)
	require.NotNil(t, collection)
	assert.Equal(t, "Health Survey", collection.Name)
	assert.Equal(t, []string{"survey", "health"}, []string(collection.Tags))
	assert.True(t, collection.Public)

	settings, err := collection.ParseSettings()
	require.NoError(t, err)
	assert.Equal(t, "Acme", settings.Organization)
}

func TestCollectionRepositoryGetByUIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT \\* FROM collections WHERE uid = ").
		WithArgs("cmissing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	collection, err := repo.GetByUID(context.Background(), "cmissing")
	require.NoError(t, err)
	assert.Nil(t, collection)
}

func TestCollectionRepositoryGetByFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	ownerID := uuid.Must(uuid.NewV4())
	tag := "health"
	public := true

	mock.ExpectQuery(`SELECT \* FROM collections WHERE 1=1 AND owner_id = \$1 AND \$2 = ANY\(tags\) AND public = \$3 ORDER BY created_at DESC LIMIT \$4`).
		WithArgs(ownerID, tag, public, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByFilter(context.Background(), entity.CollectionFilter{
		OwnerID: &ownerID,
		Tag:     &tag,
		Public:  &public,
		Limit:   10,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepositoryDeleteNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM collections WHERE uid = ").
		WithArgs("cmissing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "cmissing")
	require.Error(t, err)
	assert.Equal(t, "collection not found", err.Error())
}

func TestCollectionRepositoryUpdateNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE collections").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Collection{UID: "cmissing"})
	require.Error(t, err)
	assert.Equal(t, "collection not found", err.Error())
}

func TestCollectionRepositoryListTags(t *testing.T) {
	repo, mock := newMockRepo(t)

	ownerID := uuid.Must(uuid.NewV4())
	mock.ExpectQuery("SELECT t.name, COUNT\\(\\*\\) AS count").
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"name", "count"}).
			AddRow("health", 3).
			AddRow("survey", 1))

	tags, err := repo.ListTags(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, entity.TagCount{Name: "health", Count: 3}, tags[0])
}
