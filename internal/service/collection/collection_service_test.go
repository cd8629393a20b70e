package collection

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datafield/asset-library-backend/internal/entity"
	"github.com/datafield/asset-library-backend/internal/model/request"
	"github.com/datafield/asset-library-backend/internal/repository"
)

type fakeCollectionRepo struct {
	created   *entity.Collection
	createErr error

	stored map[string]*entity.Collection

	updated   *entity.Collection
	updateErr error

	deletedUID string
	deleteErr  error

	filter entity.CollectionFilter
	listed []entity.Collection

	tagCounts []entity.TagCount
}

func (f *fakeCollectionRepo) Create(ctx context.Context, collection *entity.Collection) error {
	f.created = collection
	return f.createErr
}

func (f *fakeCollectionRepo) GetByUID(ctx context.Context, uid string) (*entity.Collection, error) {
	return f.stored[uid], nil
}

func (f *fakeCollectionRepo) GetByFilter(ctx context.Context, filter entity.CollectionFilter) ([]entity.Collection, error) {
	f.filter = filter
	return f.listed, nil
}

func (f *fakeCollectionRepo) CountByFilter(ctx context.Context, filter entity.CollectionFilter) (int, error) {
	return len(f.listed), nil
}

func (f *fakeCollectionRepo) Update(ctx context.Context, collection *entity.Collection) error {
	f.updated = collection
	return f.updateErr
}

func (f *fakeCollectionRepo) Delete(ctx context.Context, uid string) error {
	f.deletedUID = uid
	return f.deleteErr
}

func (f *fakeCollectionRepo) ListTags(ctx context.Context, ownerID uuid.UUID) ([]entity.TagCount, error) {
	return f.tagCounts, nil
}

// newUserRepo returns a sqlmock-backed user repository that knows one user.
func newUserRepo(t *testing.T, ownerID uuid.UUID, times int) *repository.UserRepository {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for i := 0; i < times; i++ {
		mock.ExpectQuery("SELECT id, username, api_token FROM users").
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "api_token"}).
				AddRow(ownerID.String(), "sam", "token"))
	}

	return repository.NewUserRepository(sqlx.NewDb(db, "sqlmock"))
}

func settingsJSON(t *testing.T, settings entity.CollectionSettings) json.RawMessage {
	t.Helper()
	blob, err := json.Marshal(settings)
	require.NoError(t, err)
	return blob
}

func TestCreateCollection(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	repo := &fakeCollectionRepo{}
	svc := NewCollectionService(repo, newUserRepo(t, ownerID, 1))

	created, err := svc.Create(context.Background(), &request.CreateCollection{
		Name: "Health Survey",
		Settings: settingsJSON(t, entity.CollectionSettings{
			Organization: "Acme",
			Sector:       &entity.OptionPair{Value: "health", Label: "Health"},
			Tags:         []string{"survey", "survey", " health "},
			Description:  "Quarterly household survey",
		}),
	}, ownerID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.UID, "c"), "uid %q should carry the collection prefix", created.UID)
	assert.Equal(t, "Health Survey", created.Name)
	assert.Equal(t, entity.AssetTypeCollection, created.AssetType)
	assert.Equal(t, ownerID, created.OwnerID)
	assert.Equal(t, []string{"survey", "health"}, created.Tags)

	require.NotNil(t, repo.created)
	assert.NotEqual(t, uuid.Nil, repo.created.ID)
	assert.Equal(t, []string{"survey", "health"}, []string(repo.created.Tags))
}

func TestCreateCollectionUnknownOwner(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	repo := &fakeCollectionRepo{}
	// Zero expectations: the user lookup fails and create never happens.
	svc := NewCollectionService(repo, newUserRepo(t, ownerID, 0))

	_, err := svc.Create(context.Background(), &request.CreateCollection{Name: "Health Survey"}, ownerID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner not found")
	assert.Nil(t, repo.created)
}

func TestCreateCollectionRejectsUnsupportedAssetType(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	repo := &fakeCollectionRepo{}
	svc := NewCollectionService(repo, newUserRepo(t, ownerID, 1))

	_, err := svc.Create(context.Background(), &request.CreateCollection{
		Name:      "Health Survey",
		AssetType: "survey",
	}, ownerID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported asset type")
}

func TestCreatePublicCollectionEnforcesReadiness(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	repo := &fakeCollectionRepo{}
	svc := NewCollectionService(repo, newUserRepo(t, ownerID, 1))

	_, err := svc.Create(context.Background(), &request.CreateCollection{
		Name:   "Health Survey",
		Public: true,
		Settings: settingsJSON(t, entity.CollectionSettings{
			Organization: "Acme",
			// sector missing
		}),
	}, ownerID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready to be public")
	assert.Nil(t, repo.created)
}

func TestGetByUIDAccess(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	strangerID := uuid.Must(uuid.NewV4())

	private := &entity.Collection{UID: "cpriv", Name: "Private", OwnerID: ownerID}
	public := &entity.Collection{UID: "cpub", Name: "Public", OwnerID: ownerID, Public: true}
	repo := &fakeCollectionRepo{stored: map[string]*entity.Collection{
		"cpriv": private,
		"cpub":  public,
	}}
	svc := NewCollectionService(repo, nil)

	got, err := svc.GetByUID(context.Background(), "cpriv", ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Private", got.Name)

	_, err = svc.GetByUID(context.Background(), "cpriv", strangerID)
	require.Error(t, err)
	assert.Equal(t, "access denied", err.Error())

	got, err = svc.GetByUID(context.Background(), "cpub", strangerID)
	require.NoError(t, err)
	assert.Equal(t, "Public", got.Name)

	_, err = svc.GetByUID(context.Background(), "cmissing", ownerID)
	require.Error(t, err)
	assert.Equal(t, "collection not found", err.Error())
}

func TestListScopesToOwnerAndClampsLimit(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	repo := &fakeCollectionRepo{}
	svc := NewCollectionService(repo, nil)

	_, err := svc.List(context.Background(), entity.CollectionFilter{}, ownerID)
	require.NoError(t, err)
	require.NotNil(t, repo.filter.OwnerID)
	assert.Equal(t, ownerID, *repo.filter.OwnerID)
	assert.Equal(t, 50, repo.filter.Limit)

	_, err = svc.List(context.Background(), entity.CollectionFilter{Limit: 1000}, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 200, repo.filter.Limit)
}

func TestUpdateCollectionOwnerOnly(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	strangerID := uuid.Must(uuid.NewV4())
	repo := &fakeCollectionRepo{stored: map[string]*entity.Collection{
		"cabc": {UID: "cabc", Name: "Old name", OwnerID: ownerID},
	}}
	svc := NewCollectionService(repo, nil)

	newName := "New name"
	_, err := svc.Update(context.Background(), "cabc", &request.UpdateCollection{Name: &newName}, strangerID)
	require.Error(t, err)
	assert.Equal(t, "only the owner can update a collection", err.Error())

	updated, err := svc.Update(context.Background(), "cabc", &request.UpdateCollection{Name: &newName}, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "New name", repo.updated.Name)
}

func TestUpdateEnforcesReadinessWhenMakingPublic(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	repo := &fakeCollectionRepo{stored: map[string]*entity.Collection{
		"cabc": {UID: "cabc", Name: "Survey", OwnerID: ownerID},
	}}
	svc := NewCollectionService(repo, nil)

	public := true
	_, err := svc.Update(context.Background(), "cabc", &request.UpdateCollection{Public: &public}, ownerID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready to be public")
}

func TestDeleteCollectionOwnerOnly(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	strangerID := uuid.Must(uuid.NewV4())
	repo := &fakeCollectionRepo{stored: map[string]*entity.Collection{
		"cabc": {UID: "cabc", OwnerID: ownerID},
	}}
	svc := NewCollectionService(repo, nil)

	err := svc.Delete(context.Background(), "cabc", strangerID)
	require.Error(t, err)
	assert.Equal(t, "only the owner can delete a collection", err.Error())

	require.NoError(t, svc.Delete(context.Background(), "cabc", ownerID))
	assert.Equal(t, "cabc", repo.deletedUID)
}

func TestListTags(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	repo := &fakeCollectionRepo{tagCounts: []entity.TagCount{
		{Name: "health", Count: 3},
		{Name: "survey", Count: 1},
	}}
	svc := NewCollectionService(repo, nil)

	tags, err := svc.ListTags(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "health", tags[0].Name)
	assert.Equal(t, 3, tags[0].Count)
}
