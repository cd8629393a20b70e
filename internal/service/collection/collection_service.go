package collection

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/lib/pq"

	"github.com/datafield/asset-library-backend/internal/draft"
	"github.com/datafield/asset-library-backend/internal/entity"
	"github.com/datafield/asset-library-backend/internal/model/request"
	"github.com/datafield/asset-library-backend/internal/model/response"
	"github.com/datafield/asset-library-backend/internal/repository"
	"github.com/datafield/asset-library-backend/pkg/utils"
)

type CollectionService interface {
	Create(ctx context.Context, req *request.CreateCollection, ownerID uuid.UUID) (response.Collection, error)
	GetByUID(ctx context.Context, uid string, userID uuid.UUID) (response.Collection, error)
	List(ctx context.Context, filter entity.CollectionFilter, userID uuid.UUID) (response.CollectionList, error)
	Update(ctx context.Context, uid string, req *request.UpdateCollection, userID uuid.UUID) (response.Collection, error)
	Delete(ctx context.Context, uid string, userID uuid.UUID) error
	ListTags(ctx context.Context, userID uuid.UUID) ([]response.Tag, error)
}

type collectionService struct {
	repo     repository.CollectionRepository
	userRepo *repository.UserRepository
}

func NewCollectionService(repo repository.CollectionRepository, userRepo *repository.UserRepository) CollectionService {
	return &collectionService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *collectionService) Create(ctx context.Context, req *request.CreateCollection, ownerID uuid.UUID) (response.Collection, error) {
	_, err := s.userRepo.GetUserById(ownerID)
	if err != nil {
		return response.Collection{}, fmt.Errorf("owner not found: %w", err)
	}

	assetType := req.AssetType
	if assetType == "" {
		assetType = entity.AssetTypeCollection
	}
	if assetType != entity.AssetTypeCollection {
		return response.Collection{}, fmt.Errorf("unsupported asset type: %s", assetType)
	}

	collection := &entity.Collection{
		UID:       utils.NewCollectionUID(),
		Name:      req.Name,
		AssetType: assetType,
		OwnerID:   ownerID,
		Settings:  req.Settings,
		Public:    req.Public,
	}

	settings, err := collection.ParseSettings()
	if err != nil {
		return response.Collection{}, fmt.Errorf("invalid settings: %w", err)
	}
	collection.Tags = pq.StringArray(draft.NormalizeTags(settings.Tags))

	// The readiness rule is enforced again server-side so a client that
	// skips draft validation cannot publish an incomplete collection.
	if req.Public {
		var sector *string
		if settings.Sector != nil {
			sector = &settings.Sector.Value
		}
		if errs := draft.PublicReadiness(req.Name, settings.Organization, sector); len(errs) > 0 {
			return response.Collection{}, fmt.Errorf("collection is not ready to be public: %v", errs)
		}
	}

	collection.ID, err = uuid.NewV4()
	if err != nil {
		return response.Collection{}, fmt.Errorf("failed to generate collection ID: %w", err)
	}

	if err := s.repo.Create(ctx, collection); err != nil {
		return response.Collection{}, fmt.Errorf("failed to create collection: %w", err)
	}

	return toResponse(collection), nil
}

func (s *collectionService) GetByUID(ctx context.Context, uid string, userID uuid.UUID) (response.Collection, error) {
	collection, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return response.Collection{}, fmt.Errorf("failed to get collection: %w", err)
	}
	if collection == nil {
		return response.Collection{}, fmt.Errorf("collection not found")
	}

	if collection.OwnerID != userID && !collection.Public {
		return response.Collection{}, fmt.Errorf("access denied")
	}

	return toResponse(collection), nil
}

func (s *collectionService) List(ctx context.Context, filter entity.CollectionFilter, userID uuid.UUID) (response.CollectionList, error) {
	// Listings are always owner-scoped; public browsing happens through
	// GetByUID.
	filter.OwnerID = &userID

	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}

	collections, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return response.CollectionList{}, fmt.Errorf("failed to list collections: %w", err)
	}

	total, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		return response.CollectionList{}, fmt.Errorf("failed to count collections: %w", err)
	}

	list := response.CollectionList{
		Collections: make([]response.Collection, len(collections)),
		Total:       total,
	}
	for i := range collections {
		list.Collections[i] = toResponse(&collections[i])
	}

	return list, nil
}

func (s *collectionService) Update(ctx context.Context, uid string, req *request.UpdateCollection, userID uuid.UUID) (response.Collection, error) {
	collection, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return response.Collection{}, fmt.Errorf("failed to get collection: %w", err)
	}
	if collection == nil {
		return response.Collection{}, fmt.Errorf("collection not found")
	}

	if collection.OwnerID != userID {
		return response.Collection{}, fmt.Errorf("only the owner can update a collection")
	}

	if req.Name != nil {
		collection.Name = *req.Name
	}
	if req.Settings != nil {
		collection.Settings = req.Settings
	}
	if req.Public != nil {
		collection.Public = *req.Public
	}

	settings, err := collection.ParseSettings()
	if err != nil {
		return response.Collection{}, fmt.Errorf("invalid settings: %w", err)
	}
	collection.Tags = pq.StringArray(draft.NormalizeTags(settings.Tags))

	if collection.Public {
		var sector *string
		if settings.Sector != nil {
			sector = &settings.Sector.Value
		}
		if errs := draft.PublicReadiness(collection.Name, settings.Organization, sector); len(errs) > 0 {
			return response.Collection{}, fmt.Errorf("collection is not ready to be public: %v", errs)
		}
	}

	if err := s.repo.Update(ctx, collection); err != nil {
		return response.Collection{}, fmt.Errorf("failed to update collection: %w", err)
	}

	return toResponse(collection), nil
}

func (s *collectionService) Delete(ctx context.Context, uid string, userID uuid.UUID) error {
	collection, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return fmt.Errorf("failed to get collection: %w", err)
	}
	if collection == nil {
		return fmt.Errorf("collection not found")
	}

	if collection.OwnerID != userID {
		return fmt.Errorf("only the owner can delete a collection")
	}

	return s.repo.Delete(ctx, uid)
}

func (s *collectionService) ListTags(ctx context.Context, userID uuid.UUID) ([]response.Tag, error) {
	counts, err := s.repo.ListTags(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	tags := make([]response.Tag, len(counts))
	for i, count := range counts {
		tags[i] = response.Tag{Name: count.Name, Count: count.Count}
	}

	return tags, nil
}

func toResponse(collection *entity.Collection) response.Collection {
	return response.Collection{
		ID:        collection.ID,
		UID:       collection.UID,
		Name:      collection.Name,
		AssetType: collection.AssetType,
		OwnerID:   collection.OwnerID,
		Settings:  collection.Settings,
		Tags:      []string(collection.Tags),
		Public:    collection.Public,
		CreatedAt: collection.CreatedAt,
		UpdatedAt: collection.UpdatedAt,
	}
}
