package response

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid"
)

type Collection struct {
	ID        uuid.UUID       `json:"id"`
	UID       string          `json:"uid"`
	Name      string          `json:"name"`
	AssetType string          `json:"asset_type"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Settings  json.RawMessage `json:"settings"`
	Tags      []string        `json:"tags"`
	Public    bool            `json:"public"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type CollectionList struct {
	Collections []Collection `json:"collections"`
	Total       int          `json:"total"`
}

type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
