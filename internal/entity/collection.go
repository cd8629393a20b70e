package entity

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid"
	"github.com/lib/pq"
)

const AssetTypeCollection = "collection"

// OptionPair is one entry of an enumerated reference list (countries,
// sectors) as served to clients: a machine value plus a display label.
type OptionPair struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CollectionSettings is the structured form of the settings blob attached
// to a collection. The draft workflow treats the blob as opaque; the
// server unpacks it to index tags and enforce public readiness.
type CollectionSettings struct {
	Organization string      `json:"organization"`
	Country      *OptionPair `json:"country,omitempty"`
	Sector       *OptionPair `json:"sector,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
	Description  string      `json:"description,omitempty"`
}

type Collection struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UID       string          `json:"uid" db:"uid"`
	Name      string          `json:"name" db:"name"`
	AssetType string          `json:"asset_type" db:"asset_type"`
	OwnerID   uuid.UUID       `json:"owner_id" db:"owner_id"`
	Settings  json.RawMessage `json:"settings" db:"settings"`
	Tags      pq.StringArray  `json:"tags" db:"tags"`
	Public    bool            `json:"public" db:"public"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// ParseSettings unpacks the settings blob. A missing blob yields zero
// settings rather than an error.
func (c *Collection) ParseSettings() (CollectionSettings, error) {
	var settings CollectionSettings
	if len(c.Settings) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(c.Settings, &settings); err != nil {
		return CollectionSettings{}, err
	}
	return settings, nil
}

type CollectionFilter struct {
	OwnerID   *uuid.UUID
	AssetType *string
	Tag       *string
	Public    *bool
	Limit     int
	Offset    int
}

type TagCount struct {
	Name  string `json:"name" db:"name"`
	Count int    `json:"count" db:"count"`
}
