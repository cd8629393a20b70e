package request

import "encoding/json"

type CreateCollection struct {
	Name      string          `json:"name" binding:"required" validate:"required,min=1,max=255"`
	AssetType string          `json:"asset_type" validate:"omitempty,oneof=collection"`
	Settings  json.RawMessage `json:"settings"`
	Public    bool            `json:"public"`
}

type UpdateCollection struct {
	Name     *string         `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Settings json.RawMessage `json:"settings,omitempty"`
	Public   *bool           `json:"public,omitempty"`
}
