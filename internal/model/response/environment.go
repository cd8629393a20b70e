package response

import "github.com/datafield/asset-library-backend/internal/entity"

type Environment struct {
	AvailableCountries []entity.OptionPair `json:"available_countries"`
	AvailableSectors   []entity.OptionPair `json:"available_sectors"`
}
