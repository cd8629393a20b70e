package draft

import "strings"

// PublicReadiness is the business rule gating whether a collection may be
// marked publicly discoverable. It is a pure function: it returns an empty
// map when the draft is ready, or one message per missing field.
func PublicReadiness(name, organization string, sector *string) ErrorMap {
	errs := ErrorMap{}

	if strings.TrimSpace(name) == "" {
		errs["name"] = "Name is required to make a collection public"
	}
	if strings.TrimSpace(organization) == "" {
		errs["organization"] = "Organization is required to make a collection public"
	}
	if sector == nil || strings.TrimSpace(*sector) == "" {
		errs["sector"] = "Sector is required to make a collection public"
	}

	return errs
}
