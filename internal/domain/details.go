package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DetailsKind discriminates the type-specific attributes of a listing.
type DetailsKind string

const (
	KindNone        DetailsKind = ""
	KindResidential DetailsKind = "residential"
	KindLand        DetailsKind = "land"
	KindCommercial  DetailsKind = "commercial"
)

// KindFor returns the only details variant a property type accepts.
func KindFor(t PropertyType) DetailsKind {
	switch t {
	case TypeHouse, TypeApartment:
		return KindResidential
	case TypeLand:
		return KindLand
	case TypeOffice, TypeCommercial:
		return KindCommercial
	default:
		return KindNone
	}
}

type ResidentialDetails struct {
	Bedrooms  int  `json:"bedrooms"`
	Bathrooms int  `json:"bathrooms"`
	Parking   int  `json:"parking"`
	HasGarden bool `json:"has_garden"`
	Floors    int  `json:"floors"`
}

type LandDetails struct {
	LandSize      float64 `json:"land_size"`
	ZoningType    string  `json:"zoning_type"`
	HasRoadAccess bool    `json:"has_road_access"`
}

type CommercialDetails struct {
	OfficeSpace         float64 `json:"office_space"`
	ParkingCapacity     int     `json:"parking_capacity"`
	BusinessTypeAllowed string  `json:"business_type_allowed"`
}

// PropertyDetails is a tagged variant: at most one member is set, and it
// must be the one KindFor returns for the listing's type.
type PropertyDetails struct {
	Residential *ResidentialDetails `json:"residential,omitempty"`
	Land        *LandDetails        `json:"land,omitempty"`
	Commercial  *CommercialDetails  `json:"commercial,omitempty"`
}

func (d PropertyDetails) Kind() (DetailsKind, error) {
	kind := KindNone
	set := 0
	if d.Residential != nil {
		kind = KindResidential
		set++
	}
	if d.Land != nil {
		kind = KindLand
		set++
	}
	if d.Commercial != nil {
		kind = KindCommercial
		set++
	}
	if set > 1 {
		return KindNone, NewValidationError("details", "only one details variant may be set")
	}
	return kind, nil
}

func (d PropertyDetails) IsZero() bool {
	return d.Residential == nil && d.Land == nil && d.Commercial == nil
}

func (d PropertyDetails) Validate(t PropertyType) error {
	kind, err := d.Kind()
	if err != nil {
		return err
	}
	if kind == KindNone {
		return nil
	}
	if want := KindFor(t); kind != want {
		return NewValidationError("details", fmt.Sprintf("%s details do not apply to a %s listing", kind, t))
	}

	switch kind {
	case KindResidential:
		r := d.Residential
		if r.Bedrooms < 0 || r.Bathrooms < 0 || r.Parking < 0 || r.Floors < 0 {
			return NewValidationError("details", "residential counts must not be negative")
		}
	case KindLand:
		if d.Land.LandSize < 0 {
			return NewValidationError("details", "land_size must not be negative")
		}
	case KindCommercial:
		if d.Commercial.OfficeSpace < 0 || d.Commercial.ParkingCapacity < 0 {
			return NewValidationError("details", "commercial sizes must not be negative")
		}
	}
	return nil
}

func (d PropertyDetails) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *PropertyDetails) Scan(src any) error {
	raw, err := textValue(src)
	if err != nil {
		return err
	}
	*d = PropertyDetails{}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, d); err != nil {
		return fmt.Errorf("decoding property details: %w", err)
	}
	return nil
}
