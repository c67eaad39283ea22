package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeLand       PropertyType = "land"
	TypeApartment  PropertyType = "apartment"
	TypeOffice     PropertyType = "office"
	TypeCommercial PropertyType = "commercial"
)

func (t PropertyType) IsValid() bool {
	switch t {
	case TypeHouse, TypeLand, TypeApartment, TypeOffice, TypeCommercial:
		return true
	default:
		return false
	}
}

type SaleStatus string

const (
	SaleStatusForSale SaleStatus = "for sale"
	SaleStatusForRent SaleStatus = "for rent"
	SaleStatusSold    SaleStatus = "sold"
)

func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusForSale, SaleStatusForRent, SaleStatusSold:
		return true
	default:
		return false
	}
}

type Property struct {
	ID           int64           `json:"id" db:"id"`
	Title        string          `json:"title" db:"title"`
	Description  string          `json:"description" db:"description"`
	Price        float64         `json:"price" db:"price"`
	Location     string          `json:"location" db:"location"`
	Type         PropertyType    `json:"type" db:"type"`
	Status       SaleStatus      `json:"status" db:"status"`
	Images       StringList      `json:"images" db:"images"`
	Details      PropertyDetails `json:"details" db:"details"`
	PhoneContact string          `json:"phone_contact" db:"phone_contact"`
	EmailContact string          `json:"email_contact" db:"email_contact"`
	SellerID     int64           `json:"seller_id" db:"seller_id"`
	IsApproved   bool            `json:"is_approved" db:"is_approved"`
	IsFeatured   bool            `json:"is_featured" db:"is_featured"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// PropertyWithSeller is the detail view. Seller fields are nil when the
// seller row no longer exists.
type PropertyWithSeller struct {
	Property
	SellerName  *string `json:"seller_name" db:"seller_name"`
	SellerEmail *string `json:"seller_email" db:"seller_email"`
}

type CreatePropertyInput struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Price        float64          `json:"price"`
	Location     string           `json:"location"`
	Type         PropertyType     `json:"type"`
	Status       SaleStatus       `json:"status"`
	Images       []string         `json:"images"`
	Details      *PropertyDetails `json:"details,omitempty"`
	PhoneContact string           `json:"phone_contact"`
	EmailContact string           `json:"email_contact"`
}

type UpdatePropertyInput struct {
	Title        *string          `json:"title,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Price        *float64         `json:"price,omitempty"`
	Location     *string          `json:"location,omitempty"`
	Type         *PropertyType    `json:"type,omitempty"`
	Status       *SaleStatus      `json:"status,omitempty"`
	Images       *[]string        `json:"images,omitempty"`
	Details      *PropertyDetails `json:"details,omitempty"`
	PhoneContact *string          `json:"phone_contact,omitempty"`
	EmailContact *string          `json:"email_contact,omitempty"`
}

type SortOrder string

const (
	SortNone      SortOrder = ""
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

func (s SortOrder) IsValid() bool {
	switch s {
	case SortNone, SortNewest, SortPriceAsc, SortPriceDesc:
		return true
	default:
		return false
	}
}

// SearchFilter narrows the public listing search. Zero values mean "no filter".
type SearchFilter struct {
	Location     string
	Type         PropertyType
	MinPrice     *float64
	MaxPrice     *float64
	FeaturedOnly bool
	Sort         SortOrder
}

// StringList is an ordered list persisted as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	raw, err := textValue(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decoding string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func textValue(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", src)
	}
}
