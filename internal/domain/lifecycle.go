package domain

import (
	"strings"
	"time"
)

// NewListing builds a listing owned by actor. Listings created by an admin
// skip moderation; everyone else's start unapproved.
func NewListing(actor Actor, input CreatePropertyInput, now time.Time) (*Property, error) {
	status := input.Status
	if status == "" {
		status = SaleStatusForSale
	}

	p := &Property{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Price:        input.Price,
		Location:     strings.TrimSpace(input.Location),
		Type:         input.Type,
		Status:       status,
		Images:       StringList(input.Images),
		PhoneContact: input.PhoneContact,
		EmailContact: input.EmailContact,
		SellerID:     actor.ID,
		IsApproved:   actor.Role == RoleAdmin,
		IsFeatured:   false,
		CreatedAt:    now,
	}
	if p.Images == nil {
		p.Images = StringList{}
	}
	if input.Details != nil {
		p.Details = *input.Details
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the content invariants every stored listing must hold.
func (p *Property) Validate() error {
	if p.Title == "" {
		return NewValidationError("title", "is required")
	}
	if p.Location == "" {
		return NewValidationError("location", "is required")
	}
	if p.Price < 0 {
		return NewValidationError("price", "must not be negative")
	}
	if !p.Type.IsValid() {
		return NewValidationError("type", "must be one of house, land, apartment, office, commercial")
	}
	if !p.Status.IsValid() {
		return NewValidationError("status", "must be one of for sale, for rent, sold")
	}
	return p.Details.Validate(p.Type)
}

// ApplyEdit mutates content fields and the sale status. Approval is kept
// unless remoderate is set and the editor is not an admin.
func (p *Property) ApplyEdit(actor Actor, input UpdatePropertyInput, remoderate bool) error {
	if input.Title != nil {
		p.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Location != nil {
		p.Location = strings.TrimSpace(*input.Location)
	}
	if input.Type != nil {
		p.Type = *input.Type
		if input.Details == nil && KindFor(p.Type) != mustKind(p.Details) {
			p.Details = PropertyDetails{}
		}
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.Images != nil {
		p.Images = StringList(*input.Images)
		if p.Images == nil {
			p.Images = StringList{}
		}
	}
	if input.Details != nil {
		p.Details = *input.Details
	}
	if input.PhoneContact != nil {
		p.PhoneContact = *input.PhoneContact
	}
	if input.EmailContact != nil {
		p.EmailContact = *input.EmailContact
	}

	if EditResetsApproval(actor, remoderate) {
		p.IsApproved = false
	}

	return p.Validate()
}

// EditResetsApproval reports whether an edit by actor sends the listing back
// to moderation.
func EditResetsApproval(actor Actor, remoderate bool) bool {
	return remoderate && actor.Role != RoleAdmin
}

// Approve moves the listing into the publicly visible state. There is no
// reverse transition.
func (p *Property) Approve() {
	p.IsApproved = true
}

// Promote marks the listing featured and returns the ledger row that pays
// for it. Already featured listings are charged again.
func (p *Property) Promote(actor Actor, amount float64, method string, now time.Time) *Payment {
	p.IsFeatured = true
	if method == "" {
		method = DefaultPaymentMethod
	}
	propertyID := p.ID
	return &Payment{
		UserID:     actor.ID,
		PropertyID: &propertyID,
		Amount:     amount,
		Type:       PaymentPromotion,
		Status:     PaymentCompleted,
		Method:     method,
		CreatedAt:  now,
	}
}

func mustKind(d PropertyDetails) DetailsKind {
	k, err := d.Kind()
	if err != nil {
		return KindNone
	}
	return k
}
