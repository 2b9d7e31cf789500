// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// identityView is the client-facing shape of an identity. The credential hash
// never leaves the server.
type identityView struct {
	ID        uuid.UUID          `json:"id"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
	Verified  bool               `json:"verified"`
	Vendor    *vendorProfileView `json:"vendor_profile,omitempty"`
	Rider     *riderProfileView  `json:"rider_profile,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type vendorProfileView struct {
	BusinessName        string `json:"business_name"`
	BusinessAddress     string `json:"business_address"`
	BusinessPhone       string `json:"business_phone"`
	BusinessEmail       string `json:"business_email"`
	BusinessDescription string `json:"business_description"`
	Approved            bool   `json:"approved"`
}

type riderProfileView struct {
	PhoneNumber  string `json:"phone_number"`
	VehicleType  string `json:"vehicle_type"`
	VehiclePlate string `json:"vehicle_plate,omitempty"`
	Approved     bool   `json:"approved"`
	Available    bool   `json:"available"`
}

type categoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

type productView struct {
	ID          uuid.UUID       `json:"id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toIdentityView(identity *entity.Identity) *identityView {
	view := &identityView{
		ID:        identity.ID,
		Username:  identity.Username,
		Email:     identity.Email,
		Role:      identity.Role.String(),
		Verified:  identity.Verified,
		CreatedAt: identity.CreatedAt,
	}
	if identity.VendorProfile != nil {
		view.Vendor = toVendorProfileView(identity.VendorProfile)
	}
	if identity.RiderProfile != nil {
		view.Rider = toRiderProfileView(identity.RiderProfile)
	}

	return view
}

func toVendorProfileView(profile *entity.VendorProfile) *vendorProfileView {
	return &vendorProfileView{
		BusinessName:        profile.BusinessName,
		BusinessAddress:     profile.BusinessAddress,
		BusinessPhone:       profile.BusinessPhone,
		BusinessEmail:       profile.BusinessEmail,
		BusinessDescription: profile.BusinessDescription,
		Approved:            profile.Approved,
	}
}

func toRiderProfileView(profile *entity.RiderProfile) *riderProfileView {
	return &riderProfileView{
		PhoneNumber:  profile.PhoneNumber,
		VehicleType:  profile.VehicleType.String(),
		VehiclePlate: profile.VehiclePlate,
		Approved:     profile.Approved,
		Available:    profile.Available,
	}
}

func toCategoryView(category *entity.Category) *categoryView {
	return &categoryView{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func toCategoryViews(categories []*entity.Category) []*categoryView {
	views := make([]*categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, toCategoryView(category))
	}

	return views
}

func toProductView(product *entity.Product) *productView {
	return &productView{
		ID:          product.ID,
		VendorID:    product.VendorID,
		CategoryID:  product.CategoryID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}

func toProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}
