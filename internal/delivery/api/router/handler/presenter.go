package handler

import (
	"strings"

	"sellerhub/internal/domain/entity"
	"sellerhub/internal/usecase"

	"github.com/google/uuid"
)

type userView struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	ContactNumber  string `json:"contact_number"`
	IsActive       bool   `json:"is_active"`
	EmailVerified  bool   `json:"email_verified"`
	NumberVerified bool   `json:"number_verified"`
	IsSeller       bool   `json:"is_seller"`
}

func newUserView(user *entity.User) userView {
	view := userView{
		Name:          user.Name,
		Email:         user.Email,
		ContactNumber: user.ContactNumber,
		IsActive:      user.IsActive,
	}
	if user.Details != nil {
		view.EmailVerified = user.Details.EmailVerified
		view.NumberVerified = user.Details.PhoneNumberVerified
		view.IsSeller = user.Details.IsSeller
	}

	return view
}

type tokenView struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

func newTokenView(tokens usecase.TokenPair) tokenView {
	return tokenView{Access: tokens.AccessToken, Refresh: tokens.RefreshToken}
}

type sellerGSTView struct {
	ID              uuid.UUID `json:"id"`
	SellerID        string    `json:"seller_id"`
	Certificate     *string   `json:"certificate"`
	TradeName       string    `json:"trade_name"`
	GSTNumber       string    `json:"gst_number"`
	GSTType         string    `json:"gst_type"`
	LegalName       string    `json:"legal_name"`
	BusinessAddress string    `json:"business_address"`
	GSTVerified     bool      `json:"gst_verified"`
}

func newSellerGSTView(gst *entity.SellerGST, mediaBase string) sellerGSTView {
	return sellerGSTView{
		ID:              gst.ID,
		SellerID:        gst.SellerID,
		Certificate:     mediaURL(mediaBase, gst.Certificate),
		TradeName:       gst.TradeName,
		GSTNumber:       gst.GSTNumber,
		GSTType:         gst.GSTType,
		LegalName:       gst.LegalName,
		BusinessAddress: gst.BusinessAddress,
		GSTVerified:     gst.GSTVerified,
	}
}

type bankView struct {
	AccHolderName string `json:"acc_holder_name"`
	AccNumber     string `json:"acc_number"`
	IFSC          string `json:"ifsc"`
}

func newBankView(bank *entity.BankDetails) bankView {
	return bankView{
		AccHolderName: bank.AccHolderName,
		AccNumber:     bank.AccNumber,
		IFSC:          bank.IFSC,
	}
}

type businessView struct {
	Name           string                  `json:"name"`
	StoreName      string                  `json:"store_name"`
	Address        *entity.BusinessAddress `json:"address"`
	EmailAddress   string                  `json:"email_address"`
	PhoneNumber    string                  `json:"phone_number"`
	ShippingMethod string                  `json:"shipping_method"`
	ProfilePic     *string                 `json:"profile_pic"`
	BankDetails    []bankView              `json:"bank_details"`
}

func newBusinessView(business *entity.Business, mediaBase string) businessView {
	banks := make([]bankView, 0, len(business.BankDetails))
	for _, bank := range business.BankDetails {
		banks = append(banks, newBankView(bank))
	}

	return businessView{
		Name:           business.Name,
		StoreName:      business.StoreName,
		Address:        business.Address,
		EmailAddress:   business.EmailAddress,
		PhoneNumber:    business.PhoneNumber,
		ShippingMethod: business.ShippingMethod,
		ProfilePic:     mediaURL(mediaBase, business.ProfilePic),
		BankDetails:    banks,
	}
}

// mediaURL turns a storage reference into the path served by the media handler; nil when unset.
func mediaURL(base, ref string) *string {
	if ref == "" {
		return nil
	}
	url := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")

	return &url
}
