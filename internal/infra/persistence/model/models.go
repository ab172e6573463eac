// Package model holds the GORM persistence models. They never leave the infra layer.
package model

// All lists every persistence model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&UserDetailsModel{},
		&OTPVerificationModel{},
		&SellerGSTModel{},
		&BusinessModel{},
		&BankDetailsModel{},
		&RefreshTokenModel{},
	}
}
