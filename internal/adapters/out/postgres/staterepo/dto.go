// Package staterepo persists the small singleton parts of the application
// state: the rate table, the recent tracking list and the user profile.
package staterepo

import (
	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/profile"
	"swiftgo/internal/core/domain/model/rates"
)

const singletonID = 1

type RateTableDTO struct {
	ID                     int `gorm:"primaryKey;autoIncrement:false"`
	BaseRate               int64
	RatePerKg              int64
	ExpressFee             int64
	SameDayFee             int64
	LoyaltyDiscountPercent int
}

func (RateTableDTO) TableName() string {
	return "rate_tables"
}

func ratesFromDomain(t rates.Table) RateTableDTO {
	return RateTableDTO{
		ID:                     singletonID,
		BaseRate:               t.BaseRate.Int64(),
		RatePerKg:              t.RatePerKg.Int64(),
		ExpressFee:             t.ExpressFee.Int64(),
		SameDayFee:             t.SameDayFee.Int64(),
		LoyaltyDiscountPercent: t.LoyaltyDiscountPercent,
	}
}

func (dto RateTableDTO) toDomain() rates.Table {
	return rates.Table{
		BaseRate:               kernel.Money(dto.BaseRate),
		RatePerKg:              kernel.Money(dto.RatePerKg),
		ExpressFee:             kernel.Money(dto.ExpressFee),
		SameDayFee:             kernel.Money(dto.SameDayFee),
		LoyaltyDiscountPercent: dto.LoyaltyDiscountPercent,
	}
}

// RecentTrackingDTO is one remembered tracking number. Position 0 is the newest.
type RecentTrackingDTO struct {
	Position int `gorm:"primaryKey;autoIncrement:false"`
	Number   string
}

func (RecentTrackingDTO) TableName() string {
	return "recent_tracking"
}

type ProfileDTO struct {
	ID       int `gorm:"primaryKey;autoIncrement:false"`
	Name     string
	Username string
	Phone    string
	Role     string `gorm:"type:varchar(16)"`
}

func (ProfileDTO) TableName() string {
	return "profiles"
}

func profileFromDomain(p profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:       singletonID,
		Name:     p.Name,
		Username: p.Username,
		Phone:    p.Phone,
		Role:     string(p.Role),
	}
}

func (dto ProfileDTO) toDomain() profile.Profile {
	return profile.Profile{
		Name:     dto.Name,
		Username: dto.Username,
		Phone:    dto.Phone,
		Role:     profile.ParseRole(dto.Role),
	}
}
