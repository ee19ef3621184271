package staterepo

import (
	"context"
	"errors"

	"swiftgo/internal/core/domain/model/profile"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/domain/model/tracking"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func upsert(ctx context.Context, db *gorm.DB, value any) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(value).Error
}

// GormRateRepository serves defaults until a table has been saved.
type GormRateRepository struct {
	db       *gorm.DB
	defaults rates.Table
}

func NewGormRateRepository(db *gorm.DB, defaults rates.Table) *GormRateRepository {
	return &GormRateRepository{db: db, defaults: defaults}
}

func (r *GormRateRepository) Get(ctx context.Context) (rates.Table, error) {
	var dto RateTableDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.defaults, nil
	}
	if err != nil {
		return rates.Table{}, err
	}
	return dto.toDomain(), nil
}

func (r *GormRateRepository) Save(ctx context.Context, table rates.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}
	dto := ratesFromDomain(table)
	return upsert(ctx, r.db, &dto)
}

type GormTrackingRepository struct {
	db *gorm.DB
}

func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

func (r *GormTrackingRepository) Get(ctx context.Context) (tracking.Recent, error) {
	var dtos []RecentTrackingDTO
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&dtos).Error; err != nil {
		return tracking.Recent{}, err
	}

	numbers := make([]string, 0, len(dtos))
	for _, dto := range dtos {
		numbers = append(numbers, dto.Number)
	}
	return tracking.NewRecent(numbers), nil
}

// Save replaces the whole list.
func (r *GormTrackingRepository) Save(ctx context.Context, recent tracking.Recent) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&RecentTrackingDTO{}).Error; err != nil {
		return err
	}

	numbers := recent.Numbers()
	if len(numbers) == 0 {
		return nil
	}

	dtos := make([]RecentTrackingDTO, 0, len(numbers))
	for i, n := range numbers {
		dtos = append(dtos, RecentTrackingDTO{Position: i, Number: n})
	}
	return db.Create(&dtos).Error
}

// GormProfileRepository returns profile.Guest until a profile has been saved.
type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) Get(ctx context.Context) (profile.Profile, error) {
	var dto ProfileDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profile.Guest(), nil
	}
	if err != nil {
		return profile.Profile{}, err
	}
	return dto.toDomain(), nil
}

func (r *GormProfileRepository) Save(ctx context.Context, p profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dto := profileFromDomain(p)
	return upsert(ctx, r.db, &dto)
}
