package catalogrepo

import (
	"context"
	"errors"

	"pindrop/internal/core/domain/model/catalog"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
// It is read-only: no aggregate tracking, no writes.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetDish retrieves a dish read model by unique identifier.
func (r *GormCatalogRepository) GetDish(ctx context.Context, id kernel.ID) (*catalog.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, err
	}

	return toDomainDish(dto)
}

// GetDishes retrieves the dish read models for the given identifiers in one
// round trip. Returns an object-not-found error naming the first missing dish.
func (r *GormCatalogRepository) GetDishes(ctx context.Context, ids []kernel.ID) ([]*catalog.Dish, error) {
	values := make([]int64, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		values = append(values, id.Value())
	}

	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", values).Error; err != nil {
		return nil, err
	}

	found := make(map[int64]DishDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	dishes := make([]*catalog.Dish, 0, len(ids))
	for _, id := range ids {
		dto, ok := found[id.Value()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}

		dish, err := toDomainDish(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}

	return dishes, nil
}

// GetRestaurant retrieves a restaurant read model by unique identifier.
func (r *GormCatalogRepository) GetRestaurant(ctx context.Context, id kernel.ID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomainRestaurant(dto)
}
