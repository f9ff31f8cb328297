package repositories

import (
	"context"

	"gin-shoplist/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IShopListRepository interface {
	Create(ctx context.Context, list *models.ShopList) error
	FindByID(ctx context.Context, id string) (*models.ShopList, error)
	FindIDsByCreator(ctx context.Context, creatorID string) ([]string, error)
	FindVisible(ctx context.Context, userID string) ([]models.ShopList, error)
	Update(ctx context.Context, list *models.ShopList) error
	Delete(ctx context.Context, id string) (int64, error)
}

type ShopListRepository struct {
	db *gorm.DB
}

func NewShopListRepository(db *gorm.DB) IShopListRepository {
	return &ShopListRepository{db: db}
}

func (r *ShopListRepository) Create(ctx context.Context, list *models.ShopList) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(list)
	return translate(result.Error)
}

// FindByID preloads the creator.
func (r *ShopListRepository) FindByID(ctx context.Context, id string) (*models.ShopList, error) {
	var list models.ShopList
	result := r.db.WithContext(ctx).Preload("Creator").First(&list, "id = ?", id)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &list, nil
}

func (r *ShopListRepository) FindIDsByCreator(ctx context.Context, creatorID string) ([]string, error) {
	var ids []string
	result := r.db.WithContext(ctx).Model(&models.ShopList{}).Where("creator_id = ?", creatorID).Pluck("id", &ids)
	return ids, result.Error
}

// FindVisible returns public lists plus the lists owned by userID.
// An empty userID yields public lists only.
func (r *ShopListRepository) FindVisible(ctx context.Context, userID string) ([]models.ShopList, error) {
	var lists []models.ShopList
	query := r.db.WithContext(ctx).Preload("Creator").Where("public = ?", true)
	if userID != "" {
		query = query.Or("creator_id = ?", userID)
	}
	result := query.Order("created_at").Find(&lists)
	if result.Error != nil {
		return nil, result.Error
	}
	return lists, nil
}

// Update writes store, public and done. The creator column is never written.
func (r *ShopListRepository) Update(ctx context.Context, list *models.ShopList) error {
	result := r.db.WithContext(ctx).
		Model(&models.ShopList{ID: list.ID}).
		Select("Store", "Public", "Done", "UpdatedAt").
		Updates(list)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ShopListRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ShopList{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
