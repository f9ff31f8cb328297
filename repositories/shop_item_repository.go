package repositories

import (
	"context"

	"gin-shoplist/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IShopItemRepository interface {
	Create(ctx context.Context, item *models.ShopItem) error
	FindByID(ctx context.Context, id string) (*models.ShopItem, error)
	FindByShopList(ctx context.Context, shopListID string) ([]models.ShopItem, error)
	FindIDsByShopList(ctx context.Context, shopListID string) ([]string, error)
	CountByShopList(ctx context.Context, shopListID string) (int64, error)
	CountByShopLists(ctx context.Context, shopListIDs []string) (map[string]int64, error)
	Update(ctx context.Context, item *models.ShopItem) error
	Delete(ctx context.Context, id string) (int64, error)
}

type ShopItemRepository struct {
	db *gorm.DB
}

func NewShopItemRepository(db *gorm.DB) IShopItemRepository {
	return &ShopItemRepository{db: db}
}

func (r *ShopItemRepository) Create(ctx context.Context, item *models.ShopItem) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(item)
	return translate(result.Error)
}

// FindByID preloads the parent list and the creator.
func (r *ShopItemRepository) FindByID(ctx context.Context, id string) (*models.ShopItem, error) {
	var item models.ShopItem
	result := r.db.WithContext(ctx).Preload("ShopList").Preload("Creator").First(&item, "id = ?", id)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &item, nil
}

func (r *ShopItemRepository) FindByShopList(ctx context.Context, shopListID string) ([]models.ShopItem, error) {
	var items []models.ShopItem
	result := r.db.WithContext(ctx).
		Preload("ShopList").
		Preload("Creator").
		Where("shop_list_id = ?", shopListID).
		Order("created_at").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (r *ShopItemRepository) FindIDsByShopList(ctx context.Context, shopListID string) ([]string, error) {
	var ids []string
	result := r.db.WithContext(ctx).Model(&models.ShopItem{}).Where("shop_list_id = ?", shopListID).Pluck("id", &ids)
	return ids, result.Error
}

func (r *ShopItemRepository) CountByShopList(ctx context.Context, shopListID string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.ShopItem{}).Where("shop_list_id = ?", shopListID).Count(&count)
	return count, result.Error
}

// CountByShopLists counts items per list in one query. Lists without items
// are absent from the map.
func (r *ShopItemRepository) CountByShopLists(ctx context.Context, shopListIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(shopListIDs))
	if len(shopListIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		ShopListID string
		Count      int64
	}
	result := r.db.WithContext(ctx).
		Model(&models.ShopItem{}).
		Select("shop_list_id, count(*) AS count").
		Where("shop_list_id IN ?", shopListIDs).
		Group("shop_list_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	for _, row := range rows {
		counts[row.ShopListID] = row.Count
	}
	return counts, nil
}

// Update writes name, quantity and remarks. Parent list and creator are never written.
func (r *ShopItemRepository) Update(ctx context.Context, item *models.ShopItem) error {
	result := r.db.WithContext(ctx).
		Model(&models.ShopItem{ID: item.ID}).
		Select("Name", "Quantity", "Remarks", "UpdatedAt").
		Updates(item)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ShopItemRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ShopItem{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
