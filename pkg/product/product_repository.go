package product

import (
	"context"
	"strings"
	"time"

	"github.com/Nathan-Chantiny/Fridge-Inventory/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// ProductKey identifies one record for lookup, update and delete.
	ProductKey struct {
		UserID     uuid.UUID
		Name       string
		Expiration time.Time
	}

	// ProductRepository is the persistence abstraction shared by the
	// table-backed and document-backed stores.
	ProductRepository interface {
		AddProduct(ctx context.Context, product *entities.Product) error
		GetProduct(ctx context.Context, key ProductKey) (*entities.Product, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, key ProductKey) (int64, error)
		SearchProducts(ctx context.Context, userID uuid.UUID, namePart string) ([]*entities.Product, error)
		LoadAll(ctx context.Context, userID uuid.UUID) ([]*entities.Product, error)
		LowStock(ctx context.Context, userID uuid.UUID, threshold int) ([]*entities.Product, error)
		ExpiringBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) AddProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProduct(ctx context.Context, key ProductKey) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ? AND expiration = ?", key.UserID, key.Name, key.Expiration).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, key ProductKey) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ? AND expiration = ?", key.UserID, key.Name, key.Expiration).
		Delete(&entities.Product{})
	return result.RowsAffected, result.Error
}

func (r *productRepository) SearchProducts(ctx context.Context, userID uuid.UUID, namePart string) ([]*entities.Product, error) {
	var products []*entities.Product

	pattern := "%" + strings.ToLower(namePart) + "%"
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND lower(name) LIKE ?", userID, pattern).
		Order("created_at asc").
		Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) LoadAll(ctx context.Context, userID uuid.UUID) ([]*entities.Product, error) {
	var products []*entities.Product

	query := r.db.WithContext(ctx)
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.Order("created_at asc").Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) LowStock(ctx context.Context, userID uuid.UUID, threshold int) ([]*entities.Product, error) {
	var products []*entities.Product

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND quantity <= ?", userID, threshold).
		Order("quantity asc").
		Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) ExpiringBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entities.Product, error) {
	var products []*entities.Product

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiration BETWEEN ? AND ?", userID, start, end).
		Order("expiration asc").
		Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}
