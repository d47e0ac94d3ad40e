package product

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Nathan-Chantiny/Fridge-Inventory/domain"
	"github.com/Nathan-Chantiny/Fridge-Inventory/entities"
	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alert thresholds carried over from the desktop notification check.
const (
	lowStockThreshold = 3
	expiryWarningDays = 10
)

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest, userID string) (domain.AddProductResponse, error)
		UpdateProduct(ctx context.Context, req domain.UpdateProductRequest, userID string) error
		DeleteProduct(ctx context.Context, req domain.DeleteProductRequest, userID string) error
		PreviewDelete(ctx context.Context, name, expiration, userID string) (domain.DeletePreviewResponse, error)
		SearchProducts(ctx context.Context, namePart string, userID string) ([]domain.ProductResponse, error)
		LoadAll(ctx context.Context, userID string) ([]domain.ProductResponse, error)
		StockAlerts(ctx context.Context, userID string) (domain.StockAlertResponse, error)
		DashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

func (s *productService) AddProduct(ctx context.Context, req domain.AddProductRequest, userID string) (domain.AddProductResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddProductResponse{}, domain.ErrParseUUID
	}

	if !utils.ValidateQuantity(req.Quantity) {
		return domain.AddProductResponse{}, domain.ErrInvalidQuantity
	}
	quantity := atoiChecked(req.Quantity)

	if req.Group < entities.GroupDairy || req.Group > entities.GroupOther {
		return domain.AddProductResponse{}, domain.ErrInvalidFoodGroup
	}

	expiration, ok := utils.ParseDate(req.Expiration)
	if !ok {
		return domain.AddProductResponse{}, domain.ErrInvalidDate
	}

	dateAdded := today()
	if req.DateAdded != "" {
		dateAdded, ok = utils.ParseDate(req.DateAdded)
		if !ok {
			return domain.AddProductResponse{}, domain.ErrInvalidDate
		}
	}

	var warnings []string
	if utils.HasSpecialChars(req.Name) {
		warnings = append(warnings, domain.WarnSpecialChars)
	}

	product := &entities.Product{
		UserID:       userUUID,
		Name:         req.Name,
		Expiration:   expiration,
		Quantity:     quantity,
		Group:        req.Group,
		DateAdded:    dateAdded,
		DietaryFlags: flagsFromInfo(req.Info),
	}

	if err := s.productRepository.AddProduct(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AddProductResponse{}, domain.ErrDuplicateProduct
		}
		return domain.AddProductResponse{}, err
	}

	return domain.AddProductResponse{
		ProductResponse: toResponse(product),
		Warnings:        warnings,
	}, nil
}

func (s *productService) UpdateProduct(ctx context.Context, req domain.UpdateProductRequest, userID string) error {
	key, err := keyFrom(req.Name, req.Expiration, userID)
	if err != nil {
		return err
	}

	product, err := s.productRepository.GetProduct(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if req.Quantity != "" {
		if !utils.ValidateQuantity(req.Quantity) {
			return domain.ErrInvalidQuantity
		}
		product.Quantity = atoiChecked(req.Quantity)
	}

	if req.Group != 0 {
		if req.Group < entities.GroupDairy || req.Group > entities.GroupOther {
			return domain.ErrInvalidFoodGroup
		}
		product.Group = req.Group
	}

	if req.DateAdded != "" {
		added, ok := utils.ParseDate(req.DateAdded)
		if !ok {
			return domain.ErrInvalidDate
		}
		product.DateAdded = added
	}

	product.DietaryFlags = flagsFromInfo(req.Info)

	return s.productRepository.UpdateProduct(ctx, product)
}

func (s *productService) PreviewDelete(ctx context.Context, name, expiration, userID string) (domain.DeletePreviewResponse, error) {
	key, err := keyFrom(name, expiration, userID)
	if err != nil {
		return domain.DeletePreviewResponse{}, err
	}

	product, err := s.productRepository.GetProduct(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeletePreviewResponse{Matches: []domain.ProductResponse{}}, nil
		}
		return domain.DeletePreviewResponse{}, err
	}

	return domain.DeletePreviewResponse{
		Matches: []domain.ProductResponse{toResponse(product)},
		Count:   1,
	}, nil
}

func (s *productService) DeleteProduct(ctx context.Context, req domain.DeleteProductRequest, userID string) error {
	key, err := keyFrom(req.Name, req.Expiration, userID)
	if err != nil {
		return err
	}

	removed, err := s.productRepository.DeleteProduct(ctx, key)
	if err != nil {
		return err
	}
	if removed == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (s *productService) SearchProducts(ctx context.Context, namePart string, userID string) ([]domain.ProductResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	products, err := s.productRepository.SearchProducts(ctx, userUUID, namePart)
	if err != nil {
		return nil, err
	}

	return toResponses(products), nil
}

func (s *productService) LoadAll(ctx context.Context, userID string) ([]domain.ProductResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	products, err := s.productRepository.LoadAll(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	return toResponses(products), nil
}

func (s *productService) StockAlerts(ctx context.Context, userID string) (domain.StockAlertResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.StockAlertResponse{}, domain.ErrParseUUID
	}

	low, err := s.productRepository.LowStock(ctx, userUUID, lowStockThreshold)
	if err != nil {
		return domain.StockAlertResponse{}, err
	}

	start := today()
	end := start.AddDate(0, 0, expiryWarningDays)
	expiring, err := s.productRepository.ExpiringBetween(ctx, userUUID, start, end)
	if err != nil {
		return domain.StockAlertResponse{}, err
	}

	return domain.StockAlertResponse{
		LowStock:     toResponses(low),
		ExpiringSoon: toResponses(expiring),
	}, nil
}

func (s *productService) DashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, domain.ErrParseUUID
	}

	products, err := s.productRepository.LoadAll(ctx, userUUID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	stats := domain.DashboardStatsResponse{
		TotalItems: len(products),
		ByGroup:    make(map[string]int),
	}

	start := today()
	end := start.AddDate(0, 0, expiryWarningDays)
	for _, p := range products {
		stats.ByGroup[entities.FoodGroupName(p.Group)]++
		if p.Quantity <= lowStockThreshold {
			stats.LowStockItems++
		}
		if !p.Expiration.Before(start) && !p.Expiration.After(end) {
			stats.ExpiringItems++
		}
	}

	return stats, nil
}

func keyFrom(name, expiration, userID string) (ProductKey, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return ProductKey{}, domain.ErrParseUUID
	}

	exp, ok := utils.ParseDate(expiration)
	if !ok {
		return ProductKey{}, domain.ErrInvalidDate
	}

	return ProductKey{UserID: userUUID, Name: name, Expiration: exp}, nil
}

func flagsFromInfo(info domain.DietaryInfo) entities.DietaryFlags {
	return entities.DietaryFlags{
		Vegetarian: info.Vegetarian,
		Vegan:      info.Vegan,
		Gluten:     info.Gluten,
		Lactose:    info.Lactose,
		Eggs:       info.Eggs,
		Nuts:       info.Nuts,
		Halal:      info.Halal,
		Kosher:     info.Kosher,
	}
}

func infoFromFlags(flags entities.DietaryFlags) domain.DietaryInfo {
	return domain.DietaryInfo{
		Vegetarian: flags.Vegetarian,
		Vegan:      flags.Vegan,
		Gluten:     flags.Gluten,
		Lactose:    flags.Lactose,
		Eggs:       flags.Eggs,
		Nuts:       flags.Nuts,
		Halal:      flags.Halal,
		Kosher:     flags.Kosher,
	}
}

func toResponse(p *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		Name:       p.Name,
		Quantity:   p.Quantity,
		Group:      p.Group,
		GroupName:  entities.FoodGroupName(p.Group),
		Info:       infoFromFlags(p.DietaryFlags),
		Nutrition:  p.DietaryFlags.Summary(),
		Expiration: utils.FormatDate(p.Expiration),
		DateAdded:  utils.FormatDate(p.DateAdded),
		UserID:     p.UserID.String(),
	}
}

func toResponses(products []*entities.Product) []domain.ProductResponse {
	responses := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toResponse(p))
	}
	return responses
}

// atoiChecked converts a quantity that already passed ValidateQuantity.
func atoiChecked(raw string) int {
	qty, _ := strconv.Atoi(raw)
	return qty
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
