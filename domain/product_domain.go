package domain

import (
	"errors"
)

var (
	MessageSuccessAddProduct     = "product added successfully"
	MessageSuccessUpdateProduct  = "product updated successfully"
	MessageSuccessDeleteProduct  = "product deleted successfully"
	MessageSuccessSearchProducts = "products retrieved successfully"
	MessageSuccessGetAlerts      = "stock and expiry alerts retrieved successfully"
	MessageSuccessGetDashboard   = "dashboard statistics retrieved successfully"

	MessageFailedAddProduct     = "failed to add product"
	MessageFailedUpdateProduct  = "failed to update product"
	MessageFailedDeleteProduct  = "failed to delete product"
	MessageFailedSearchProducts = "failed to retrieve products"
	MessageFailedGetAlerts      = "failed to retrieve stock and expiry alerts"
	MessageFailedGetDashboard   = "failed to retrieve dashboard statistics"

	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product with the same name and expiration already exists")
	ErrInvalidQuantity  = errors.New("quantity must be a positive number")
	ErrInvalidDate      = errors.New("date must be six digits in MM/DD/YY form")
	ErrInvalidFoodGroup = errors.New("food group must be between 1 and 6")
)

// WarnSpecialChars flags free-text input containing characters outside
// letters, digits and spaces. It never blocks the write.
const WarnSpecialChars = "name contains special characters"

type (
	DietaryInfo struct {
		Vegetarian bool `json:"vegetarian"`
		Vegan      bool `json:"vegan"`
		Gluten     bool `json:"gluten"`
		Lactose    bool `json:"lactose"`
		Eggs       bool `json:"eggs"`
		Nuts       bool `json:"nuts"`
		Halal      bool `json:"halal"`
		Kosher     bool `json:"kosher"`
	}

	AddProductRequest struct {
		Name       string      `json:"name" validate:"required"`
		Quantity   string      `json:"quantity" validate:"required"`
		Group      int         `json:"group" validate:"required,min=1,max=6"`
		Info       DietaryInfo `json:"info"`
		Expiration string      `json:"expiration" validate:"required"`
		DateAdded  string      `json:"date_added" validate:"omitempty"`
	}

	AddProductResponse struct {
		ProductResponse
		Warnings []string `json:"warnings,omitempty"`
	}

	// UpdateProductRequest carries the mutable fields; name and expiration
	// identify the record and are immutable once set.
	UpdateProductRequest struct {
		Name       string      `json:"name" validate:"required"`
		Expiration string      `json:"expiration" validate:"required"`
		Quantity   string      `json:"quantity" validate:"omitempty"`
		Group      int         `json:"group" validate:"omitempty,min=1,max=6"`
		Info       DietaryInfo `json:"info"`
		DateAdded  string      `json:"date_added" validate:"omitempty"`
	}

	DeleteProductRequest struct {
		Name       string `json:"name" validate:"required"`
		Expiration string `json:"expiration" validate:"required"`
		Confirmed  bool   `json:"confirmed"`
	}

	// DeletePreviewResponse backs the confirmation step: it reports what a
	// delete would remove without mutating the store.
	DeletePreviewResponse struct {
		Matches []ProductResponse `json:"matches"`
		Count   int               `json:"count"`
	}

	ProductResponse struct {
		Name       string      `json:"name"`
		Quantity   int         `json:"quantity"`
		Group      int         `json:"group"`
		GroupName  string      `json:"group_name"`
		Info       DietaryInfo `json:"info"`
		Nutrition  string      `json:"nutrition"`
		Expiration string      `json:"expiration"`
		DateAdded  string      `json:"date_added"`
		UserID     string      `json:"user_id"`
	}

	StockAlertResponse struct {
		LowStock     []ProductResponse `json:"low_stock"`
		ExpiringSoon []ProductResponse `json:"expiring_soon"`
	}

	DashboardStatsResponse struct {
		TotalItems    int            `json:"total_items"`
		LowStockItems int            `json:"low_stock_items"`
		ExpiringItems int            `json:"expiring_items"`
		ByGroup       map[string]int `json:"by_group"`
	}
)
