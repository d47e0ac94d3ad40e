package product

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Nathan-Chantiny/Fridge-Inventory/domain"
	"github.com/Nathan-Chantiny/Fridge-Inventory/entities"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTableStore(t *testing.T) ProductRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Product{}))

	return NewProductRepository(db)
}

func newFileStore(t *testing.T) ProductRepository {
	t.Helper()
	return NewDocumentStore(filepath.Join(t.TempDir(), "products.json"))
}

func backends(t *testing.T) map[string]ProductRepository {
	return map[string]ProductRepository{
		"table":    newTableStore(t),
		"document": newFileStore(t),
	}
}

func addRequest(name string) domain.AddProductRequest {
	return domain.AddProductRequest{
		Name:       name,
		Quantity:   "4",
		Group:      entities.GroupDairy,
		Info:       domain.DietaryInfo{Lactose: true, Vegetarian: true},
		Expiration: "10/01/25",
		DateAdded:  "09/24/25",
	}
}

func TestAddAndLoadAllRoundTrip(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			res, err := svc.AddProduct(context.Background(), addRequest("Milk"), userID)
			require.NoError(t, err)
			assert.Equal(t, "Milk", res.Name)
			assert.Equal(t, 4, res.Quantity)
			assert.Equal(t, "Dairy", res.GroupName)

			all, err := svc.LoadAll(context.Background(), userID)
			require.NoError(t, err)
			require.Len(t, all, 1)

			got := all[0]
			assert.Equal(t, "Milk", got.Name)
			assert.Equal(t, 4, got.Quantity)
			assert.Equal(t, entities.GroupDairy, got.Group)
			assert.Equal(t, "10/01/25", got.Expiration)
			assert.Equal(t, "09/24/25", got.DateAdded)
			assert.True(t, got.Info.Lactose)
			assert.True(t, got.Info.Vegetarian)
			assert.False(t, got.Info.Vegan)
			assert.Equal(t, userID, got.UserID)
		})
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			for _, qty := range []string{"0", "-1", "1.5", "ten", ""} {
				req := addRequest("Milk")
				req.Quantity = qty
				_, err := svc.AddProduct(context.Background(), req, userID)
				assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "quantity %q", qty)
			}

			req := addRequest("Milk")
			req.Expiration = "abc123"
			_, err := svc.AddProduct(context.Background(), req, userID)
			assert.ErrorIs(t, err, domain.ErrInvalidDate)

			req = addRequest("Milk")
			req.Group = 7
			_, err = svc.AddProduct(context.Background(), req, userID)
			assert.ErrorIs(t, err, domain.ErrInvalidFoodGroup)

			// nothing got through
			all, err := svc.LoadAll(context.Background(), userID)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestAddNormalizesDateSeparators(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			req := addRequest("Yogurt")
			req.Expiration = "09-24-24"
			_, err := svc.AddProduct(context.Background(), req, userID)
			require.NoError(t, err)

			all, err := svc.LoadAll(context.Background(), userID)
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, "09/24/24", all[0].Expiration)
		})
	}
}

func TestAddWarnsOnSpecialChars(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			res, err := svc.AddProduct(context.Background(), addRequest("Milk!"), userID)
			require.NoError(t, err)
			assert.Contains(t, res.Warnings, domain.WarnSpecialChars)

			// soft warning only, the record is stored
			all, err := svc.LoadAll(context.Background(), userID)
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})
	}
}

func TestAddDuplicateKeyFails(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			_, err := svc.AddProduct(context.Background(), addRequest("Milk"), userID)
			require.NoError(t, err)

			_, err = svc.AddProduct(context.Background(), addRequest("Milk"), userID)
			assert.ErrorIs(t, err, domain.ErrDuplicateProduct)

			// same name, different expiration is a distinct record
			req := addRequest("Milk")
			req.Expiration = "11/01/25"
			_, err = svc.AddProduct(context.Background(), req, userID)
			assert.NoError(t, err)
		})
	}
}

func TestSearchCaseInsensitiveAndIdempotent(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			_, err := svc.AddProduct(context.Background(), addRequest("Whole Milk"), userID)
			require.NoError(t, err)
			req := addRequest("Almond Milk")
			req.Expiration = "12/01/25"
			_, err = svc.AddProduct(context.Background(), req, userID)
			require.NoError(t, err)
			req = addRequest("Bread")
			req.Group = entities.GroupGrains
			_, err = svc.AddProduct(context.Background(), req, userID)
			require.NoError(t, err)

			first, err := svc.SearchProducts(context.Background(), "MILK", userID)
			require.NoError(t, err)
			assert.Len(t, first, 2)

			second, err := svc.SearchProducts(context.Background(), "MILK", userID)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestSearchScopedToOwner(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			alice := uuid.New().String()
			bob := uuid.New().String()

			_, err := svc.AddProduct(context.Background(), addRequest("Milk"), alice)
			require.NoError(t, err)
			_, err = svc.AddProduct(context.Background(), addRequest("Milk"), bob)
			require.NoError(t, err)

			results, err := svc.SearchProducts(context.Background(), "milk", alice)
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, alice, results[0].UserID)
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			_, err := svc.AddProduct(context.Background(), addRequest("Milk"), userID)
			require.NoError(t, err)

			err = svc.UpdateProduct(context.Background(), domain.UpdateProductRequest{
				Name:       "Milk",
				Expiration: "10/01/25",
				Quantity:   "9",
				Group:      entities.GroupOther,
				Info:       domain.DietaryInfo{Vegan: true},
			}, userID)
			require.NoError(t, err)

			all, err := svc.LoadAll(context.Background(), userID)
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, 9, all[0].Quantity)
			assert.Equal(t, entities.GroupOther, all[0].Group)
			assert.True(t, all[0].Info.Vegan)
			assert.False(t, all[0].Info.Lactose)
		})
	}
}

func TestUpdateMissingProductReturnsNotFound(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			err := svc.UpdateProduct(context.Background(), domain.UpdateProductRequest{
				Name:       "Ghost",
				Expiration: "10/01/25",
				Quantity:   "2",
			}, userID)
			assert.ErrorIs(t, err, domain.ErrProductNotFound)
		})
	}
}

func TestUpdateMissingLeavesDocumentUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	svc := NewProductService(NewDocumentStore(path))
	userID := uuid.New().String()

	_, err := svc.AddProduct(context.Background(), addRequest("Milk"), userID)
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = svc.UpdateProduct(context.Background(), domain.UpdateProductRequest{
		Name:       "Ghost",
		Expiration: "10/01/25",
		Quantity:   "2",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteProduct(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			_, err := svc.AddProduct(context.Background(), addRequest("Milk"), userID)
			require.NoError(t, err)
			req := addRequest("Bread")
			req.Group = entities.GroupGrains
			_, err = svc.AddProduct(context.Background(), req, userID)
			require.NoError(t, err)

			err = svc.DeleteProduct(context.Background(), domain.DeleteProductRequest{
				Name:       "Milk",
				Expiration: "10/01/25",
				Confirmed:  true,
			}, userID)
			require.NoError(t, err)

			all, err := svc.LoadAll(context.Background(), userID)
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, "Bread", all[0].Name)

			err = svc.DeleteProduct(context.Background(), domain.DeleteProductRequest{
				Name:       "Milk",
				Expiration: "10/01/25",
				Confirmed:  true,
			}, userID)
			assert.ErrorIs(t, err, domain.ErrProductNotFound)
		})
	}
}

func TestPreviewDelete(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			_, err := svc.AddProduct(context.Background(), addRequest("Milk"), userID)
			require.NoError(t, err)

			preview, err := svc.PreviewDelete(context.Background(), "Milk", "10/01/25", userID)
			require.NoError(t, err)
			assert.Equal(t, 1, preview.Count)
			require.Len(t, preview.Matches, 1)
			assert.Equal(t, "Milk", preview.Matches[0].Name)

			// dry run does not mutate
			all, err := svc.LoadAll(context.Background(), userID)
			require.NoError(t, err)
			assert.Len(t, all, 1)

			preview, err = svc.PreviewDelete(context.Background(), "Ghost", "10/01/25", userID)
			require.NoError(t, err)
			assert.Equal(t, 0, preview.Count)
			assert.Empty(t, preview.Matches)
		})
	}
}

func TestSearchMilkEndToEnd(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			req := domain.AddProductRequest{
				Name:       "Milk",
				Quantity:   "4",
				Group:      entities.GroupDairy,
				Info:       domain.DietaryInfo{Lactose: true},
				Expiration: "10/01/25",
				DateAdded:  "09/24/25",
			}
			_, err := svc.AddProduct(context.Background(), req, userID)
			require.NoError(t, err)

			results, err := svc.SearchProducts(context.Background(), "milk", userID)
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, 4, results[0].Quantity)
			assert.Contains(t, results[0].Nutrition, "Lactose")
		})
	}
}

func TestStockAlertsAndDashboard(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewProductService(repo)
			userID := uuid.New().String()

			low := addRequest("Eggs")
			low.Quantity = "2"
			low.Group = entities.GroupProtein
			low.Expiration = "01/01/30"
			_, err := svc.AddProduct(context.Background(), low, userID)
			require.NoError(t, err)

			fine := addRequest("Rice")
			fine.Quantity = "20"
			fine.Group = entities.GroupGrains
			fine.Expiration = "01/01/30"
			_, err = svc.AddProduct(context.Background(), fine, userID)
			require.NoError(t, err)

			alerts, err := svc.StockAlerts(context.Background(), userID)
			require.NoError(t, err)
			require.Len(t, alerts.LowStock, 1)
			assert.Equal(t, "Eggs", alerts.LowStock[0].Name)
			assert.Empty(t, alerts.ExpiringSoon)

			stats, err := svc.DashboardStats(context.Background(), userID)
			require.NoError(t, err)
			assert.Equal(t, 2, stats.TotalItems)
			assert.Equal(t, 1, stats.LowStockItems)
			assert.Equal(t, 1, stats.ByGroup["Protein"])
			assert.Equal(t, 1, stats.ByGroup["Grains"])
		})
	}
}
