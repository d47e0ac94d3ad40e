package product

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Nathan-Chantiny/Fridge-Inventory/entities"
	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// documentRecord is the on-disk shape of one product, matching the
	// legacy products.json layout.
	documentRecord struct {
		Name     string       `json:"Name"`
		Quantity int          `json:"Quantity"`
		Group    int          `json:"Group"`
		Info     documentInfo `json:"Info"`
		Exp      string       `json:"Exp"`
		Add      string       `json:"Add"`
		User     string       `json:"User"`
	}

	documentInfo struct {
		Vegetarian bool `json:"Vegetarian"`
		Vegan      bool `json:"Vegan"`
		Gluten     bool `json:"Gluten"`
		Lactose    bool `json:"Lactose"`
		Eggs       bool `json:"Eggs"`
		Nuts       bool `json:"Nuts"`
		Halal      bool `json:"Halal"`
		Kosher     bool `json:"Kosher"`
	}

	document struct {
		Products []documentRecord `json:"products"`
	}

	// documentStore keeps the whole inventory in a single JSON file and
	// rewrites the file on every mutation. The mutex serializes the
	// read-modify-rewrite cycle inside this process; concurrent external
	// writers are not protected against.
	documentStore struct {
		path string
		mu   sync.Mutex
	}
)

// NewDocumentStore returns a ProductRepository backed by a JSON file at
// path. The file is created on first write.
func NewDocumentStore(path string) ProductRepository {
	return &documentStore{path: path}
}

// load reads the backing file. A missing file yields an empty inventory.
// A malformed file is moved aside to <path>.bak and replaced with an
// empty inventory, trading data loss for availability.
func (s *documentStore) load() document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return document{Products: []documentRecord{}}
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("inventory file %s is malformed, reinitializing: %v", s.path, err)
		if bakErr := os.WriteFile(s.path+".bak", raw, 0644); bakErr != nil {
			log.Printf("could not back up malformed inventory: %v", bakErr)
		}
		return document{Products: []documentRecord{}}
	}

	if doc.Products == nil {
		doc.Products = []documentRecord{}
	}
	return doc
}

func (s *documentStore) save(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0644)
}

func toRecord(p *entities.Product) documentRecord {
	return documentRecord{
		Name:     p.Name,
		Quantity: p.Quantity,
		Group:    p.Group,
		Info: documentInfo{
			Vegetarian: p.Vegetarian,
			Vegan:      p.Vegan,
			Gluten:     p.Gluten,
			Lactose:    p.Lactose,
			Eggs:       p.Eggs,
			Nuts:       p.Nuts,
			Halal:      p.Halal,
			Kosher:     p.Kosher,
		},
		Exp:  utils.FormatDate(p.Expiration),
		Add:  utils.FormatDate(p.DateAdded),
		User: p.UserID.String(),
	}
}

func fromRecord(rec documentRecord) *entities.Product {
	exp, _ := utils.ParseDate(rec.Exp)
	added, _ := utils.ParseDate(rec.Add)
	userID, _ := uuid.Parse(rec.User)

	return &entities.Product{
		UserID:     userID,
		Name:       rec.Name,
		Expiration: exp,
		Quantity:   rec.Quantity,
		Group:      rec.Group,
		DateAdded:  added,
		DietaryFlags: entities.DietaryFlags{
			Vegetarian: rec.Info.Vegetarian,
			Vegan:      rec.Info.Vegan,
			Gluten:     rec.Info.Gluten,
			Lactose:    rec.Info.Lactose,
			Eggs:       rec.Info.Eggs,
			Nuts:       rec.Info.Nuts,
			Halal:      rec.Info.Halal,
			Kosher:     rec.Info.Kosher,
		},
	}
}

func (rec documentRecord) matches(key ProductKey) bool {
	return rec.Name == key.Name &&
		rec.Exp == utils.FormatDate(key.Expiration) &&
		rec.User == key.UserID.String()
}

func (s *documentStore) AddProduct(_ context.Context, p *entities.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	key := ProductKey{UserID: p.UserID, Name: p.Name, Expiration: p.Expiration}
	for _, rec := range doc.Products {
		if rec.matches(key) {
			return gorm.ErrDuplicatedKey
		}
	}

	doc.Products = append(doc.Products, toRecord(p))
	return s.save(doc)
}

func (s *documentStore) GetProduct(_ context.Context, key ProductKey) (*entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	for _, rec := range doc.Products {
		if rec.matches(key) {
			return fromRecord(rec), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *documentStore) UpdateProduct(_ context.Context, p *entities.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	key := ProductKey{UserID: p.UserID, Name: p.Name, Expiration: p.Expiration}
	for i, rec := range doc.Products {
		if rec.matches(key) {
			doc.Products[i] = toRecord(p)
			return s.save(doc)
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *documentStore) DeleteProduct(_ context.Context, key ProductKey) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	kept := doc.Products[:0]
	var removed int64
	for _, rec := range doc.Products {
		if rec.matches(key) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}

	if removed == 0 {
		return 0, nil
	}

	doc.Products = kept
	return removed, s.save(doc)
}

func (s *documentStore) SearchProducts(_ context.Context, userID uuid.UUID, namePart string) ([]*entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(namePart)
	var matches []*entities.Product
	for _, rec := range s.load().Products {
		if rec.User != userID.String() {
			continue
		}
		if strings.Contains(strings.ToLower(rec.Name), needle) {
			matches = append(matches, fromRecord(rec))
		}
	}
	return matches, nil
}

func (s *documentStore) LoadAll(_ context.Context, userID uuid.UUID) ([]*entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []*entities.Product
	for _, rec := range s.load().Products {
		if userID != uuid.Nil && rec.User != userID.String() {
			continue
		}
		products = append(products, fromRecord(rec))
	}
	return products, nil
}

func (s *documentStore) LowStock(_ context.Context, userID uuid.UUID, threshold int) ([]*entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []*entities.Product
	for _, rec := range s.load().Products {
		if rec.User != userID.String() {
			continue
		}
		if rec.Quantity <= threshold {
			products = append(products, fromRecord(rec))
		}
	}
	return products, nil
}

func (s *documentStore) ExpiringBetween(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []*entities.Product
	for _, rec := range s.load().Products {
		if rec.User != userID.String() {
			continue
		}
		exp, ok := utils.ParseDate(rec.Exp)
		if !ok {
			continue
		}
		if !exp.Before(start) && !exp.After(end) {
			products = append(products, fromRecord(rec))
		}
	}
	return products, nil
}
