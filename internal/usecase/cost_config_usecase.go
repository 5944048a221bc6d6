package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// DefaultCostConfigs is the starter catalog inserted on first boot.
var DefaultCostConfigs = []entities.CostConfig{
	{Category: "Flooring", ItemType: "Engineered Wood", BasePrice: 85, Unit: "sqft", LaborCostPerUnit: 15, IsActive: true},
	{Category: "Flooring", ItemType: "Italian Marble", BasePrice: 250, Unit: "sqft", LaborCostPerUnit: 40, IsActive: true},
	{Category: "Flooring", ItemType: "Vitrified Tiles", BasePrice: 60, Unit: "sqft", LaborCostPerUnit: 20, IsActive: true},
	{Category: "Wall", ItemType: "Premium Emulsion", BasePrice: 25, Unit: "sqft", LaborCostPerUnit: 10, IsActive: true},
	{Category: "Wall", ItemType: "Wallpaper", BasePrice: 90, Unit: "sqft", LaborCostPerUnit: 15, IsActive: true},
	{Category: "Furniture", ItemType: "Sofa Set", BasePrice: 45000, Unit: "unit", LaborCostPerUnit: 2000, IsActive: true},
	{Category: "Furniture", ItemType: "Wardrobe", BasePrice: 1800, Unit: "sqft", LaborCostPerUnit: 300, IsActive: true},
	{Category: "Lighting", ItemType: "Chandelier", BasePrice: 25000, Unit: "unit", LaborCostPerUnit: 1500, IsActive: true},
	{Category: "Lighting", ItemType: "Recessed Spotlight", BasePrice: 900, Unit: "unit", LaborCostPerUnit: 200, IsActive: true},
	{Category: "Ceiling", ItemType: "Gypsum False Ceiling", BasePrice: 110, Unit: "sqft", LaborCostPerUnit: 35, IsActive: true},
}

// ICostConfigUseCase is catalog maintenance. The quoting path only reads the
// catalog through the repository.

type ICostConfigUseCase interface {
	ListActive(ctx context.Context) ([]entities.CostConfig, error)
	ListAll(ctx context.Context) ([]entities.CostConfig, error)
	Upsert(ctx context.Context, c entities.CostConfig) (entities.CostConfig, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type CostConfigUseCase struct {
	repo interfaces.ICostConfigRepository
}

var _ ICostConfigUseCase = (*CostConfigUseCase)(nil)

func NewCostConfigUseCase(repo interfaces.ICostConfigRepository) *CostConfigUseCase {
	return &CostConfigUseCase{repo: repo}
}

func (u *CostConfigUseCase) ListActive(ctx context.Context) ([]entities.CostConfig, error) {
	return u.repo.ListActive(ctx)
}

func (u *CostConfigUseCase) ListAll(ctx context.Context) ([]entities.CostConfig, error) {
	return u.repo.ListAll(ctx)
}

// Upsert is keyed by item type.
func (u *CostConfigUseCase) Upsert(ctx context.Context, c entities.CostConfig) (entities.CostConfig, error) {
	c.Category = strings.TrimSpace(c.Category)
	c.ItemType = strings.TrimSpace(c.ItemType)
	c.Unit = strings.TrimSpace(c.Unit)
	if c.Category == "" || c.ItemType == "" || badNumber(c.BasePrice) || badNumber(c.LaborCostPerUnit) {
		return entities.CostConfig{}, ErrInvalidCostConfig
	}
	if c.Unit == "" {
		c.Unit = "unit"
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Upsert(ctx, c)
	if err != nil {
		return entities.CostConfig{}, err
	}
	log.Printf("[catalog][usecase] upsert item_type=%q category=%q unit_price=%.2f active=%t", saved.ItemType, saved.Category, saved.UnitPrice(), saved.IsActive)
	return saved, nil
}

// SeedDefaults inserts DefaultCostConfigs entries that are not present yet and
// returns how many were inserted. Existing entries are never touched.
func (u *CostConfigUseCase) SeedDefaults(ctx context.Context) (int, error) {
	inserted := 0
	now := time.Now().UTC()
	for _, c := range DefaultCostConfigs {
		c.ID = uuid.NewString()
		c.UpdatedAt = now
		ok, err := u.repo.InsertIfAbsent(ctx, c)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	log.Printf("[catalog][usecase] seed done inserted=%d total=%d", inserted, len(DefaultCostConfigs))
	return inserted, nil
}
