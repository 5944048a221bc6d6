package usecase

import (
	"context"
	"errors"
	"testing"

	"interiorquote/internal/domain/entities"
	mock_interfaces "interiorquote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCostConfigUseCase_Upsert(t *testing.T) {
	t.Run("invalid entry", func(t *testing.T) {
		uc := NewCostConfigUseCase(nil)
		for _, c := range []entities.CostConfig{
			{Category: "", ItemType: "x"},
			{Category: "x", ItemType: " "},
			{Category: "x", ItemType: "y", BasePrice: -1},
			{Category: "x", ItemType: "y", LaborCostPerUnit: -0.5},
		} {
			if _, err := uc.Upsert(context.Background(), c); !errors.Is(err, ErrInvalidCostConfig) {
				t.Fatalf("expected ErrInvalidCostConfig for %+v, got %v", c, err)
			}
		}
	})

	t.Run("normalizes and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICostConfigRepository(ctrl)
		uc := NewCostConfigUseCase(repo)

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CostConfig) (entities.CostConfig, error) {
				if c.ID == "" || c.ItemType != "Oak" || c.Unit != "unit" || c.UpdatedAt.IsZero() {
					t.Fatalf("unexpected entry: %+v", c)
				}
				return c, nil
			},
		)
		if _, err := uc.Upsert(context.Background(), entities.CostConfig{Category: "Flooring", ItemType: " Oak ", BasePrice: 10, IsActive: true}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestCostConfigUseCase_SeedDefaults(t *testing.T) {
	t.Run("counts inserted entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICostConfigRepository(ctrl)
		uc := NewCostConfigUseCase(repo)

		calls := 0
		repo.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CostConfig) (bool, error) {
				calls++
				return calls%2 == 0, nil
			},
		).Times(len(DefaultCostConfigs))

		n, err := uc.SeedDefaults(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if n != len(DefaultCostConfigs)/2 {
			t.Fatalf("expected %d inserted, got %d", len(DefaultCostConfigs)/2, n)
		}
	})

	t.Run("stops on error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICostConfigRepository(ctrl)
		uc := NewCostConfigUseCase(repo)

		repo.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).Return(false, errors.New("db"))
		if _, err := uc.SeedDefaults(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
