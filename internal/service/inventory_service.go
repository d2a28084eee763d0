package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type InventoryService struct {
	inventoryRepo *repository.InventoryRepository
}

func NewInventoryService(inventoryRepo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

type CreateInventoryItemInput struct {
	Name         string
	PartNumber   string
	Quantity     int
	UnitCostKSH  float64
	ReorderLevel int
}

func (s *InventoryService) Create(ctx context.Context, principal model.Principal, input CreateInventoryItemInput) (*model.InventoryItem, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	if input.Name == "" || input.PartNumber == "" || input.Quantity < 0 {
		return nil, ErrInvalidInput
	}

	item := &model.InventoryItem{
		Name:         input.Name,
		PartNumber:   input.PartNumber,
		Quantity:     input.Quantity,
		UnitCostKSH:  input.UnitCostKSH,
		ReorderLevel: input.ReorderLevel,
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *InventoryService) List(ctx context.Context) ([]model.InventoryItem, error) {
	return s.inventoryRepo.List(ctx)
}

func (s *InventoryService) ListLowStock(ctx context.Context) ([]model.InventoryItem, error) {
	return s.inventoryRepo.ListLowStock(ctx)
}

// AdjustQuantity applies a signed delta to the stock count; the result
// can never go negative.
func (s *InventoryService) AdjustQuantity(ctx context.Context, principal model.Principal, id string, delta int) (*model.InventoryItem, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	item, err := s.inventoryRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if item.Quantity+delta < 0 {
		return nil, ErrConflict
	}
	item.Quantity += delta

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	itemID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	if _, err := s.inventoryRepo.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.inventoryRepo.Delete(ctx, itemID)
}
