package hotel

import (
	"context"
	"fmt"

	apperrors "innkeeper/pkg/errors"

	"github.com/shopspring/decimal"
)

// RoomService is one in-room service. RunRoomService drives the fixed
// sequence (availability check, perform, charge); implementations fill in
// the steps.
type RoomService interface {
	Name() string
	CheckAvailability(ctx context.Context) error
	Perform(ctx context.Context, room *Room) error
	Charge(room *Room) decimal.Decimal
}

// RunRoomService executes svc against a registered room. The charge is
// logged, not billed; pricing beyond the booking total is out of scope.
func (h *Hotel) RunRoomService(ctx context.Context, svc RoomService, roomID string) error {
	room, ok := h.RoomByID(roomID)
	if !ok {
		return apperrors.NotFoundWithID("Room", roomID)
	}

	h.cfg.Log.Info("Starting room service", "service", svc.Name(), "room_id", room.ID())

	if err := svc.CheckAvailability(ctx); err != nil {
		return apperrors.Unavailable(fmt.Sprintf("%s service is not available: %v", svc.Name(), err))
	}
	if err := svc.Perform(ctx, room); err != nil {
		return apperrors.Internal(fmt.Sprintf("%s service failed", svc.Name()), err)
	}

	charge := svc.Charge(room)
	h.cfg.Log.Info("Room service completed", "service", svc.Name(), "room_id", room.ID(), "charge", charge)
	return nil
}

// HousekeepingService tidies a room at no charge.
type HousekeepingService struct{}

func (HousekeepingService) Name() string                            { return "housekeeping" }
func (HousekeepingService) CheckAvailability(context.Context) error { return nil }
func (HousekeepingService) Perform(context.Context, *Room) error    { return nil }
func (HousekeepingService) Charge(*Room) decimal.Decimal            { return decimal.Zero }

// FoodService delivers an order and charges its amount.
type FoodService struct {
	Amount decimal.Decimal
}

func (FoodService) Name() string                            { return "food" }
func (FoodService) CheckAvailability(context.Context) error { return nil }
func (FoodService) Perform(context.Context, *Room) error    { return nil }
func (s FoodService) Charge(*Room) decimal.Decimal          { return s.Amount }
