package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"innkeeper/internal/commands"
	"innkeeper/internal/hotel"
	"innkeeper/internal/hotel/validator"
	"innkeeper/internal/notify"
	"innkeeper/pkg/config"
	apperrors "innkeeper/pkg/errors"
	"innkeeper/pkg/kafka"
	"innkeeper/pkg/model"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const ServiceName = "simulator"

func main() {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting booking simulator", "hotel", cfg.HotelName)

	notifier, producer := initNotifier(cfg)
	if producer != nil {
		defer producer.Close()
	}

	h := initHotel(cfg, notifier)
	ctx := context.Background()

	runContentionScenario(ctx, cfg, h)
	runLifecycleScenario(ctx, cfg, h)
	runSearchScenario(cfg, h)
	runRoomServiceScenario(ctx, cfg, h)

	cfg.Log.Info("Simulation complete", "bookings", len(h.Bookings()))
}

func initNotifier(cfg *config.Config) (hotel.Notifier, *kafka.Producer) {
	if len(cfg.NotifyBrokers) == 0 {
		cfg.Log.Info("No brokers configured, logging notifications locally")
		return notify.NewLogNotifier(cfg.Log), nil
	}

	producer, err := kafka.NewProducer(cfg.NotifyBrokers, cfg.NotifyTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	cfg.Log.Info("Publishing notifications to Kafka", "topic", cfg.NotifyTopic)
	return notify.NewKafkaNotifier(producer, ServiceName), producer
}

func initHotel(cfg *config.Config, notifier hotel.Notifier) *hotel.Hotel {
	h := hotel.New(cfg, validator.NewBookingValidator(cfg.Log, cfg.BookingGrace), notifier)

	type seed struct {
		factory hotel.RoomFactory
		id      string
		price   string
		smoking bool
	}
	seeds := []seed{
		{hotel.StandardRooms, "101", "90.00", false},
		{hotel.StandardRooms, "102", "90.00", true},
		{hotel.DeluxeRooms, "201", "150.00", false},
		{hotel.DeluxeRooms, "202", "150.00", false},
		{hotel.BusinessSuiteRooms, "301", "280.00", false},
		{hotel.FamilySuiteRooms, "401", "450.00", false},
	}
	for _, s := range seeds {
		room, err := s.factory(s.id, decimal.RequireFromString(s.price), s.smoking)
		if err != nil {
			cfg.Log.Fatal("Failed to build room", "room_id", s.id, "error", err)
		}
		if err := h.AddRoom(room); err != nil {
			cfg.Log.Fatal("Failed to register room", "room_id", s.id, "error", err)
		}
	}

	accounts := []*hotel.Account{
		hotel.NewGuest("G001", "Alice Moretti", "alice@example.com", "+12125550101"),
		hotel.NewGuest("G002", "Bob Tanaka", "bob@example.com", "+12125550102"),
		hotel.NewGuest("G003", "Chloe Dubois", "chloe@example.com", "+12125550103"),
		hotel.NewReceptionist("R001", "Dana Whitfield", "dana@hotel.example", "+12125550104"),
	}
	for _, a := range accounts {
		if err := h.AddAccount(a); err != nil {
			cfg.Log.Fatal("Failed to register account", "account_id", a.ID(), "error", err)
		}
	}
	return h
}

// runContentionScenario fires every worker at the same room and window; the
// engine admits exactly one of them.
func runContentionScenario(ctx context.Context, cfg *config.Config, h *hotel.Hotel) {
	start := time.Now().AddDate(0, 0, 14)
	guests := []string{"G001", "G002", "G003"}

	var (
		wg      sync.WaitGroup
		winners sync.Map
	)
	for i := 0; i < cfg.SimulatorWorkers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cmd := commands.NewBookRoomCommand(h, model.BookingRequest{
				RoomID:    "201",
				GuestID:   guests[i%len(guests)],
				StartDate: start,
				Nights:    1,
			})
			err := cmd.Execute(ctx)
			switch {
			case err == nil:
				winners.Store(cmd.ReservationID(), struct{}{})
			case apperrors.HasCode(err, apperrors.CodeUnavailable):
				cfg.Log.Debug("Worker lost the race", "worker", i)
			default:
				cfg.Log.Error("Worker failed unexpectedly", "worker", i, "error", err)
			}
		}(i)
	}
	wg.Wait()

	var count int
	winners.Range(func(any, any) bool { count++; return true })
	cfg.Log.Info("Contention scenario finished",
		"workers", cfg.SimulatorWorkers,
		"admitted", count,
	)
}

// runLifecycleScenario walks one booking through cancel/rebook and another
// through the full stay.
func runLifecycleScenario(ctx context.Context, cfg *config.Config, h *hotel.Hotel) {
	start := time.Now().AddDate(0, 0, 30)

	book := commands.NewBookRoomCommand(h, model.BookingRequest{
		ReservationID: "RES_LIFECYCLE",
		RoomID:        "401",
		GuestID:       "G001",
		StartDate:     start,
		Nights:        3,
	})
	if err := book.Execute(ctx); err != nil {
		cfg.Log.Error("Lifecycle booking failed", "error", err)
		return
	}

	cancel := commands.NewCancelBookingCommand(h, "RES_LIFECYCLE")
	if err := cancel.Execute(ctx); err != nil {
		cfg.Log.Error("Cancellation failed", "error", err)
		return
	}
	cfg.Log.Info("Booking cancelled", "applied", cancel.Result().Applied)

	// The cancelled window is free again for another guest.
	rebook := commands.NewBookRoomCommand(h, model.BookingRequest{
		ReservationID: "RES_REBOOK",
		RoomID:        "401",
		GuestID:       "G002",
		StartDate:     start,
		Nights:        3,
	})
	if err := rebook.Execute(ctx); err != nil {
		cfg.Log.Error("Rebooking failed", "error", err)
		return
	}

	b := rebook.Booking()
	if res := h.CheckIn(ctx, b); res.Applied {
		cfg.Log.Info("Guest checked in", "reservation_id", b.ID(), "room_id", b.Room().ID())
	}
	if res := h.CheckOut(ctx, b); res.Applied {
		cfg.Log.Info("Guest checked out", "reservation_id", b.ID(), "total", b.Total())
	}
}

func runSearchScenario(cfg *config.Config, h *hotel.Hotel) {
	start := time.Now().AddDate(0, 0, 14)

	open := h.Search(hotel.AvailabilitySearch{}, "", start, 2)
	suites := h.Search(hotel.StyleSearch{}, hotel.StyleBusinessSuite, start, 2)

	cfg.Log.Info("Search scenario finished",
		"open_rooms", len(open),
		"business_suites", len(suites),
	)
	for _, r := range open {
		cfg.Log.Debug("Open room", "room_id", r.ID(), "style", r.Style(), "price", r.Price())
	}
}

func runRoomServiceScenario(ctx context.Context, cfg *config.Config, h *hotel.Hotel) {
	if err := h.RunRoomService(ctx, hotel.HousekeepingService{}, "201"); err != nil {
		cfg.Log.Error("Housekeeping failed", "error", err)
	}

	food := hotel.FoodService{Amount: decimal.RequireFromString("42.50")}
	if err := h.RunRoomService(ctx, food, "401"); err != nil {
		cfg.Log.Error("Food service failed", "error", err)
	}

	if err := h.RunRoomService(ctx, hotel.HousekeepingService{}, "999"); err != nil {
		cfg.Log.Info(fmt.Sprintf("Room service rejected as expected: %v", err))
	}
}
