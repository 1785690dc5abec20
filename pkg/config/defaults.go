package config

import "time"

const (
	DefaultHotelName = "Grand Plaza"
	DefaultLogLevel  = "info"

	// How far in the past a start date may lie; one day keeps same-day
	// bookings valid across time zones.
	DefaultBookingGrace = 24 * time.Hour

	DefaultMaxStayNights = 365

	DefaultNotifyTopic = "booking-notifications"

	DefaultSimulatorWorkers = 10
)
