package config

const (
	EnvHotelName = "HOTEL_NAME"
	EnvLogLevel  = "LOG_LEVEL"

	EnvBookingGrace  = "BOOKING_GRACE"
	EnvMaxStayNights = "MAX_STAY_NIGHTS"

	EnvNotifyBrokers = "NOTIFY_BROKERS"
	EnvNotifyTopic   = "NOTIFY_TOPIC"

	EnvSimulatorWorkers = "SIMULATOR_WORKERS"
)
