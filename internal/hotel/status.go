package hotel

// BookingStatus is the lifecycle state of a booking. Transitions run
// pending -> confirmed -> checked_in -> checked_out, with cancellation
// allowed while pending or confirmed.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// OccupancyStatus tracks whether a guest is physically in the room. Future
// holds are not encoded here; they live in the room's booking collection.
type OccupancyStatus string

const (
	RoomAvailable OccupancyStatus = "available"
	RoomOccupied  OccupancyStatus = "occupied"
)

type RoomStyle string

const (
	StyleStandard      RoomStyle = "standard"
	StyleDeluxe        RoomStyle = "deluxe"
	StyleBusinessSuite RoomStyle = "business_suite"
	StyleFamilySuite   RoomStyle = "family_suite"
)
