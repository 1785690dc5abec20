package hotel

import "github.com/shopspring/decimal"

// RoomFactory builds rooms of a fixed style; used only at setup.
type RoomFactory func(id string, price decimal.Decimal, smoking bool) (*Room, error)

// FactoryFor binds a style into a RoomFactory.
func FactoryFor(style RoomStyle) RoomFactory {
	return func(id string, price decimal.Decimal, smoking bool) (*Room, error) {
		return NewRoom(id, style, price, smoking)
	}
}

var (
	StandardRooms      = FactoryFor(StyleStandard)
	DeluxeRooms        = FactoryFor(StyleDeluxe)
	BusinessSuiteRooms = FactoryFor(StyleBusinessSuite)
	FamilySuiteRooms   = FactoryFor(StyleFamilySuite)
)
