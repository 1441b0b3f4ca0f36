package entity

const (
	OrderTypeOrder       = "order"
	OrderTypeReservation = "reservation"
)

func ValidOrderType(t string) bool {
	return t == OrderTypeOrder || t == OrderTypeReservation
}

// line items carry their own type tag, distinct from the order's
const (
	ItemTypeOrder   = "order"
	ItemTypeReserve = "reserve"
)

func ValidItemType(t string) bool {
	return t == ItemTypeOrder || t == ItemTypeReserve
}
