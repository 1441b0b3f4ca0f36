package entity

const (
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusPickedUp  = "picked_up"
	StatusCancelled = "cancelled"
	StatusDelivered = "delivered"
)

var OrderStatuses = []string{
	StatusPreparing,
	StatusReady,
	StatusPickedUp,
	StatusCancelled,
	StatusDelivered,
}

// statusTransitions maps each status to the statuses it may move to.
// cancelled and delivered are terminal.
var statusTransitions = map[string][]string{
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusPickedUp, StatusCancelled},
	StatusPickedUp:  {StatusDelivered},
	StatusCancelled: {},
	StatusDelivered: {},
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func CanTransition(from, to string) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
