package services

import (
	"errors"
	"fmt"

	"campuseats/entity"

	"gorm.io/gorm"
)

// UpdateStatus moves an order owned by the vendor's store to the target
// status. The target must be a declared status (checked by the binding layer
// too) and the move must be legal for the order's current state:
//
//	preparing -> ready | cancelled
//	ready     -> picked_up | cancelled
//	picked_up -> delivered
//
// cancelled and delivered are terminal.
func (s *OrderService) UpdateStatus(userID, orderID uint, target string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(target) {
		return nil, conflict(fmt.Sprintf("Invalid status: %s", target))
	}

	store, err := s.storeForVendor(userID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindForStore(store.ID, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Order not found")
			}
			return err
		}

		if !entity.CanTransition(o.Status, target) {
			return conflict(fmt.Sprintf("Cannot change status from %s to %s", o.Status, target))
		}

		// guard against a concurrent transition between read and write
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			return conflict("Order status changed concurrently")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Repo.GetOrderGraph(orderID)
	if err != nil {
		return nil, err
	}
	if s.Events != nil {
		s.Events.OrderStatusChanged(out)
	}
	return out, nil
}
