package services

import (
	"errors"
	"fmt"

	"campuseats/entity"
	"campuseats/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderEvents receives notifications after order writes commit. The ws hub
// implements it; a nil sink disables pushes.
type OrderEvents interface {
	OrderCreated(o *entity.Order)
	OrderStatusChanged(o *entity.Order)
}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	StoreRepo *repository.StoreRepository
	Prod      *repository.ProductRepository
	Events    OrderEvents
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	storeRepo *repository.StoreRepository,
	prodRepo *repository.ProductRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, StoreRepo: storeRepo, Prod: prodRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Type      string `json:"type" binding:"required,oneof=order reserve"`

	// display echo only; the committed price always comes from the catalog
	Price decimal.Decimal `json:"price"`
}

type CreateOrderReq struct {
	StoreID uint          `json:"store_id" binding:"required"`
	Items   []OrderItemIn `json:"items" binding:"required,min=1,dive"`

	Type          string `json:"type" binding:"omitempty,oneof=order reservation"`
	PaymentMethod string `json:"payment_method" binding:"omitempty,oneof=cash gcash"`

	PaymentDetails map[string]any `json:"payment_details"`
	UserInfo       map[string]any `json:"user_info"`
	PickupInfo     map[string]any `json:"pickup_info"`

	DeliveryAddress string `json:"delivery_address" binding:"omitempty,max=500"`
	Notes           string `json:"notes" binding:"omitempty,max=1000"`
}

// pricedLine is one request line after Catalog Lookup and pricing
type pricedLine struct {
	productID   uint
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	total       decimal.Decimal
	itemType    string
}

// priceLine validates one request line against the catalog and computes its
// total. No side effects.
func (s *OrderService) priceLine(storeID uint, in OrderItemIn) (*pricedLine, error) {
	p, err := s.Prod.FindForStore(storeID, in.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Product not found or does not belong to this store")
		}
		return nil, err
	}
	if !p.IsAvailable {
		return nil, conflict(fmt.Sprintf("Product is not available: %s", p.Name))
	}

	qty := decimal.NewFromInt(int64(in.Quantity))
	return &pricedLine{
		productID:   p.ID,
		productName: p.Name,
		quantity:    in.Quantity,
		unitPrice:   p.Price,
		total:       p.Price.Mul(qty),
		itemType:    in.Type,
	}, nil
}

// Create runs the whole order workflow: resolve and price every line, then
// persist the header and all items in one transaction. Any line failure
// aborts before the first write.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if _, err := s.StoreRepo.FindByID(req.StoreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Store not found")
		}
		return nil, err
	}

	subtotal := decimal.Zero
	lines := make([]*pricedLine, 0, len(req.Items))
	for _, in := range req.Items {
		line, err := s.priceLine(req.StoreID, in)
		if err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(line.total)
		lines = append(lines, line)
	}

	serviceFee := decimal.Zero
	total := subtotal.Add(serviceFee)

	orderType := req.Type
	if orderType == "" {
		orderType = entity.OrderTypeOrder
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentCash
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Type:            orderType,
			Status:          entity.StatusPreparing,
			Subtotal:        subtotal,
			ServiceFee:      serviceFee,
			Total:           total,
			PaymentMethod:   paymentMethod,
			PaymentDetails:  req.PaymentDetails,
			UserInfo:        req.UserInfo,
			PickupInfo:      req.PickupInfo,
			DeliveryAddress: req.DeliveryAddress,
			Notes:           req.Notes,
			UserID:          userID,
			StoreID:         req.StoreID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				Quantity:    l.quantity,
				Price:       l.unitPrice,
				Total:       l.total,
				Type:        l.itemType,
				ProductName: l.productName,
				OrderID:     order.ID,
				ProductID:   l.productID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		orderID = order.ID
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
		s.Events.OrderCreated(out)
	}
	return out, nil
}

// ----- vendor / customer views -----

// storeForVendor resolves the caller's store or reports NotFound.
func (s *OrderService) storeForVendor(userID uint) (*entity.Store, error) {
	store, err := s.StoreRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Store not found")
		}
		return nil, err
	}
	return store, nil
}

func (s *OrderService) ListForVendor(userID uint) ([]entity.Order, error) {
	store, err := s.storeForVendor(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListForStore(store.ID)
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

// ----- statistics -----

type Statistics struct {
	TotalOrders   int64           `json:"total_orders"`
	PendingOrders int64           `json:"pending_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// StatisticsForVendor computes the aggregates fresh per request.
func (s *OrderService) StatisticsForVendor(userID uint) (*Statistics, error) {
	store, err := s.storeForVendor(userID)
	if err != nil {
		return nil, err
	}

	total, err := s.Repo.CountForStore(store.ID)
	if err != nil {
		return nil, err
	}
	pending, err := s.Repo.CountPendingForStore(store.ID)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Repo.RevenueForStore(store.ID)
	if err != nil {
		return nil, err
	}

	return &Statistics{TotalOrders: total, PendingOrders: pending, TotalRevenue: revenue}, nil
}
