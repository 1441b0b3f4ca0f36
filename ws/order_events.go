package ws

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"campuseats/entity"
	"campuseats/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

// OrderHub pushes order events to vendor dashboards. One feed per store;
// the vendor subscribes to their own store only.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // storeID -> set of clients
	broadcast  chan OrderEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	stores     *repository.StoreRepository
}

type Subscription struct {
	Conn    *websocket.Conn
	StoreID uint
	UserID  uint
}

type OrderEvent struct {
	StoreID uint          `json:"-"`
	Event   string        `json:"event"` // order.created | order.status_changed
	Order   *entity.Order `json:"order"`
}

func NewOrderHub(stores *repository.StoreRepository) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		stores:     stores,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.StoreID] == nil {
				h.clients[sub.StoreID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.StoreID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.StoreID][sub.Conn]; ok {
				delete(h.clients[sub.StoreID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.StoreID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.StoreID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// services.OrderEvents

func (h *OrderHub) OrderCreated(o *entity.Order) {
	h.broadcast <- OrderEvent{StoreID: o.StoreID, Event: "order.created", Order: o}
}

func (h *OrderHub) OrderStatusChanged(o *entity.Order) {
	h.broadcast <- OrderEvent{StoreID: o.StoreID, Event: "order.status_changed", Order: o}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/orders. The caller must own a store.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userIDVal, _ := c.Get("userId")
	userID, _ := userIDVal.(uint)

	store, err := h.stores.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Store not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, StoreID: store.ID, UserID: userID}
	h.register <- sub

	go h.keepAlive(sub)
}

// keepAlive drains client frames so pings work and unregisters on close.
func (h *OrderHub) keepAlive(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
