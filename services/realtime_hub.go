package services

import (
	"encoding/json"
	"sync"

	"github.com/gustta03/meals-api/models"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	Phone string
	Conn  *websocket.Conn
}

// RealtimeHub pushes meal-logged events to connected dashboard clients,
// keyed by the user they watch.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.Phone] == nil {
		h.clients[c.Phone] = make(map[*WSClient]struct{})
	}
	h.clients[c.Phone][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.Phone]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Phone)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

type mealEvent struct {
	Event     string  `json:"event"`
	UserPhone string  `json:"user_phone"`
	MealUUID  string  `json:"meal_uuid"`
	MealType  string  `json:"meal_type"`
	Kcal      float64 `json:"kcal"`
	ProteinG  float64 `json:"protein_g"`
	CarbG     float64 `json:"carb_g"`
	FatG      float64 `json:"fat_g"`
}

func (h *RealtimeHub) BroadcastMealLogged(phone string, meal *models.Meal) {
	msg, _ := json.Marshal(mealEvent{
		Event:     "meal_logged",
		UserPhone: phone,
		MealUUID:  meal.UUID,
		MealType:  string(meal.Type),
		Kcal:      meal.KcalTotal,
		ProteinG:  meal.ProteinTotal,
		CarbG:     meal.CarbTotal,
		FatG:      meal.FatTotal,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[phone] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
