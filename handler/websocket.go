package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"restaurant_manager/config"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const kitchenChannel = "kitchen:orders"

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	kitchenClients = make(map[*websocket.Conn]bool)
	mu             sync.Mutex
)

func getRedis() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

// PublishKitchenEvent pushes an order event onto the kitchen channel. Failures
// are logged only; the display is a mirror of the database, not a dependency of
// the order flow.
func PublishKitchenEvent(event string, payload any) {
	msg, err := json.Marshal(map[string]any{
		"event": event,
		"data":  payload,
	})
	if err != nil {
		log.Printf("failed to marshal kitchen event: %v", err)
		return
	}

	if err := getRedis().Publish(context.Background(), kitchenChannel, msg).Err(); err != nil {
		log.Printf("failed to publish kitchen event: %v", err)
	}
}

// KitchenWebsocket fans the kitchen channel out to connected display clients.
func KitchenWebsocket(c *websocket.Conn) {
	defer func() {
		mu.Lock()
		delete(kitchenClients, c)
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	kitchenClients[c] = true
	mu.Unlock()

	pubsub := getRedis().Subscribe(context.Background(), kitchenChannel)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range kitchenClients {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(kitchenClients, conn)
			}
		}
		mu.Unlock()
	}
}
