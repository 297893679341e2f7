// Package ws entrega o feed de conteúdo ao vivo por websocket.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

// FeedEvent é a mensagem enviada a cada assinante
type FeedEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub mantém os assinantes do feed e implementa ports.EventPublisher.
// Publish nunca bloqueia: assinante com buffer cheio é desconectado.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	closed   bool
	upgrader websocket.Upgrader
	logger   ports.Logger
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

// NewHub cria o hub; allowedOrigins vazio aceita qualquer origem
func NewHub(allowedOrigins []string, logger ports.Logger) *Hub {
	h := &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// Publish converte o payload em DTO e envia a todos os assinantes
func (h *Hub) Publish(event string, payload any) {
	msg, err := json.Marshal(FeedEvent{Event: event, Data: toFeedData(payload)})
	if err != nil {
		h.logger.Error("failed to encode feed event", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("dropping slow feed subscriber", "event", event)
		h.remove(c)
	}
}

// ServeWS faz o upgrade da conexão e registra o assinante
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// o upgrader já respondeu com o erro HTTP
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBufferSize)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("feed subscriber connected", "remote_addr", conn.RemoteAddr().String())

	go h.writePump(cl)
	go h.readPump(cl)
}

// Subscribers retorna quantos assinantes estão conectados
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close desconecta todos os assinantes; novos upgrades são recusados
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.remove(c)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()

	c.once.Do(func() { close(c.send) })
}

// readPump só consome pongs e detecta a desconexão do cliente
func (h *Hub) readPump(c *client) {
	defer h.remove(c)

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.remove(c)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(c)
				return
			}
		}
	}
}

func toFeedData(payload any) any {
	switch p := payload.(type) {
	case *entities.Horoscope:
		return dto.ToHoroscopeResponse(p)
	case *entities.Blog:
		return dto.ToBlogResponse(p)
	default:
		return p
	}
}
