// Package web provides the live moderation feed.
// Connected dashboards receive every moderation action as it happens.
package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const feedWriteTimeout = 10 * time.Second

// Feed is a WebSocket hub that pushes moderation events to subscribers
type Feed struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

func newFeed() *Feed {
	return &Feed{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The API is consumed by external dashboards
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// handler upgrades the request and keeps the connection registered until the
// client disconnects
func (f *Feed) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := f.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn(fmt.Sprintf("Feed upgrade failed: %v", err), "WebServer")
			return
		}

		f.mu.Lock()
		f.clients[conn] = struct{}{}
		total := len(f.clients)
		f.mu.Unlock()

		logger.Debug(fmt.Sprintf("Feed client connected (%d active)", total), "WebServer")

		// Drain reads so pings and close frames are processed
		go func() {
			defer f.remove(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}

func (f *Feed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	delete(f.clients, conn)
	f.mu.Unlock()
	conn.Close()
}

// ClientCount returns the number of connected feed subscribers
func (f *Feed) ClientCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// Broadcast sends a moderation event to every connected client. Clients that
// fail to accept the write are dropped.
func (f *Feed) Broadcast(ev moderation.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to encode feed event: %v", err), "WebServer")
		return
	}

	f.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(f.clients))
	for conn := range f.clients {
		conns = append(conns, conn)
	}
	f.mu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			f.remove(conn)
		}
	}
}
