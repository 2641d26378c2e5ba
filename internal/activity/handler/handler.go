package handler

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"villanova-server/internal/activity/processor"
	"villanova-server/internal/apierrors"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	processor *processor.ActivityProcessor
	logger    *observability.Logger
}

func New(processor *processor.ActivityProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

func adminIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	adminID, err := uuid.Parse(c.GetString("User-ID"))
	if err != nil {
		apierrors.Unauthorized(c, "invalid admin id")
		return uuid.Nil, false
	}
	return adminID, true
}

// queryLimit reads the optional limit query parameter; zero means the default
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		apierrors.BadRequest(c, "INVALID_INPUT", "limit must be a positive integer")
		return 0, false
	}
	return limit, true
}

// HandleListActivity returns the admin's recent activity, newest first
func (h *Handler) HandleListActivity(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := adminIDFromContext(c)
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	entries, err := h.processor.List(ctx, adminID, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": entries})
}

// HandleListInteractions returns the comments and messages the bot answered
func (h *Handler) HandleListInteractions(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := adminIDFromContext(c)
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	interactions, err := h.processor.ListInteractions(ctx, adminID, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interactions": interactions})
}

// HandleActivityStream upgrades to a websocket and pushes new entries as JSON
func (h *Handler) HandleActivityStream(c *gin.Context) {
	adminID, ok := adminIDFromContext(c)
	if !ok {
		return
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "admin_id", Value: adminID})

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "failed to upgrade activity stream", err)
		return
	}

	feed, unsubscribe := h.processor.Subscribe(adminID)
	stream := &activityStream{conn: conn, logger: h.logger}
	stream.run(ctx, feed)
	unsubscribe()
}

type activityStream struct {
	conn       *websocket.Conn
	logger     *observability.Logger
	writeMutex sync.Mutex
}

func (s *activityStream) run(ctx context.Context, feed <-chan store.ActivityLog) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	go s.readLoop(cancel)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	s.logger.Info(ctx, "activity stream opened")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "activity stream closed")
			return
		case entry, ok := <-feed:
			if !ok {
				return
			}
			if err := s.write(func() error { return s.conn.WriteJSON(entry) }); err != nil {
				s.logger.WarnWithError(ctx, "failed to write activity entry", err)
				return
			}
		case <-ticker.C:
			if err := s.write(func() error { return s.conn.WriteMessage(websocket.PingMessage, nil) }); err != nil {
				return
			}
		}
	}
}

// readLoop consumes control frames and cancels the stream when the client goes away
func (s *activityStream) readLoop(cancel context.CancelFunc) {
	defer cancel()
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *activityStream) write(fn func() error) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return fn()
}
