package web

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kapu/pokedex-web-go/internal/adapter"
	"github.com/kapu/pokedex-web-go/internal/constants"
	"github.com/kapu/pokedex-web-go/internal/domain"
	"go.uber.org/zap"
)

// Session is one browser tab. It is both the ActionSource that reports the
// tab's form submits and button clicks and the Surface its panels render to.
type Session struct {
	id       string
	conn     *websocket.Conn
	renderer *adapter.HTMLRenderer
	logger   *zap.Logger

	writeMu sync.Mutex

	handlersMu       sync.RWMutex
	submitHandlers   []domain.SubmitHandler
	activateHandlers []domain.ActivateHandler

	actions   sync.WaitGroup
	closeOnce sync.Once
}

func NewSession(conn *websocket.Conn, renderer *adapter.HTMLRenderer, logger *zap.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:       id,
		conn:     conn,
		renderer: renderer,
		logger:   logger.With(zap.String("session", id)),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) OnSubmit(handler domain.SubmitHandler) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.submitHandlers = append(s.submitHandlers, handler)
}

func (s *Session) OnActivateBatch(handler domain.ActivateHandler) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.activateHandlers = append(s.activateHandlers, handler)
}

// Run greets the client and reads actions until the connection drops or ctx
// ends. Actions run concurrently so a slow batch never blocks a search; Run
// returns only after every started action has finished.
func (s *Session) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		s.actions.Wait()
		s.close()
		s.logger.Info("WebSocket session closed")
	}()

	go func() {
		<-ctx.Done()
		s.close()
	}()

	s.conn.SetReadLimit(constants.WebSocketConfig.MaxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(constants.WebSocketConfig.PongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(constants.WebSocketConfig.PongWait))
	})

	go s.pingLoop(ctx)

	s.send(ServerMessage{Type: ServerHello, Session: s.id})
	s.logger.Info("WebSocket session opened")

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("WebSocket read error", zap.Error(err))
			}
			return
		}
		s.handleMessage(ctx, data)
	}
}

func (s *Session) handleMessage(ctx context.Context, data []byte) {
	var message ClientMessage
	if err := json.Unmarshal(data, &message); err != nil {
		dataStr := string(data)
		if len(dataStr) > 200 {
			dataStr = dataStr[:200]
		}
		s.logger.Warn("Failed to parse client message",
			zap.Error(err),
			zap.String("data", dataStr),
		)
		return
	}

	switch domain.ParseCommandType(message.Type) {
	case domain.CommandSearch:
		s.handlersMu.RLock()
		handlers := append([]domain.SubmitHandler(nil), s.submitHandlers...)
		s.handlersMu.RUnlock()
		for _, handler := range handlers {
			s.spawn(func() { handler(ctx, message.Query) })
		}
	case domain.CommandBatch:
		s.handlersMu.RLock()
		handlers := append([]domain.ActivateHandler(nil), s.activateHandlers...)
		s.handlersMu.RUnlock()
		for _, handler := range handlers {
			s.spawn(func() { handler(ctx) })
		}
	default:
		s.logger.Debug("Ignoring unknown client message", zap.String("type", message.Type))
	}
}

func (s *Session) spawn(fn func()) {
	s.actions.Add(1)
	go func() {
		defer s.actions.Done()
		fn()
	}()
}

func (s *Session) pingLoop(ctx context.Context) {
	ticker := time.NewTicker(constants.WebSocketConfig.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deadline := time.Now().Add(constants.WebSocketConfig.WriteWait)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.logger.Debug("Ping failed", zap.Error(err))
				return
			}
		}
	}
}

func (s *Session) SetStatus(status domain.Status) {
	s.send(ServerMessage{Type: ServerStatus, Message: status.Message, Tone: status.Tone})
}

func (s *Session) ShowDetail(view domain.DetailView) {
	html, err := s.renderer.RenderDetail(view)
	if err != nil {
		s.logger.Error("Failed to render detail panel", zap.Error(err))
		return
	}
	s.send(ServerMessage{Type: ServerDetail, HTML: html})
}

func (s *Session) ShowGrid(view domain.GridView) {
	html, err := s.renderer.RenderGrid(view)
	if err != nil {
		s.logger.Error("Failed to render grid panel", zap.Error(err))
		return
	}
	s.send(ServerMessage{Type: ServerGrid, HTML: html})
}

func (s *Session) SetBatchEnabled(enabled bool) {
	s.send(ServerMessage{Type: ServerControl, Target: BatchControl, Enabled: &enabled})
}

func (s *Session) send(message ServerMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(constants.WebSocketConfig.WriteWait))
	if err := s.conn.WriteJSON(message); err != nil {
		s.logger.Debug("WebSocket write failed",
			zap.String("type", message.Type),
			zap.Error(err),
		)
	}
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		deadline := time.Now().Add(constants.WebSocketConfig.WriteWait)
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		if err := s.conn.Close(); err != nil {
			s.logger.Debug("WebSocket close failed", zap.Error(err))
		}
	})
}
