package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	uuid "github.com/google/uuid"
	websocket "github.com/gorilla/websocket"
	config "github.com/inference-gateway/deskcast/config"
	constants "github.com/inference-gateway/deskcast/internal/constants"
	geometry "github.com/inference-gateway/deskcast/internal/geometry"
	logger "github.com/inference-gateway/deskcast/internal/logger"
	pointer "github.com/inference-gateway/deskcast/internal/pointer"
	zap "go.uber.org/zap"
)

// FrameSource captures the host screen for viewers
type FrameSource interface {
	Capture(ctx context.Context, element geometry.Size) (*pointer.Frame, error)
}

// PointerHandler executes viewer input on the host and captures its screen
type PointerHandler interface {
	FrameSource
	Handle(ctx context.Context, ev pointer.Event) (*pointer.Result, error)
}

// WSMessage is an inbound pointer channel message
type WSMessage struct {
	Type          string  `json:"type"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	ElementWidth  float64 `json:"element_width"`
	ElementHeight float64 `json:"element_height"`
	SourceWidth   float64 `json:"source_width,omitempty"`
	SourceHeight  float64 `json:"source_height,omitempty"`
	Button        string  `json:"button,omitempty"`
	Clicks        int     `json:"clicks,omitempty"`
	Direction     string  `json:"direction,omitempty"`
	Key           string  `json:"key,omitempty"`
	Text          string  `json:"text,omitempty"`
}

// WSResponse is an outbound pointer channel message.
// X and Y are only present on acks of positional events.
type WSResponse struct {
	Type     string `json:"type"`
	ClientID string `json:"client_id,omitempty"`
	X        *int   `json:"x,omitempty"`
	Y        *int   `json:"y,omitempty"`
	Clamped  bool   `json:"clamped,omitempty"`
	Error    string `json:"error,omitempty"`
	Time     string `json:"time,omitempty"`
}

// WSFrame carries one base64 PNG screen capture
type WSFrame struct {
	Type         string `json:"type"`
	Format       string `json:"format"`
	Data         string `json:"data"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	SourceWidth  int    `json:"source_width"`
	SourceHeight int    `json:"source_height"`
}

// WebSocketHandler handles the pointer channel websocket
type WebSocketHandler struct {
	pointers PointerHandler
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(cfg *config.Config, pointers PointerHandler) *WebSocketHandler {
	cors := cfg.Server.CORS
	return &WebSocketHandler{
		pointers: pointers,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return cors.AllowsOrigin(r.Header.Get("Origin"))
			},
		},
	}
}

// HandleWebSocket upgrades the request and runs the pointer message loop
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade to WebSocket", "error", err)
		return
	}
	defer h.closeConnection(conn)

	clientID := uuid.New().String()
	ctx := logger.WithClient(r.Context(), clientID)
	logger.L(ctx).Info("Pointer client connected", zap.String("remote_addr", r.RemoteAddr))

	h.sendMessage(ctx, conn, WSResponse{Type: "hello", ClientID: clientID, Time: now()})
	h.messageLoop(ctx, conn)

	logger.L(ctx).Info("Pointer client disconnected")
}

func (h *WebSocketHandler) closeConnection(conn *websocket.Conn) {
	if err := conn.Close(); err != nil {
		logger.Warn("Failed to close WebSocket connection", "error", err)
	}
}

func (h *WebSocketHandler) messageLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.L(ctx).Warn("Failed to read WebSocket message", zap.Error(err))
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.sendError(ctx, conn, fmt.Sprintf("Invalid message: %v", err))
			continue
		}

		h.handleMessage(ctx, conn, msg)
	}
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, conn *websocket.Conn, msg WSMessage) {
	switch msg.Type {
	case "ping":
		h.sendMessage(ctx, conn, WSResponse{Type: "pong", Time: now()})
	case "frame":
		h.handleFrame(ctx, conn, msg)
	case string(pointer.EventMove), string(pointer.EventClick), string(pointer.EventDown), string(pointer.EventUp),
		string(pointer.EventScroll), string(pointer.EventKey), string(pointer.EventText):
		h.handlePointer(ctx, conn, msg)
	default:
		h.sendError(ctx, conn, fmt.Sprintf("Unknown message type: %s", msg.Type))
	}
}

func (h *WebSocketHandler) handlePointer(ctx context.Context, conn *websocket.Conn, msg WSMessage) {
	result, err := h.pointers.Handle(ctx, pointer.Event{
		Type:          pointer.EventType(msg.Type),
		X:             msg.X,
		Y:             msg.Y,
		ElementWidth:  msg.ElementWidth,
		ElementHeight: msg.ElementHeight,
		SourceWidth:   msg.SourceWidth,
		SourceHeight:  msg.SourceHeight,
		Button:        msg.Button,
		Clicks:        msg.Clicks,
		Direction:     msg.Direction,
		Key:           msg.Key,
		Text:          msg.Text,
	})
	if err != nil {
		if !isViewerError(err) {
			logger.L(ctx).Warn("Pointer event failed", zap.String("type", msg.Type), zap.Error(err))
		}
		h.sendError(ctx, conn, err.Error())
		return
	}

	ack := WSResponse{Type: "ack", Clamped: result.Clamped}
	if pointer.EventType(msg.Type).Positional() {
		p := result.Point.Image()
		ack.X, ack.Y = &p.X, &p.Y
	}
	h.sendMessage(ctx, conn, ack)
}

func (h *WebSocketHandler) handleFrame(ctx context.Context, conn *websocket.Conn, msg WSMessage) {
	frame, err := h.pointers.Capture(ctx, geometry.Size{Width: msg.ElementWidth, Height: msg.ElementHeight})
	if err != nil {
		if !isViewerError(err) {
			logger.L(ctx).Warn("Screen capture failed", zap.Error(err))
		}
		h.sendError(ctx, conn, err.Error())
		return
	}

	h.sendMessage(ctx, conn, WSFrame{
		Type:         "frame",
		Format:       "png",
		Data:         base64.StdEncoding.EncodeToString(frame.PNG),
		Width:        frame.Width,
		Height:       frame.Height,
		SourceWidth:  frame.SourceWidth,
		SourceHeight: frame.SourceHeight,
	})
}

// isViewerError reports whether err is caused by a malformed viewer message
func isViewerError(err error) bool {
	for _, target := range []error{
		pointer.ErrInvalidSize,
		pointer.ErrUnknownButton,
		pointer.ErrUnknownDirection,
		pointer.ErrEmptyInput,
		pointer.ErrOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (h *WebSocketHandler) sendMessage(ctx context.Context, conn *websocket.Conn, msg any) {
	if err := conn.SetWriteDeadline(time.Now().Add(constants.WSWriteTimeout)); err != nil {
		logger.L(ctx).Warn("Failed to set write deadline", zap.Error(err))
	}
	if err := conn.WriteJSON(msg); err != nil {
		logger.L(ctx).Error("Failed to send WebSocket message", zap.Error(err))
	}
}

// sendError reports a failure in-band; the connection stays open
func (h *WebSocketHandler) sendError(ctx context.Context, conn *websocket.Conn, errMsg string) {
	h.sendMessage(ctx, conn, WSResponse{
		Type:  "error",
		Error: errMsg,
		Time:  now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
