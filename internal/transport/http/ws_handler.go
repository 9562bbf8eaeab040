package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"purrfect-cats/internal/app"
	"purrfect-cats/internal/domain"
)

type WSHandler struct {
	service        *app.ViewService
	defaultCatalog string
	upgrader       websocket.Upgrader
}

func NewWSHandler(service *app.ViewService, defaultCatalog string) *WSHandler {
	return &WSHandler{
		service:        service,
		defaultCatalog: defaultCatalog,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Option string `json:"option"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type noticePayload struct {
	Message string `json:"message"`
}

type errorPayload struct {
	Message string `json:"message"`
}

var errInvalidAnswer = errors.New("invalid answer payload")

// writeWait bounds a single frame write to a client that stopped reading.
const writeWait = 10 * time.Second

// jsonWriter is the slice of *websocket.Conn the writer needs.
type jsonWriter interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v interface{}) error
}

// writeLoop is the single writer of a connection. After a failed or timed
// out write it keeps draining send so producers never block.
func writeLoop(conn jsonWriter, send <-chan outboundMessage[any], wait time.Duration) {
	failed := false
	for msg := range send {
		if failed {
			continue
		}
		_ = conn.SetWriteDeadline(time.Now().Add(wait))
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("ws write error: %v", err)
			failed = true
		}
	}
}

// ServeWS upgrades HTTP requests to websockets; each connection drives one view.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	catalogID := r.URL.Query().Get("catalogId")
	if catalogID == "" {
		catalogID = h.defaultCatalog
	}

	view, err := h.service.Open(r.Context(), catalogID)
	if err != nil {
		writeError(w, err)
		return
	}
	defer h.service.Close(view.ID())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Unblock the read loop when the server shuts down.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	runDone := make(chan struct{})
	go func() {
		defer close(runDone)
		if err := view.Run(ctx); err != nil {
			log.Printf("view %s stopped: %v", view.ID(), err)
		}
	}()

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		writeLoop(conn, send, writeWait)
	}()

	keepAliveDone := make(chan struct{})
	go func() {
		defer close(keepAliveDone)
		h.service.KeepAlive(ctx, view.ID())
	}()

	go func() {
		defer close(updatesDone)
		for update := range view.Updates() {
			send <- toOutbound(update)
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		cmd, err := toCommand(inbound)
		if err != nil {
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
			continue
		}
		if err := view.Dispatch(ctx, cmd); err != nil {
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
		}
	}

	cancel()
	<-keepAliveDone
	<-runDone
	<-updatesDone
	close(send)
	<-writerDone
}

func toCommand(inbound inboundMessage) (domain.Command, error) {
	cmd := domain.Command{Kind: domain.CommandKind(inbound.Type)}
	if !cmd.Valid() {
		return cmd, domain.ErrUnknownCommand
	}
	if cmd.Kind == domain.CommandAnswer {
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return cmd, errInvalidAnswer
		}
		cmd.Option = payload.Option
	}
	return cmd, nil
}

func toOutbound(update domain.ViewUpdate) outboundMessage[any] {
	if update.Kind == domain.UpdateNotice {
		return outboundMessage[any]{Type: "notice", Payload: noticePayload{Message: update.Notice}}
	}
	return outboundMessage[any]{Type: "state", Payload: update.State}
}
