// Package push consumes the realtime notification channel. The channel is a
// black box: each named event carries the affected course/module/assignment
// and the only obligation on receipt is to surface a notice and trigger the
// matching re-fetch. No ordering or delivery guarantees exist.
package push

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Named events published by the academic backend.
const (
	EventNewSubmission       = "entrega_nueva"
	EventSubmissionUpdated   = "entrega_actualizada"
	EventAssignmentDelivered = "tarea_entregada_docente"
	EventGradeUpdated        = "calificacion_actualizada"
	EventSubmissionGraded    = "entrega_calificada"
	EventModuleCreated       = "modulo_creado"
	EventNewAssignment       = "nueva_tarea"
)

// Event is one message from the push channel.
type Event struct {
	Name         string `json:"evento"`
	CourseID     string `json:"id_curso,omitempty"`
	ModuleID     string `json:"id_modulo,omitempty"`
	AssignmentID string `json:"id_tarea,omitempty"`
	Message      string `json:"mensaje,omitempty"`
}

// Handler reacts to one event. Its contract is "may trigger a re-fetch of
// one named resource"; handlers must not assume ordering between events
// and user-initiated mutations, since both converge on the same
// server-authoritative state.
type Handler func(Event)

// Listener subscribes to the push channel over a websocket.
type Listener struct {
	url   string
	token string

	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewListener creates a listener for the given websocket URL. The bearer
// token is sent on the connection handshake.
func NewListener(url, token string) *Listener {
	return &Listener{
		url:      url,
		token:    token,
		handlers: make(map[string][]Handler),
	}
}

// OnEvent registers a handler for a named event. Multiple handlers per
// event are allowed and run in registration order.
func (l *Listener) OnEvent(name string, h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers[name] = append(l.handlers[name], h)
}

// Listen connects and dispatches events until the context is cancelled or
// the connection drops. It returns the terminating error; reconnecting is
// the caller's decision.
func (l *Listener) Listen(ctx context.Context) error {
	header := http.Header{}
	if l.token != "" {
		header.Set("Authorization", "Bearer "+l.token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, l.url, header)
	if err != nil {
		return err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// Unblock ReadMessage when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	log.Printf("INFO: Connected to push channel at %s", l.url)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		l.dispatch(raw)
	}
}

// dispatch decodes one raw message and fans it out. Unknown or malformed
// events are logged and dropped; they never take the listener down.
func (l *Listener) dispatch(raw []byte) {
	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		log.Printf("WARN: Dropping malformed push message: %v", err)
		return
	}
	if event.Name == "" {
		log.Printf("WARN: Dropping push message without event name")
		return
	}

	l.mu.RLock()
	handlers := l.handlers[event.Name]
	l.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
