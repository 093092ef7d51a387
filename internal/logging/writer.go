package logging

import (
	"bytes"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/hbrook/galerie/internal/pubsub"
)

// Message is the event payload for a log message
type Message struct {
	Time       time.Time
	Level      string
	Message    string
	Attributes []Attr

	// Serial uniquely identifies the message (within the scope of the logger
	// it was emitted from). The higher the Serial number the newer the
	// message.
	Serial uint
}

type Attr struct {
	Key   string
	Value string
}

// BySerialDesc sorts messages newest first.
func BySerialDesc(i, j Message) int {
	if i.Serial < j.Serial {
		return 1
	}
	return -1
}

// writer is a slog TextHandler writer that both keeps the log records in
// memory and emits them as events.
type writer struct {
	mu       sync.Mutex
	messages []Message
	serial   uint

	broker *pubsub.Broker[Message]
}

func (w *writer) Write(p []byte) (int, error) {
	var msgs []Message

	w.mu.Lock()
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{Serial: w.serial}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					w.mu.Unlock()
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		w.messages = append(w.messages, msg)
		msgs = append(msgs, msg)
		w.serial++
	}
	w.mu.Unlock()
	if err := d.Err(); err != nil {
		return 0, err
	}

	for _, msg := range msgs {
		w.broker.Publish(pubsub.CreatedEvent, msg)
	}
	return len(p), nil
}

func (w *writer) list() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	msgs := slices.Clone(w.messages)
	slices.SortFunc(msgs, BySerialDesc)
	return msgs
}
