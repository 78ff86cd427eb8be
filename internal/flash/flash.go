package flash

import (
	"encoding/json"
	"log"
)

// SessionKey is the session key pending messages are stored under.
const SessionKey = "flash"

// Message categories.
const (
	Success = "success"
	Error   = "error"
)

// Message is a one-shot status message shown on the next rendered page.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Session is the subset of a session flash messages need.
type Session interface {
	Get(key string) interface{}
	Set(key string, val interface{})
	Delete(key string)
}

// Add queues a message. The caller still has to persist the session.
func Add(sess Session, category, text string) {
	messages := read(sess)
	messages = append(messages, Message{Category: category, Text: text})
	body, err := json.Marshal(messages)
	if err != nil {
		log.Printf("Error encoding flash messages: %v", err)
		return
	}
	sess.Set(SessionKey, string(body))
}

// Pop returns the queued messages and removes them from the session.
func Pop(sess Session) []Message {
	messages := read(sess)
	if len(messages) > 0 {
		sess.Delete(SessionKey)
	}
	return messages
}

func read(sess Session) []Message {
	raw, ok := sess.Get(SessionKey).(string)
	if !ok || raw == "" {
		return nil
	}
	var messages []Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		log.Printf("Discarding unreadable flash messages: %v", err)
		return nil
	}
	return messages
}
