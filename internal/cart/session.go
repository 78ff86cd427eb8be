package cart

import (
	"encoding/json"
	"log"
)

// SessionKey is the session key the cart is stored under.
const SessionKey = "cart"

// Session is the subset of a session the cart needs. *session.Session from
// fiber satisfies it.
type Session interface {
	Get(key string) interface{}
	Set(key string, val interface{})
}

// Load reads the cart from the session. A missing or unreadable cart yields an empty one.
func Load(sess Session) *Cart {
	raw, ok := sess.Get(SessionKey).(string)
	if !ok || raw == "" {
		return New()
	}
	c := New()
	if err := json.Unmarshal([]byte(raw), c); err != nil {
		log.Printf("Discarding unreadable cart in session: %v", err)
		return New()
	}
	if c.Lines == nil {
		c.Lines = []Line{}
	}
	return c
}

// Save writes the cart into the session. The caller still has to persist the session.
func Save(sess Session, c *Cart) error {
	body, err := json.Marshal(c)
	if err != nil {
		return err
	}
	sess.Set(SessionKey, string(body))
	return nil
}
