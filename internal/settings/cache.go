package settings

import "sync"

// Cache remembers the last settings text it parsed, so unchanged card text
// is not re-parsed every turn.
type Cache struct {
	mu        sync.Mutex
	text      string
	canonical string
	value     Settings
	loaded    bool
}

// Resolve returns the settings for text and the canonical text that should
// be stored back. Empty text yields the defaults.
func (c *Cache) Resolve(text string) (Settings, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded && text == c.text {
		return c.value, c.canonical
	}
	s := Default()
	if text != "" {
		s = Parse(text)
	}
	c.text, c.value, c.canonical, c.loaded = text, s, s.Serialize(), true
	return c.value, c.canonical
}
