package api

import "sync"

// TokenHolder is the shared bearer-credential holder. The session store
// writes it on login/logout; clients read it at call time so a credential
// change between calls is always picked up.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

func NewTokenHolder() *TokenHolder { return &TokenHolder{} }

func (h *TokenHolder) Set(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

func (h *TokenHolder) Clear() {
	h.Set("")
}

func (h *TokenHolder) Get() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Present reports whether a non-empty credential is currently held.
func (h *TokenHolder) Present() bool { return h.Get() != "" }
