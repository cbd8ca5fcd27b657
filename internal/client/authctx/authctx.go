// Package authctx holds the authentication context stamped onto every
// outbound API request.
//
// The HTTP client is constructed once at process start, before any session
// exists. Instead of rebuilding the client on login, it keeps a reference to
// a Context whose (token, tenant) pair is replaced by session transitions and
// read just before each request is sent.
package authctx

import "sync"

// Context is the shared (token, tenant) pair. There is exactly one writer
// path (the session store) and many readers (every outbound request).
type Context struct {
	mu     sync.RWMutex
	token  string
	tenant string
}

func New() *Context {
	return &Context{}
}

// Set replaces both values at once. Requests observe either the previous
// pair or the new one, never a mix.
func (c *Context) Set(token, tenant string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.tenant = tenant
}

// Snapshot returns the current pair. Empty strings mean "not set".
func (c *Context) Snapshot() (token, tenant string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.tenant
}
