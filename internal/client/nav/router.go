// Package nav tracks the client's current route ("/login", "/summary",
// "/uploads/{id}") and tells front-ends when it changes.
package nav

import (
	"net/url"
	"strings"
	"sync"

	"github.com/dmitrijs2005/payrollview/internal/common"
)

// Router is safe for concurrent use. It implements api.Navigator.
type Router struct {
	mu        sync.Mutex
	path      string
	listeners map[int]func(string)
	nextID    int
}

func NewRouter(initial string) *Router {
	return &Router{path: initial, listeners: map[int]func(string){}}
}

func (r *Router) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// Navigate sets the route and notifies listeners, outside the lock.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	r.path = path
	fns := make([]func(string), 0, len(r.listeners))
	for _, fn := range r.listeners {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(path)
	}
}

// OnNavigate registers fn and returns its cancel function.
func (r *Router) OnNavigate(fn func(string)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.listeners[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

// UploadRoute is the detail route of an upload. The id is path-escaped so
// it always forms a single segment.
func UploadRoute(id string) string {
	return "/uploads/" + url.PathEscape(id)
}

// UploadIDFromRoute extracts the unescaped id from an upload detail route.
func UploadIDFromRoute(path string) (string, bool) {
	seg, ok := strings.CutPrefix(path, "/uploads/")
	seg = strings.Trim(seg, "/")
	if !ok || seg == "" || strings.Contains(seg, "/") {
		return "", false
	}
	id, err := url.PathUnescape(seg)
	if err != nil {
		return "", false
	}
	return id, true
}

// IsAuthRoute reports whether path is one of the sign-in routes.
func IsAuthRoute(path string) bool {
	return path == common.RouteLogin || path == common.RouteRegister
}
