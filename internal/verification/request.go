// Package verification models the verification services a user can trigger
// from the main view. A service is either open to anonymous users or gated
// behind a session; the two cases are distinct request kinds rather than a
// boolean on one path.
package verification

import "fmt"

type Kind int

const (
	// KindAnonymous runs without a session. If one happens to exist, the
	// run is still recorded in the activity feed.
	KindAnonymous Kind = iota

	// KindAuthRequired runs only with a session; attempted while logged
	// out it is deferred until the next successful login.
	KindAuthRequired
)

func (k Kind) String() string {
	switch k {
	case KindAnonymous:
		return "open"
	case KindAuthRequired:
		return "login required"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Request is one resolved gated-action request.
type Request struct {
	Service string
	Kind    Kind
}

// Registry lists the verification services the client knows about,
// preserving their display order.
type Registry struct {
	order []string
	kinds map[string]Kind
}

func NewRegistry() *Registry {
	return &Registry{kinds: map[string]Kind{}}
}

// Add registers a service. Re-adding an existing name only updates its
// kind.
func (r *Registry) Add(service string, kind Kind) {
	if _, ok := r.kinds[service]; !ok {
		r.order = append(r.order, service)
	}
	r.kinds[service] = kind
}

// Resolve turns a service name into a Request. Unknown names resolve to
// nothing.
func (r *Registry) Resolve(service string) (Request, bool) {
	kind, ok := r.kinds[service]
	if !ok {
		return Request{}, false
	}
	return Request{Service: service, Kind: kind}, true
}

// Services returns the known service names in display order.
func (r *Registry) Services() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
