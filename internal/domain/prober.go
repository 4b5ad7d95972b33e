package domain

import "context"

// Prober checks that the rendering capability's external dependency is
// available. Separate from Renderer so health checks stay cheap: probing
// never renders anything.
type Prober interface {
	Probe(ctx context.Context) error
}
