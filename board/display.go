package board

// Display bundles the geometry, renderer, line drawer and resolver for one
// board, so a game driver only has to hold a single value.
type Display struct {
	*Renderer
	*LineDrawer
	*Resolver

	Geometry *Geometry
}

// NewDisplay builds every board component from a region and its collaborators.
// touch may be nil for output-only displays; ResolveTouch must not be called then.
func NewDisplay(region Region, canvas Canvas, touch TouchController, style Style) (*Display, error) {
	geom, err := NewGeometry(region)
	if err != nil {
		return nil, err
	}

	renderer, err := NewRenderer(geom, canvas, style)
	if err != nil {
		return nil, err
	}

	return &Display{
		Renderer:   renderer,
		LineDrawer: NewLineDrawer(geom, canvas, style.Grid),
		Resolver:   NewResolver(geom, touch),
		Geometry:   geom,
	}, nil
}
