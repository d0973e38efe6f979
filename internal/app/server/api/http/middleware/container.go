package middleware

import "github.com/danielgtaylor/huma/v2"

// Container accumulates middlewares for the handler being wired next.
// GetAllAndClear hands them over and resets, so the same container builds
// a different chain per handler.
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.mws = append(c.mws, mw)
}

func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.mws
	c.mws = nil
	return out
}
