package engine

import "fmt"

// Extension is a named composite capability registered atop the base
// accessor set.
//
// Init, when set, runs exactly once per registered name per engine
// instance, on the extension's first invocation within any run, no matter
// how many later runs or re-entries occur.
//
// Execute receives the full current capability set, so extensions can
// compose over the base accessors and over each other via Caps.Invoke.
type Extension struct {
	Init    func(*Engine)
	Execute func(caps *Caps, args ...any) any
}

// Register adds a named extension. Names must be non-empty and unique for
// the life of the instance; Execute is required.
func (e *Engine) Register(name string, ext Extension) error {
	if name == "" {
		return fmt.Errorf("register extension: name must not be empty")
	}
	if ext.Execute == nil {
		return fmt.Errorf("register extension %q: Execute is required", name)
	}
	if _, dup := e.exts[name]; dup {
		return fmt.Errorf("register extension: duplicate name %q", name)
	}
	e.exts[name] = ext
	return nil
}

// Invoke dispatches a registered extension by name, running its Init
// first if this is the extension's first invocation on this instance.
// Returns *UnknownExtensionError for unregistered names.
func (c *Caps) Invoke(name string, args ...any) (any, error) {
	ext, ok := c.engine.exts[name]
	if !ok {
		return nil, &UnknownExtensionError{Name: name}
	}
	if !c.engine.extInit[name] {
		c.engine.extInit[name] = true
		if ext.Init != nil {
			ext.Init(c.engine)
		}
	}
	return ext.Execute(c, args...), nil
}
