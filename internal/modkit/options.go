package modkit

// Option tunes how a module is built
type Option func(*buildCfg)

type buildCfg struct {
	name    string
	prefix  string
	product string
	ports   any
}

// WithName names the module in logs and /meta/service
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts the module below a path under ROOT_PATH
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithProduct sets the product assumed when a provider record does not name one
// unset means the first catalog entry
func WithProduct(id string) Option {
	return func(c *buildCfg) { c.product = id }
}

// WithPorts hands a module its collaborators
// for orders and searches that is a provider upstream, for products the ports of both
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}
