package modkit

// Built is the resolved option set a module constructor reads
type Built struct {
	Name   string
	Prefix string
	Ports  any

	product string
}

// Build applies opts in order, later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:    c.name,
		Prefix:  c.prefix,
		Ports:   c.ports,
		product: c.product,
	}
}

// Product is the default product id, falling back to the first entry of the deps catalog
func (b Built) Product(deps Deps) string {
	if b.product != "" {
		return b.product
	}
	if e := deps.Products().Entries(); len(e) > 0 {
		return e[0].ID
	}
	return ""
}
