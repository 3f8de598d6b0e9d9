package catalog

// Repository serves the read-only catalog. All lookups are index hits; the
// data never changes after construction, so no locking is needed.
type Repository struct {
	products     []Product
	services     []Service
	productByID  map[string]Product
	serviceByID  map[string]Service
	offeringByID map[string]Offering
}

// NewRepository builds a repository seeded with the storefront catalog.
func NewRepository() *Repository {
	return newRepository(seedProducts(), seedServices())
}

// NewRepositoryWith builds a repository over the given data. Used by tests
// that need a controlled catalog.
func NewRepositoryWith(products []Product, services []Service) *Repository {
	return newRepository(products, services)
}

func newRepository(products []Product, services []Service) *Repository {
	r := &Repository{
		products:     products,
		services:     services,
		productByID:  make(map[string]Product, len(products)),
		serviceByID:  make(map[string]Service, len(services)),
		offeringByID: make(map[string]Offering),
	}
	for _, p := range products {
		r.productByID[p.ID] = p
	}
	for _, s := range services {
		r.serviceByID[s.ID] = s
		for _, o := range s.Offerings {
			r.offeringByID[o.ID] = o
		}
	}
	return r
}

// ListProducts returns products, optionally filtered by group and capped at
// limit (limit <= 0 means no cap). Order follows the seed order.
func (r *Repository) ListProducts(group string, limit int) []Product {
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if group != "" && group != "all" && p.Group != group {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// GetProduct returns the product with the given id.
func (r *Repository) GetProduct(id string) (Product, error) {
	p, ok := r.productByID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// ListServices returns all services in display order.
func (r *Repository) ListServices() []Service {
	return r.services
}

// GetService returns the service with the given id.
func (r *Repository) GetService(id string) (Service, error) {
	s, ok := r.serviceByID[id]
	if !ok {
		return Service{}, ErrServiceNotFound
	}
	return s, nil
}

// GetOffering returns the offering with the given id, looked up across all
// services.
func (r *Repository) GetOffering(id string) (Offering, error) {
	o, ok := r.offeringByID[id]
	if !ok {
		return Offering{}, ErrOfferingNotFound
	}
	return o, nil
}
