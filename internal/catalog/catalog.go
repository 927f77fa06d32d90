package catalog

import (
	"log"

	"github.com/ytget/model-picker/internal/model"
)

// Catalog is the ordered, read-only set of placeable models.
type Catalog struct {
	models []*model.ModelDescriptor
	index  map[string]*model.ModelDescriptor
}

// NewCatalog builds a catalog from descriptors. Names must be unique; for a
// repeated name the first descriptor wins and the rest are dropped.
func NewCatalog(descriptors ...*model.ModelDescriptor) *Catalog {
	c := &Catalog{
		models: make([]*model.ModelDescriptor, 0, len(descriptors)),
		index:  make(map[string]*model.ModelDescriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if d == nil {
			continue
		}
		if existing, ok := c.index[d.Name]; ok {
			log.Printf("catalog: duplicate model name %q (%s), keeping %s", d.Name, d.AssetPath, existing.AssetPath)
			continue
		}
		c.index[d.Name] = d
		c.models = append(c.models, d)
	}
	return c
}

// Models returns the descriptors in catalog order.
func (c *Catalog) Models() []*model.ModelDescriptor {
	out := make([]*model.ModelDescriptor, len(c.models))
	copy(out, c.models)
	return out
}

// Len returns the number of models.
func (c *Catalog) Len() int {
	return len(c.models)
}
