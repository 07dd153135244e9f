package component

// CollisionLayer declares which collision category an entity belongs to.
// Trigger zones test their mask against Category.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// systems treat it as category 1.
	Category uint32 `yaml:"category,omitempty"`
	// Mask is a bitmask of categories this entity wants to interact with. If
	// zero, systems treat it as all bits set.
	Mask uint32 `yaml:"mask,omitempty"`
}

// EffectiveCategory applies the zero-means-1 default.
func (c *CollisionLayer) EffectiveCategory() uint32 {
	if c == nil || c.Category == 0 {
		return 1
	}
	return c.Category
}

// EffectiveMask applies the zero-means-all default.
func (c *CollisionLayer) EffectiveMask() uint32 {
	if c == nil || c.Mask == 0 {
		return ^uint32(0)
	}
	return c.Mask
}

var CollisionLayerComponent = NewComponentKind[CollisionLayer]()
