package recipes

// Variation is a derivation edge from a variant recipe to its canonical
// original. The graph is a depth-1 forest: a variant has exactly one edge,
// and that edge always points at an original, never at another variant.
type Variation struct {
	ID          int `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OriginalFK  int `gorm:"column:original_fk;not null;index:idx_variation_original" json:"original_fk"`
	VariationFK int `gorm:"column:variation_fk;not null;uniqueIndex:idx_variation_variant" json:"variation_fk"`
}

func (Variation) TableName() string { return "variations" }
