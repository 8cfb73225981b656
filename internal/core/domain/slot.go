package domain

// SlotSpec is one named placement rectangle in the format geometry catalog.
// For a given (Category, SlotName) pair the rectangle is constant; the
// catalog is pure data.
type SlotSpec struct {
	Category  Category
	SlotName  string
	X         float64
	Y         float64
	Width     float64
	Height    float64
	HasBorder bool
}
