package entity

// UncategorizedName nombre mostrado cuando un producto apunta a una categoría borrada.
const UncategorizedName = "Uncategorized"

// Category representa una categoría de productos. El nombre es único.
type Category struct {
	ID   int64
	Name string
}
