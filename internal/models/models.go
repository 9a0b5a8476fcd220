package models

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"not null"                 json:"title"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null;check:price>=0"  json:"price"`
	Category    string  `gorm:"index"                    json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Reviews     uint    `json:"reviews"`
}

func (Product) TableName() string {
	return "products"
}

// CartLine is one row of the shared cart. ProductID is unique so that an
// add can be expressed as a single upsert.
type CartLine struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"         json:"line_id"`
	ProductID uint    `gorm:"uniqueIndex;not null"             json:"product_id"`
	Quantity  int     `gorm:"default:1;check:quantity>0"       json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CartLine) TableName() string {
	return "cart"
}

// CartItem is a cart line joined with its product. ID is the product id.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// AllCategories is the category value that disables the category filter.
const AllCategories = "All"

type ProductFilter struct {
	Category string
	Search   string
}

func (f ProductFilter) HasCategory() bool {
	return f.Category != "" && f.Category != AllCategories
}
