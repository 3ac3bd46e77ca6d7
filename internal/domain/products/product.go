package products

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Product is a catalog entry whose ingredient list is declared in label order
// (earlier entries are assumed more concentrated).
type Product struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Name  string `gorm:"column:name;type:text;not null;index" json:"name"`
	Brand string `gorm:"column:brand;type:text" json:"brand"`

	Ingredients datatypes.JSONSlice[string] `gorm:"type:jsonb;column:ingredients" json:"ingredients"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "product" }
