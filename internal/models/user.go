package models

// User represents the user model in the database
type User struct {
	Base
	Username     string        `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password     string        `gorm:"not null" json:"-"`
	Email        string        `gorm:"size:100" json:"email"`
	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"budgets,omitempty"`
	Sessions     []Session     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
