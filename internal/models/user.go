package models

// User represents an account holder. Business accounts may own cards,
// admin accounts may moderate users and cards.
type User struct {
	BaseModel
	FirstName    string  `json:"first_name"`
	MiddleName   string  `json:"middle_name"`
	LastName     string  `json:"last_name"`
	Phone        string  `json:"phone"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	PasswordHash string  `json:"-"`
	Image        Image   `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	Address      Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	IsBusiness   bool    `json:"is_business"`
	IsAdmin      bool    `json:"is_admin"`
	Cards        []Card  `gorm:"foreignKey:CreatedBy" json:"cards,omitempty"`
}

// DisplayName joins the user's name fields for card views.
func (u *User) DisplayName() string {
	if u.MiddleName != "" {
		return u.FirstName + " " + u.MiddleName + " " + u.LastName
	}
	return u.FirstName + " " + u.LastName
}
