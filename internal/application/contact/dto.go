package contact

// UpsertRequest carries the payload of a contact save. Name fields are
// nil-able and replace whatever the stored contact holds.
type UpsertRequest struct {
	PhoneNumber string  `json:"phoneNumber" binding:"required"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
}

// UpdateRequest carries a partial contact update. Nil or empty fields
// keep their stored value.
type UpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// LoginRequest identifies the contact whose last login is refreshed
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}
