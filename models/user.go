package models

// User is the root account record. Its id is shared with the user's
// [UserInfo] snapshot.
type User struct {
	// ID is generated at creation and never reassigned.
	ID string `json:"id"`

	// Name is the display name of the user. Required at creation.
	Name string `json:"name"`

	// CreatedDate is the monotonic clock value (ns) read at creation.
	CreatedDate uint64 `json:"created_date"`

	// UpdatedAt is nil until the record is updated.
	UpdatedAt *uint64 `json:"updated_at"`
}

// InitializeUserRequest is the body accepted by user creation.
type InitializeUserRequest struct {
	Name string `json:"name"`
}
