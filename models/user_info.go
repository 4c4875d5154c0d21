package models

// UserInfo is a body-metric snapshot of a [User]. All metrics are kept as
// free-form text exactly as submitted.
type UserInfo struct {
	// ID equals the owning User's ID.
	ID string `json:"id"`

	Age    string `json:"age"`
	Weight string `json:"weight"`
	Height string `json:"height"`

	CreatedAt uint64  `json:"createdAt"`
	UpdatedAt *uint64 `json:"updatedAt"`
}

// UserInfoPayload carries the mutable fields of a [UserInfo].
type UserInfoPayload struct {
	Age    string `json:"age"`
	Weight string `json:"weight"`
	Height string `json:"height"`
}

// Apply returns a copy of info with every payload field overwritten.
// Identity and creation time are preserved.
func (p UserInfoPayload) Apply(info UserInfo) UserInfo {
	info.Age = p.Age
	info.Weight = p.Weight
	info.Height = p.Height
	return info
}
