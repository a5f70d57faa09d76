package domain

// Ref points at another entity by id, serialized as {"id": n}.
type Ref struct {
	ID int64 `json:"id"`
}

// Valid reports whether the reference carries a store-assigned id.
func (r Ref) Valid() bool { return r.ID > 0 }

// Roles understood by the role guard.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
