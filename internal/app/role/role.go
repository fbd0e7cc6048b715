package role

// Role defines access levels for portal operators.
type Role int

const (
	Seller Role = iota
	Support
	Admin
)

func (r Role) String() string {
	switch r {
	case Seller:
		return "seller"
	case Support:
		return "support"
	case Admin:
		return "admin"
	}
	return "unknown"
}
