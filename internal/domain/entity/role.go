package entity

// Role es el rol asignado a una identidad dentro de la cadena de custodia.
// Enumeración cerrada: None es el valor por defecto para identidades desconocidas
// y nunca es un actor válido en operaciones de escritura.
type Role uint8

const (
	RoleNone Role = iota
	RoleManufacturer
	RoleDistributor
	RoleRetailer
)

// String devuelve el nombre del rol para respuestas y logs.
func (r Role) String() string {
	switch r {
	case RoleManufacturer:
		return "manufacturer"
	case RoleDistributor:
		return "distributor"
	case RoleRetailer:
		return "retailer"
	default:
		return "none"
	}
}

// Valid indica si el valor pertenece a la enumeración.
func (r Role) Valid() bool {
	return r <= RoleRetailer
}

// ParseRole convierte el nombre textual de un rol a su valor. Nombres
// desconocidos devuelven RoleNone y ok=false.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "manufacturer":
		return RoleManufacturer, true
	case "distributor":
		return RoleDistributor, true
	case "retailer":
		return RoleRetailer, true
	case "none", "":
		return RoleNone, true
	default:
		return RoleNone, false
	}
}

// RoleAssignment mapeo identidad → rol. Una identidad tiene exactamente un rol;
// una nueva asignación sobrescribe la anterior.
type RoleAssignment struct {
	Address   string
	Role      Role
	UpdatedAt int64 // unix seconds
}
