package entity

// BloodGroup uno de los 8 grupos ABO/Rh.
type BloodGroup string

const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
)

// BloodGroups orden canónico de los grupos (también el orden de las filas de stock).
var BloodGroups = []BloodGroup{
	BloodGroupAPos, BloodGroupANeg,
	BloodGroupBPos, BloodGroupBNeg,
	BloodGroupABPos, BloodGroupABNeg,
	BloodGroupOPos, BloodGroupONeg,
}

// IsValid indica si el grupo pertenece a la enumeración.
func (g BloodGroup) IsValid() bool {
	for _, bg := range BloodGroups {
		if g == bg {
			return true
		}
	}
	return false
}

// Index posición del grupo en BloodGroups; -1 si no es válido.
func (g BloodGroup) Index() int {
	for i, bg := range BloodGroups {
		if g == bg {
			return i
		}
	}
	return -1
}
