package model

// Profile selects the dashboard variant and the subject shape.
type Profile string

const (
	ProfileUnset      Profile = ""
	ProfileUniversity Profile = "university"
	ProfileSchool     Profile = "school"
)

// IsValid reports whether p is a selectable profile. ProfileUnset is not.
func (p Profile) IsValid() bool {
	switch p {
	case ProfileUniversity, ProfileSchool:
		return true
	default:
		return false
	}
}

func (p Profile) String() string {
	if p == ProfileUnset {
		return "unset"
	}
	return string(p)
}
