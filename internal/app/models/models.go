package models

import "fmt"

// ResourceType classifies a catalog entry.
type ResourceType string

const (
	ResourceTypeBook        ResourceType = "book"
	ResourceTypeJournal     ResourceType = "journal"
	ResourceTypePublication ResourceType = "publication"
	ResourceTypeCareer      ResourceType = "career"
	ResourceTypeQuestion    ResourceType = "question"
	ResourceTypeGeneric     ResourceType = "resource"
)

// Valid reports whether t is one of the known resource types.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceTypeBook, ResourceTypeJournal, ResourceTypePublication,
		ResourceTypeCareer, ResourceTypeQuestion, ResourceTypeGeneric:
		return true
	}
	return false
}

// RoleAdmin is the only user role in the system.
const RoleAdmin = "admin"

// YearCount is the number of academic years in the Pharm D program.
// Years are a fixed enumeration 1..YearCount and are not persisted.
const YearCount = 6

// ValidYear reports whether id is within the academic year range.
func ValidYear(id int) bool {
	return id >= 1 && id <= YearCount
}

// YearName returns the display name for an academic year id, e.g.
// "Pharm D 2nd Year". Returns "" for out-of-range ids.
func YearName(id int) string {
	if !ValidYear(id) {
		return ""
	}
	suffix := "th"
	switch id {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return fmt.Sprintf("Pharm D %d%s Year", id, suffix)
}
