package models

import "testing"

func TestResourceTypeValid(t *testing.T) {
	valid := []ResourceType{
		ResourceTypeBook, ResourceTypeJournal, ResourceTypePublication,
		ResourceTypeCareer, ResourceTypeQuestion, ResourceTypeGeneric,
	}
	for _, rt := range valid {
		if !rt.Valid() {
			t.Errorf("%q should be valid", rt)
		}
	}

	for _, rt := range []ResourceType{"", "BOOK", "books", "unknown"} {
		if rt.Valid() {
			t.Errorf("%q should be invalid", rt)
		}
	}
}

func TestYearName(t *testing.T) {
	cases := map[int]string{
		0: "",
		1: "Pharm D 1st Year",
		2: "Pharm D 2nd Year",
		3: "Pharm D 3rd Year",
		4: "Pharm D 4th Year",
		6: "Pharm D 6th Year",
		7: "",
	}
	for id, want := range cases {
		if got := YearName(id); got != want {
			t.Errorf("YearName(%d) = %q, want %q", id, got, want)
		}
	}
}

func TestValidPageSlug(t *testing.T) {
	for _, slug := range []string{PageSlugJournals, PageSlugPublications, PageSlugCareer} {
		if !ValidPageSlug(slug) {
			t.Errorf("%q should be a valid slug", slug)
		}
	}
	for _, slug := range []string{"", "books", "Journals", "careers"} {
		if ValidPageSlug(slug) {
			t.Errorf("%q should be rejected", slug)
		}
	}
}
