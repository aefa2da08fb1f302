package model

import "strings"

// Person is one record from the campus broker's people catalog.
type Person struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	AcademicDegree string `json:"academicDegree"`
	ImageURL       string `json:"imageUrl"`
	IsDeleted      bool   `json:"isDeleted"`
}

// IsProfessor reports whether the degree field denotes professorial rank.
func (p *Person) IsProfessor() bool {
	return strings.Contains(p.AcademicDegree, "Prof")
}

// HasPhoto reports whether the broker delivered a real photo and not the
// dummy placeholder image.
func (p *Person) HasPhoto() bool {
	return p.ImageURL != "" && !strings.Contains(p.ImageURL, "dummy")
}

// DisplayName returns "degree first last" as shown to the user.
func (p *Person) DisplayName() string {
	parts := make([]string, 0, 3)
	if p.AcademicDegree != "" {
		parts = append(parts, p.AcademicDegree)
	}
	parts = append(parts, p.FirstName, p.LastName)
	return strings.Join(parts, " ")
}
