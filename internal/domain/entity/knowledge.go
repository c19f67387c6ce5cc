package entity

import (
	"errors"
	"fmt"
	"slices"
)

// ProjectCategory is one of the closed set of portfolio segments.
type ProjectCategory string

const (
	CategoryResidential ProjectCategory = "residential"
	CategoryCommercial  ProjectCategory = "commercial"
	CategoryIndustrial  ProjectCategory = "industrial"
	// CategorySpecialized only appears in the services catalogue.
	CategorySpecialized ProjectCategory = "specialized"
)

// ProjectCategories is the portfolio order used everywhere a record is rendered.
var ProjectCategories = []ProjectCategory{CategoryResidential, CategoryCommercial, CategoryIndustrial}

// KnowledgeRecord is the organisation fact base shared by the prompt composer
// and the fallback classifier. It is built once and treated as read-only.
type KnowledgeRecord struct {
	Profile    Profile           `yaml:"profile" json:"profile"`
	Portfolio  Portfolio         `yaml:"portfolio" json:"portfolio"`
	Team       []RoleHeadcount   `yaml:"team" json:"team"`
	Services   []ServiceCategory `yaml:"services" json:"services"`
	Technology []string          `yaml:"technology" json:"technology"`
	Awards     []string          `yaml:"awards" json:"awards"`
	Contact    Contact           `yaml:"contact" json:"contact"`
}

type Profile struct {
	Name             string   `yaml:"name" json:"name"`
	Founder          string   `yaml:"founder" json:"founder"`
	FoundedYear      int      `yaml:"founded_year" json:"founded_year"`
	YearsOfOperation int      `yaml:"years_of_operation" json:"years_of_operation"`
	License          string   `yaml:"license" json:"license"`
	Certifications   []string `yaml:"certifications" json:"certifications"`
	Mission          string   `yaml:"mission" json:"mission"`
	Vision           string   `yaml:"vision" json:"vision"`
	CoreValues       []string `yaml:"core_values" json:"core_values"`
	Locations        []string `yaml:"locations" json:"locations"`
}

type Portfolio struct {
	Ongoing    int              `yaml:"ongoing" json:"ongoing"`
	Upcoming   int              `yaml:"upcoming" json:"upcoming"`
	Categories []ProjectSegment `yaml:"categories" json:"categories"`
}

// ProjectSegment holds the completed count and a few showcase projects for
// one category.
type ProjectSegment struct {
	Category  ProjectCategory  `yaml:"category" json:"category"`
	Completed int              `yaml:"completed" json:"completed"`
	Examples  []ProjectExample `yaml:"examples" json:"examples"`
}

type ProjectExample struct {
	Name     string `yaml:"name" json:"name"`
	Year     int    `yaml:"year" json:"year"`
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
	Units    int    `yaml:"units,omitempty" json:"units,omitempty"`
	Floors   int    `yaml:"floors,omitempty" json:"floors,omitempty"`
	Area     string `yaml:"area,omitempty" json:"area,omitempty"`
	Features string `yaml:"features,omitempty" json:"features,omitempty"`
}

// RoleHeadcount is one line of the team composition. Group clusters roles
// when the team is presented.
type RoleHeadcount struct {
	Role  string `yaml:"role" json:"role"`
	Count int    `yaml:"count" json:"count"`
	Focus string `yaml:"focus" json:"focus"`
	Group string `yaml:"group" json:"group"`
}

type ServiceCategory struct {
	Category ProjectCategory `yaml:"category" json:"category"`
	Title    string          `yaml:"title" json:"title"`
	Items    []string        `yaml:"items" json:"items"`
}

type Contact struct {
	HeadOffice string `yaml:"head_office" json:"head_office"`
	Phone      string `yaml:"phone" json:"phone"`
	Mobile     string `yaml:"mobile" json:"mobile"`
	Email      string `yaml:"email" json:"email"`
	Website    string `yaml:"website" json:"website"`
	Hours      string `yaml:"hours" json:"hours"`
}

// TotalCompleted is the sum of completed projects over every category.
func (k *KnowledgeRecord) TotalCompleted() int {
	total := 0
	for _, seg := range k.Portfolio.Categories {
		total += seg.Completed
	}
	return total
}

// TotalHeadcount is the sum of every role's headcount.
func (k *KnowledgeRecord) TotalHeadcount() int {
	total := 0
	for _, r := range k.Team {
		total += r.Count
	}
	return total
}

// Segment returns the portfolio entry for c.
func (k *KnowledgeRecord) Segment(c ProjectCategory) (ProjectSegment, bool) {
	for _, seg := range k.Portfolio.Categories {
		if seg.Category == c {
			return seg, true
		}
	}
	return ProjectSegment{}, false
}

// ServicesFor returns the service names offered under c.
func (k *KnowledgeRecord) ServicesFor(c ProjectCategory) []string {
	for _, s := range k.Services {
		if s.Category == c {
			return s.Items
		}
	}
	return nil
}

// Validate checks the invariants a record must satisfy before it is shared.
func (k *KnowledgeRecord) Validate() error {
	var errs []error
	if k.Profile.Name == "" {
		errs = append(errs, errors.New("profile.name is empty"))
	}
	if k.Profile.YearsOfOperation < 0 || k.Profile.FoundedYear < 0 {
		errs = append(errs, errors.New("profile years must be non-negative"))
	}
	if k.Portfolio.Ongoing < 0 || k.Portfolio.Upcoming < 0 {
		errs = append(errs, errors.New("portfolio counts must be non-negative"))
	}
	seen := map[ProjectCategory]bool{}
	for _, seg := range k.Portfolio.Categories {
		if !slices.Contains(ProjectCategories, seg.Category) {
			errs = append(errs, fmt.Errorf("portfolio category %q is not allowed", seg.Category))
		}
		if seen[seg.Category] {
			errs = append(errs, fmt.Errorf("portfolio category %q declared twice", seg.Category))
		}
		seen[seg.Category] = true
		if seg.Completed < 0 {
			errs = append(errs, fmt.Errorf("portfolio category %q has a negative count", seg.Category))
		}
	}
	for _, r := range k.Team {
		if r.Role == "" {
			errs = append(errs, errors.New("team role without a name"))
		}
		if r.Count < 0 {
			errs = append(errs, fmt.Errorf("team role %q has a negative headcount", r.Role))
		}
	}
	for _, s := range k.Services {
		if s.Category != CategorySpecialized && !slices.Contains(ProjectCategories, s.Category) {
			errs = append(errs, fmt.Errorf("service category %q is not allowed", s.Category))
		}
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy so the shared record cannot be mutated through it.
func (k *KnowledgeRecord) Clone() *KnowledgeRecord {
	c := *k
	c.Profile.Certifications = slices.Clone(k.Profile.Certifications)
	c.Profile.CoreValues = slices.Clone(k.Profile.CoreValues)
	c.Profile.Locations = slices.Clone(k.Profile.Locations)
	c.Portfolio.Categories = make([]ProjectSegment, len(k.Portfolio.Categories))
	for i, seg := range k.Portfolio.Categories {
		seg.Examples = slices.Clone(seg.Examples)
		c.Portfolio.Categories[i] = seg
	}
	c.Team = slices.Clone(k.Team)
	c.Services = make([]ServiceCategory, len(k.Services))
	for i, s := range k.Services {
		s.Items = slices.Clone(s.Items)
		c.Services[i] = s
	}
	c.Technology = slices.Clone(k.Technology)
	c.Awards = slices.Clone(k.Awards)
	return &c
}
