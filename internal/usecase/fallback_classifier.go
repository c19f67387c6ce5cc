package usecase

import (
	"fmt"
	"query-router/internal/domain/entity"
	"strings"
)

// Rule maps a set of trigger words to an answer. Rules of a mode are tried in
// declaration order and the first one whose trigger occurs in the query wins.
type Rule struct {
	Category entity.Category
	Triggers []string
	Build    func(k *entity.KnowledgeRecord) string
}

func (r Rule) matches(normalized string) bool {
	for _, t := range r.Triggers {
		if strings.Contains(normalized, t) {
			return true
		}
	}
	return false
}

func constant(s string) func(*entity.KnowledgeRecord) string {
	return func(*entity.KnowledgeRecord) string { return s }
}

var generalRules = []Rule{
	{Category: entity.CategorySand, Triggers: []string{"sand"}, Build: constant(sandAnswer)},
	{Category: entity.CategorySteel, Triggers: []string{"steel"}, Build: constant(steelAnswer)},
	{Category: entity.CategoryCement, Triggers: []string{"cement"}, Build: constant(cementAnswer)},
	{Category: entity.CategoryConcrete, Triggers: []string{"concrete"}, Build: constant(concreteAnswer)},
}

var companyRules = []Rule{
	{Category: entity.CategoryTeam, Triggers: []string{"team", "employee", "staff", "strength"}, Build: teamAnswer},
	{Category: entity.CategoryProjects, Triggers: []string{"project", "completed", "work", "portfolio"}, Build: projectsAnswer},
	{Category: entity.CategoryServices, Triggers: []string{"service", "offer", "provide", "do"}, Build: servicesAnswer},
	{Category: entity.CategoryAbout, Triggers: []string{"about", "company", "who"}, Build: aboutAnswer},
	{Category: entity.CategoryContact, Triggers: []string{"contact", "phone", "email", "address"}, Build: contactAnswer},
}

// FallbackClassifier answers without the generative backend. Its output is a
// pure function of mode, query and the knowledge record.
type FallbackClassifier struct {
	record *entity.KnowledgeRecord
}

func NewFallbackClassifier(k *entity.KnowledgeRecord) *FallbackClassifier {
	return &FallbackClassifier{record: k}
}

// Rules returns the ordered rule table of mode.
func (c *FallbackClassifier) Rules(mode entity.Mode) []Rule {
	src := generalRules
	if mode == entity.ModeOrganizationRepresentative {
		src = companyRules
	}
	out := make([]Rule, len(src))
	copy(out, src)
	return out
}

// Match returns the matched category and its answer. A query that triggers
// nothing gets the generic message of the mode with CategoryGeneric.
func (c *FallbackClassifier) Match(mode entity.Mode, query string) (entity.Category, string) {
	normalized := strings.ToLower(query)
	rules := generalRules
	if mode == entity.ModeOrganizationRepresentative {
		rules = companyRules
	}
	for _, r := range rules {
		if r.matches(normalized) {
			return r.Category, r.Build(c.record)
		}
	}
	if mode == entity.ModeOrganizationRepresentative {
		return entity.CategoryGeneric, welcomeAnswer(c.record)
	}
	return entity.CategoryGeneric, generalGeneric
}

// Classify is Match without the category.
func (c *FallbackClassifier) Classify(mode entity.Mode, query string) string {
	_, text := c.Match(mode, query)
	return text
}

func welcomeAnswer(k *entity.KnowledgeRecord) string {
	return fmt.Sprintf("🏢 Welcome to %s! We're a premier construction company with %d+ years of excellence, "+
		"having completed %d projects with a team of %d professionals. "+
		"How can I assist you with information about our company?",
		k.Profile.Name, k.Profile.YearsOfOperation, k.TotalCompleted(), k.TotalHeadcount())
}

func teamAnswer(k *entity.KnowledgeRecord) string {
	var b strings.Builder
	b.WriteString("👥 **OUR EXPERT TEAM**\n\n")
	fmt.Fprintf(&b, "**Total Professionals: %d**\n", k.TotalHeadcount())

	for _, g := range groupRoles(k.Team) {
		fmt.Fprintf(&b, "\n**%s:**\n", g.name)
		for _, r := range g.roles {
			fmt.Fprintf(&b, "- **%d %s** - %s\n", r.Count, r.Role, r.Focus)
		}
	}

	fmt.Fprintf(&b, "\nWith %d+ years of combined experience, our team delivers exceptional construction quality!", k.Profile.YearsOfOperation)
	return b.String()
}

const ungroupedRoles = "Our Professionals"

type roleGroup struct {
	name  string
	roles []entity.RoleHeadcount
}

// groupRoles clusters roles by Group in order of first appearance. Roles
// without a group share one heading.
func groupRoles(team []entity.RoleHeadcount) []roleGroup {
	var groups []roleGroup
	index := map[string]int{}
	for _, r := range team {
		name := r.Group
		if name == "" {
			name = ungroupedRoles
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, roleGroup{name: name})
		}
		groups[i].roles = append(groups[i].roles, r)
	}
	return groups
}

var segmentHeadings = map[entity.ProjectCategory]string{
	entity.CategoryResidential: "Residential Excellence",
	entity.CategoryCommercial:  "Commercial Leadership",
	entity.CategoryIndustrial:  "Industrial Expertise",
}

func projectsAnswer(k *entity.KnowledgeRecord) string {
	var b strings.Builder
	b.WriteString("🏆 **OUR PROJECT PORTFOLIO**\n\n")
	b.WriteString("**Project Statistics:**\n")
	fmt.Fprintf(&b, "- **Total Completed:** %d projects\n", k.TotalCompleted())
	fmt.Fprintf(&b, "- **Ongoing Projects:** %d\n", k.Portfolio.Ongoing)
	fmt.Fprintf(&b, "- **Upcoming Projects:** %d\n", k.Portfolio.Upcoming)

	for _, cat := range entity.ProjectCategories {
		seg, ok := k.Segment(cat)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n**%s (%d projects):**\n", segmentHeadings[cat], seg.Completed)
		if len(seg.Examples) == 0 {
			if services := k.ServicesFor(cat); len(services) > 0 {
				fmt.Fprintf(&b, "- %s\n", strings.Join(services, ", "))
			}
			continue
		}
		for _, ex := range seg.Examples {
			fmt.Fprintf(&b, "- **%s** (%d) - %s\n", ex.Name, ex.Year, describeProject(ex))
		}
	}

	b.WriteString("\nWe take pride in our diverse and successful project portfolio!")
	return b.String()
}

func servicesAnswer(k *entity.KnowledgeRecord) string {
	var b strings.Builder
	b.WriteString("🛠️ **OUR COMPREHENSIVE SERVICES**\n")
	for _, s := range k.Services {
		fmt.Fprintf(&b, "\n**%s:**\n", s.Title)
		for _, item := range s.Items {
			fmt.Fprintf(&b, "• %s\n", item)
		}
	}
	return b.String()
}

func aboutAnswer(k *entity.KnowledgeRecord) string {
	p := k.Profile
	var b strings.Builder
	fmt.Fprintf(&b, "🏢 **ABOUT %s**\n\n", strings.ToUpper(p.Name))
	b.WriteString("**Company Profile:**\n")
	fmt.Fprintf(&b, "- **Founded:** %d by %s\n", p.FoundedYear, p.Founder)
	fmt.Fprintf(&b, "- **Experience:** %d+ years\n", p.YearsOfOperation)
	fmt.Fprintf(&b, "- **License:** %s\n", p.License)
	fmt.Fprintf(&b, "- **Certifications:** %s\n\n", strings.Join(p.Certifications, ", "))
	fmt.Fprintf(&b, "**Our Presence:** %s\n\n", strings.Join(p.Locations, ", "))
	fmt.Fprintf(&b, "**Our Mission:** %s\n\n", p.Mission)
	fmt.Fprintf(&b, "**Our Vision:** %s\n\n", p.Vision)
	fmt.Fprintf(&b, "**Core Values:** %s\n\n", strings.Join(p.CoreValues, ", "))
	fmt.Fprintf(&b, "With %d completed projects and ongoing commitment to excellence, we build trust with every project!", k.TotalCompleted())
	return b.String()
}

func contactAnswer(k *entity.KnowledgeRecord) string {
	c := k.Contact
	var b strings.Builder
	fmt.Fprintf(&b, "📞 **CONTACT %s**\n\n", strings.ToUpper(k.Profile.Name))
	fmt.Fprintf(&b, "**Head Office:**\n%s\n\n", c.HeadOffice)
	b.WriteString("**Contact Details:**\n")
	fmt.Fprintf(&b, "- **Phone:** %s\n", c.Phone)
	fmt.Fprintf(&b, "- **Mobile:** %s\n", c.Mobile)
	fmt.Fprintf(&b, "- **Email:** %s\n", c.Email)
	fmt.Fprintf(&b, "- **Website:** %s\n\n", c.Website)
	fmt.Fprintf(&b, "**Office Hours:**\n%s\n\n", c.Hours)
	fmt.Fprintf(&b, "**Branch Offices:** %s\n\n", strings.Join(k.Profile.Locations, ", "))
	b.WriteString("We'd be delighted to discuss your construction requirements and provide customized solutions!")
	return b.String()
}
