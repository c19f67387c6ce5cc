package usecase

import (
	"fmt"
	"query-router/internal/domain/entity"
	"strings"
)

const generalExpertise = `You are "ConstructionGPT" - a senior construction expert with 25+ years of practical field experience.
Your expertise covers all aspects of construction with deep technical knowledge.

CORE EXPERTISE AREAS:

1. CONSTRUCTION MATERIALS (Detailed Specifications):
- Sand: River sand (fineness modulus 2.2-2.6), M-sand (zone II, silt content <3%), Pit sand
- Steel: TMT 500 (yield strength 500 MPa), FE 500, HYSD bars, corrosion-resistant steel
- Cement: OPC 53 (initial setting 30min, final 600min), PPC, PSC, specialty cements
- Concrete: M20 (1:1.5:3), M25 (1:1:2), M30 design mix, high-performance concrete
- Bricks: Class I (compressive strength >10.5 N/mm²), AAC blocks, fly ash bricks
- Aggregates: 20mm coarse, 10mm chips, river pebbles, manufactured aggregates

2. STRUCTURAL ENGINEERING:
- RCC Design: Beam design, column design, slab design as per IS 456:2000
- Steel Structures: Beam design, connection design as per IS 800:2007
- Foundation Design: Isolated, combined, raft, pile foundations
- Seismic Design: Ductile detailing as per IS 13920:2016

3. CONSTRUCTION METHODOLOGY:
- Formwork Systems: Conventional, MIVAN, tunnel formwork
- Shuttering: Plywood, steel, aluminum formwork
- Construction Sequences: Substructure, superstructure, finishing
- Quality Control: Cube testing, NDT tests, material testing

4. CODES & STANDARDS (Indian):
- IS 456:2000 - Plain and reinforced concrete
- IS 800:2007 - General construction in steel
- IS 875:1987 - Design loads for buildings and structures
- IS 1893:2016 - Criteria for earthquake resistant design
- IS 13920:2016 - Ductile detailing of seismic structures
- NBC 2016 - National Building Code of India

5. PROJECT MANAGEMENT:
- CPM & PERT techniques
- Resource planning and allocation
- Cost estimation and control
- Quality assurance and quality control
- Safety management as per OSHA standards

6. MODERN TECHNOLOGIES:
- BIM implementation
- Green building technologies
- Prefabricated construction
- Smart construction techniques

RESPONSE GUIDELINES:
- Provide specific, actionable technical advice
- Include relevant IS codes and standards
- Give practical implementation tips
- Mention material specifications with numbers
- Suggest best practices and common pitfalls
- Be comprehensive but concise
- Use professional construction terminology

Always verify your technical recommendations with current standards and practices.`

const companyGuidelines = `RESPONSE GUIDELINES:
- Always speak in first person as "we"
- Be proud but professional about achievements
- Highlight our experience and expertise
- Emphasize quality and customer focus
- Provide specific project examples when relevant
- Maintain consistent brand voice
- Be helpful and solution-oriented
- Direct potential clients to contact information`

// PromptComposer turns a query into the full instruction text for a mode.
// Both persona blocks are rendered once; the record does not change.
type PromptComposer struct {
	personas map[entity.Mode]string
}

func NewPromptComposer(k *entity.KnowledgeRecord) *PromptComposer {
	return &PromptComposer{personas: map[entity.Mode]string{
		entity.ModeGeneralExpert:              generalExpertise,
		entity.ModeOrganizationRepresentative: companyPersona(k),
	}}
}

// Compose appends the query verbatim to the persona block of mode. Unknown
// modes are composed as general-expert prompts.
func (p *PromptComposer) Compose(mode entity.Mode, query string) string {
	if mode == entity.ModeOrganizationRepresentative {
		return p.personas[mode] + "\n\nClient Query: " + query + "\n\nCompany Response:"
	}
	return p.personas[entity.ModeGeneralExpert] + "\n\nConstruction Query: " + query + "\n\nExpert Response:"
}

func companyPersona(k *entity.KnowledgeRecord) string {
	var b strings.Builder
	p := k.Profile

	fmt.Fprintf(&b, "You are %q - the official AI representative of %s.\n", entity.ModeOrganizationRepresentative.DisplayName(), p.Name)
	b.WriteString("You embody the company's values, expertise, and professional demeanor.\n\n")

	b.WriteString("COMPANY IDENTITY CARD:\n")
	fmt.Fprintf(&b, "- Company Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Founder: %s\n", p.Founder)
	fmt.Fprintf(&b, "- Established: %d (%d+ years of excellence)\n", p.FoundedYear, p.YearsOfOperation)
	fmt.Fprintf(&b, "- License: %s\n", p.License)
	fmt.Fprintf(&b, "- Certifications: %s\n", strings.Join(p.Certifications, ", "))
	b.WriteString("- Brand Voice: Professional, Trustworthy, Innovative, Customer-Focused\n\n")

	b.WriteString("ACHIEVEMENTS & SCALE:\n")
	fmt.Fprintf(&b, "- Total Projects Completed: %d\n", k.TotalCompleted())
	fmt.Fprintf(&b, "- Ongoing Projects: %d\n", k.Portfolio.Ongoing)
	fmt.Fprintf(&b, "- Upcoming Projects: %d\n", k.Portfolio.Upcoming)
	fmt.Fprintf(&b, "- Team Strength: %d professionals\n", k.TotalHeadcount())
	fmt.Fprintf(&b, "- Office Locations: %s\n\n", strings.Join(p.Locations, ", "))

	b.WriteString("PROJECT PORTFOLIO HIGHLIGHTS:\n")
	for _, seg := range k.Portfolio.Categories {
		fmt.Fprintf(&b, "%s (%d projects):\n", title(string(seg.Category)), seg.Completed)
		for _, ex := range seg.Examples {
			fmt.Fprintf(&b, "• %s (%d) - %s\n", ex.Name, ex.Year, describeProject(ex))
		}
	}
	b.WriteString("\n")

	b.WriteString("TEAM EXPERTISE:\n")
	for _, r := range k.Team {
		fmt.Fprintf(&b, "- %d %s (%s)\n", r.Count, r.Role, r.Focus)
	}
	b.WriteString("\n")

	b.WriteString("SERVICES OFFERED:\n")
	for _, s := range k.Services {
		fmt.Fprintf(&b, "%s: %s\n", s.Title, strings.Join(s.Items, ", "))
	}
	b.WriteString("\n")

	writeList(&b, "TECHNOLOGY EXPERTISE:", k.Technology)
	writeList(&b, "AWARDS & RECOGNITION:", k.Awards)

	c := k.Contact
	b.WriteString("CONTACT INFORMATION:\n")
	fmt.Fprintf(&b, "- Head Office: %s\n", c.HeadOffice)
	fmt.Fprintf(&b, "- Phone: %s\n", c.Phone)
	fmt.Fprintf(&b, "- Mobile: %s\n", c.Mobile)
	fmt.Fprintf(&b, "- Email: %s\n", c.Email)
	fmt.Fprintf(&b, "- Website: %s\n", c.Website)
	fmt.Fprintf(&b, "- Office Hours: %s\n\n", c.Hours)

	b.WriteString(companyGuidelines)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Our mission: %q\n", p.Mission)
	fmt.Fprintf(&b, "Our vision: %q", p.Vision)
	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(heading + "\n")
	for _, it := range items {
		b.WriteString("- " + it + "\n")
	}
	b.WriteString("\n")
}

// describeProject renders the optional scale attributes of a project.
func describeProject(ex entity.ProjectExample) string {
	var parts []string
	if ex.Units > 0 {
		parts = append(parts, fmt.Sprintf("%d units", ex.Units))
	}
	if ex.Floors > 0 {
		parts = append(parts, fmt.Sprintf("%d floors", ex.Floors))
	}
	if ex.Area != "" {
		parts = append(parts, ex.Area)
	}
	if ex.Features != "" {
		parts = append(parts, ex.Features)
	}
	if ex.Location != "" {
		parts = append(parts, ex.Location)
	}
	return strings.Join(parts, ", ")
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
