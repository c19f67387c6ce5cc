package entity

import (
	"fmt"
	"strings"
)

// Mode selects the responder persona for a whole conversation.
type Mode string

const (
	ModeGeneralExpert              Mode = "general"
	ModeOrganizationRepresentative Mode = "company"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeGeneralExpert, ModeOrganizationRepresentative}

var modeAliases = map[string]Mode{
	"general":                     ModeGeneralExpert,
	"general_expert":              ModeGeneralExpert,
	"expert":                      ModeGeneralExpert,
	"constructiongpt":             ModeGeneralExpert,
	"company":                     ModeOrganizationRepresentative,
	"organization":                ModeOrganizationRepresentative,
	"organization_representative": ModeOrganizationRepresentative,
	"representative":              ModeOrganizationRepresentative,
	"jp-bot":                      ModeOrganizationRepresentative,
}

// ParseMode accepts the canonical names and a few aliases, case-insensitively.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "_")
	if m, ok := modeAliases[key]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

func (m Mode) Valid() bool {
	return m == ModeGeneralExpert || m == ModeOrganizationRepresentative
}

// DisplayName is the persona name shown to users.
func (m Mode) DisplayName() string {
	switch m {
	case ModeOrganizationRepresentative:
		return "JP-Bot"
	default:
		return "ConstructionGPT"
	}
}

func (m Mode) String() string { return string(m) }
