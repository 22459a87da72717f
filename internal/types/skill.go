// Package types provides type definitions for the serializable records exchanged
// with the engine's collaborators: profiles, compatibility reports, and advice.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillCategory classifies a skill for learning-suggestion lookup
type SkillCategory string

// Known skill categories. CategoryUnknown is the fallback for terms the
// lexicon does not recognize.
const (
	CategoryLanguage      SkillCategory = "language"
	CategoryTool          SkillCategory = "tool"
	CategoryCertification SkillCategory = "certification"
	CategorySoftSkill     SkillCategory = "soft_skill"
	CategoryUnknown       SkillCategory = ""
)

// Skill represents a normalized competency identifier plus the surface forms
// it was seen under in the source text. Skills are compared by Name only;
// normalization and synonym collapse happen once at profile construction.
type Skill struct {
	Name         string        `json:"name"`
	SurfaceForms []string      `json:"surface_forms,omitempty"`
	Category     SkillCategory `json:"category,omitempty"`
}

// SkillNames returns the canonical names of a skill slice, preserving order.
func SkillNames(skills []Skill) []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}

// SkillSet builds a lookup set over canonical skill names.
func SkillSet(skills []Skill) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[s.Name] = true
	}
	return set
}
