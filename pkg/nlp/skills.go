package nlp

import (
	"strings"
)

var aliases = map[string][]string{
	"postgres":   {"postgresql"},
	"postgresql": {"postgres"},
	"k8s":        {"kubernetes"},
	"kubernetes": {"k8s"},
	"golang":     {"go"},
	"go":         {"golang"},
	"js":         {"javascript"},
	"javascript": {"js"},
	"ts":         {"typescript"},
	"typescript": {"ts"},
	"rest":       {"rest api"},
	"rest api":   {"rest"},
	"ci cd":      {"cicd", "ci/cd"},
	"cicd":       {"ci cd", "ci/cd"},
}

// SkillVariants returns the normalized skill followed by its known aliases.
func SkillVariants(skill string) []string {
	base := NormalizeSkill(skill)
	if base == "" {
		return []string{}
	}
	out := []string{base}
	seen := map[string]struct{}{base: {}}
	for _, a := range aliases[base] {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// ExpandSkills returns the de-duplicated variants of every skill, in input order.
func ExpandSkills(skills []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, s := range skills {
		for _, v := range SkillVariants(s) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// MatchSkills reports which of want are covered by have, alias-aware.
// The result keeps the spelling used in want.
func MatchSkills(want, have []string) (matched, missing []string) {
	haveSet := map[string]struct{}{}
	for _, v := range ExpandSkills(have) {
		haveSet[v] = struct{}{}
	}
	for _, w := range want {
		if strings.TrimSpace(w) == "" {
			continue
		}
		hit := false
		for _, v := range SkillVariants(w) {
			if _, ok := haveSet[v]; ok {
				hit = true
				break
			}
		}
		if hit {
			matched = append(matched, w)
		} else {
			missing = append(missing, w)
		}
	}
	return matched, missing
}
