package nlp

import "strings"

// ContainsPhrase проверяет наличие фразы (уже нормализованной) как целых слов.
// Пример: "rest api" найдётся в "... rest api ..." но не в "... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// SkillsInText возвращает навыки из candidates, которые упоминаются в тексте (например, в резюме).
func SkillsInText(text string, candidates []string) []string {
	norm := NormalizeText(text)
	var out []string
	for _, c := range candidates {
		for _, v := range SkillVariants(c) {
			if ContainsPhrase(norm, v) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
