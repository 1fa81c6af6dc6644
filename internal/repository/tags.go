package repository

import "strings"

// SplitList разбирает строку вида "go, web ,, backend" в список элементов:
// разделитель запятая, пробелы по краям убираются, пустые элементы
// выбрасываются, порядок сохраняется, дубликаты не удаляются.
// Применяется одинаково при создании и обновлении поста.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}

	return result
}
