package session

import (
	"fmt"
	"sort"
	"strings"

	"drivethru/internal/domain"
)

// consolidationKey groups lines that are logically the same order: same
// menu item, same sorted set of ingredient modifications, same special
// instructions, same size. An empty size counts as regular.
func consolidationKey(line domain.OrderLine) string {
	mods := []string{}
	if line.Modifications.IngredientModifications != "" {
		mods = strings.Split(line.Modifications.IngredientModifications, "; ")
		sort.Strings(mods)
	}

	size := line.Modifications.Size
	if size == "" {
		size = domain.DefaultItemSize
	}

	return fmt.Sprintf("%d|%s|%s|%s",
		line.MenuItemID,
		strings.Join(mods, "; "),
		line.Modifications.SpecialInstructions,
		size)
}

// ConsolidateLines merges logically identical lines, summing quantities and
// totals. The store may hold duplicates internally; snapshots handed to
// callers never do. Idempotent: consolidating a consolidated list is a
// no-op. First occurrence wins for ID, timestamps and prices.
func ConsolidateLines(lines []domain.OrderLine) []domain.OrderLine {
	if len(lines) < 2 {
		return lines
	}

	merged := []domain.OrderLine{}
	index := map[string]int{}

	for _, line := range lines {
		key := consolidationKey(line)
		if i, ok := index[key]; ok {
			merged[i].Quantity += line.Quantity
			merged[i].TotalPrice += line.TotalPrice
			continue
		}
		index[key] = len(merged)
		merged = append(merged, line)
	}

	return merged
}
