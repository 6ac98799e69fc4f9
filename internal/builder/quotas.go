package builder

import "github.com/davicapacle05/Restaurante/internal/enum"

// QuotaTable maps a SIZE item id to the maximum selection count per
// category. Categories absent from a size's row default to 0. The table is
// read-only at runtime.
type QuotaTable map[string]map[string]int

// QuotaFor returns the limit for a category under the given size, 0 when
// either is unknown.
func (q QuotaTable) QuotaFor(sizeID, category string) int {
	return q[sizeID][category]
}

// DefaultQuotas is the house rule set: P=2/2/1, M=2/2/2, G=2/2/3 for
// starch sides / vegetable sides / proteins.
func DefaultQuotas() QuotaTable {
	return QuotaTable{
		"tamanho_p": {enum.CategoryStarchSide: 2, enum.CategoryVegetableSide: 2, enum.CategoryProtein: 1},
		"tamanho_m": {enum.CategoryStarchSide: 2, enum.CategoryVegetableSide: 2, enum.CategoryProtein: 2},
		"tamanho_g": {enum.CategoryStarchSide: 2, enum.CategoryVegetableSide: 2, enum.CategoryProtein: 3},
	}
}
