package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/davicapacle05/Restaurante/internal/enum"
)

// DefaultItems returns the built-in menu used when no snapshot exists or a
// snapshot fails to load, and by the admin "reset catalog" operation.
func DefaultItems() []Item {
	price := decimal.RequireFromString
	free := decimal.Zero

	return []Item{
		// Sizes (the base price lives here)
		{ID: "tamanho_p", Name: "Marmita P", StockName: "Embalagem P (Isopor)", Category: enum.CategorySize, Price: price("18.00"), PortionSize: 1, Unit: "un", Capacity: 50, MinAlertThreshold: 10, Active: true},
		{ID: "tamanho_m", Name: "Marmita M", StockName: "Embalagem M (Isopor)", Category: enum.CategorySize, Price: price("22.00"), PortionSize: 1, Unit: "un", Capacity: 50, MinAlertThreshold: 10, Active: true},
		{ID: "tamanho_g", Name: "Marmita G", StockName: "Embalagem G (Isopor)", Category: enum.CategorySize, Price: price("26.00"), PortionSize: 1, Unit: "un", Capacity: 50, MinAlertThreshold: 10, Active: true},

		// Starch sides (included in price)
		{ID: "arroz_branco", Name: "Arroz Branco", StockName: "Arroz Branco (Cozido)", Category: enum.CategoryStarchSide, Price: free, PortionSize: 200, Unit: "g", Capacity: 5000, MinAlertThreshold: 1000, Active: true},
		{ID: "feijao_carioca", Name: "Feijão Carioca", StockName: "Feijão Carioca (Caldo)", Category: enum.CategoryStarchSide, Price: free, PortionSize: 200, Unit: "g", Capacity: 4000, MinAlertThreshold: 800, Active: true},
		{ID: "feijao_preto", Name: "Feijão Preto", StockName: "Feijão Preto (Caldo)", Category: enum.CategoryStarchSide, Price: free, PortionSize: 200, Unit: "g", Capacity: 3000, MinAlertThreshold: 600, Active: true},
		{ID: "arroz_integral", Name: "Arroz Integral", StockName: "Arroz Integral (Cozido)", Category: enum.CategoryStarchSide, Price: free, PortionSize: 200, Unit: "g", Capacity: 2000, MinAlertThreshold: 500, Active: true},

		// Vegetable sides (included in price)
		{ID: "farofa", Name: "Farofa da Casa", StockName: "Farinha/Farofa Pronta", Category: enum.CategoryVegetableSide, Price: free, PortionSize: 80, Unit: "g", Capacity: 1000, MinAlertThreshold: 200, Active: true},
		{ID: "fritas", Name: "Batata Frita", StockName: "Batata Congelada (Saco)", Category: enum.CategoryVegetableSide, Price: free, PortionSize: 120, Unit: "g", Capacity: 2000, MinAlertThreshold: 500, Active: true},
		{ID: "salada", Name: "Salada Mix", StockName: "Hortifruti (Mix Folhas)", Category: enum.CategoryVegetableSide, Price: free, PortionSize: 1, Unit: "porção", Capacity: 30, MinAlertThreshold: 5, Active: true},
		{ID: "legumes", Name: "Legumes Vapor", StockName: "Legumes (Cenoura/Vagem)", Category: enum.CategoryVegetableSide, Price: free, PortionSize: 100, Unit: "g", Capacity: 2000, MinAlertThreshold: 400, Active: true},

		// Proteins (included in price)
		{ID: "bife_acebolado", Name: "Bife Acebolado", StockName: "Carne (Contra-filé Cru)", Category: enum.CategoryProtein, Price: free, PortionSize: 1, Unit: "un", Capacity: 40, MinAlertThreshold: 5, Active: true},
		{ID: "frango_grelhado", Name: "Filé de Frango", StockName: "Peito de Frango (Cru)", Category: enum.CategoryProtein, Price: free, PortionSize: 1, Unit: "un", Capacity: 40, MinAlertThreshold: 5, Active: true},
		{ID: "linguica", Name: "Linguiça Toscana", StockName: "Linguiça Toscana (Crua)", Category: enum.CategoryProtein, Price: free, PortionSize: 1, Unit: "un", Capacity: 50, MinAlertThreshold: 10, Active: true},
		{ID: "omelete", Name: "Omelete", StockName: "Ovos (Cartela)", Category: enum.CategoryProtein, Price: free, PortionSize: 1, Unit: "un", Capacity: 30, MinAlertThreshold: 5, Active: true},

		// Drinks (paid)
		{ID: "coca_lata", Name: "Coca-Cola Lata 350ml", Category: enum.CategoryDrink, Price: price("6.00"), PortionSize: 1, Unit: "un", Capacity: 48, MinAlertThreshold: 12, Active: true},
		{ID: "guarana_lata", Name: "Guaraná Lata 350ml", Category: enum.CategoryDrink, Price: price("6.00"), PortionSize: 1, Unit: "un", Capacity: 48, MinAlertThreshold: 12, Active: true},
		{ID: "agua_sem_gas", Name: "Água s/ Gás 500ml", Category: enum.CategoryDrink, Price: price("4.00"), PortionSize: 1, Unit: "un", Capacity: 60, MinAlertThreshold: 12, Active: true},
		{ID: "suco_laranja", Name: "Suco de Laranja 500ml", Category: enum.CategoryDrink, Price: price("8.00"), PortionSize: 1, Unit: "un", Capacity: 20, MinAlertThreshold: 5, Active: true, HasDelay: true},

		// Extras (paid)
		{ID: "embalagem_extra", Name: "Embalagem Extra (Separada)", Category: enum.CategoryExtra, Price: price("1.50"), PortionSize: 1, Unit: "un", Capacity: 100, MinAlertThreshold: 20, Active: true},
		{ID: "talheres", Name: "Talheres Descartáveis", Category: enum.CategoryExtra, Price: price("0.50"), PortionSize: 1, Unit: "kit", Capacity: 1000, MinAlertThreshold: 100, Active: true},
		{ID: "copo", Name: "Copo Descartável", Category: enum.CategoryExtra, Price: price("0.25"), PortionSize: 1, Unit: "un", Capacity: 1000, MinAlertThreshold: 100, Active: true},
	}
}
