package models

// Categories is the canonical category list offered to the classifier
// and to the AI fallback.
var Categories = []string{
	"Supermercado",
	"Delivery",
	"Transporte",
	"Restaurant",
	"Arriendo",
	"Sueldo",
	"Trabajo",
	"Cine",
	"Salud",
	"Deporte",
	"Lavandería",
	"Gastos Básicos",
	"Streaming",
	"Libros",
	"Juegos",
	"Ahorro",
	"Decoración",
	"Vestimenta",
	"Inversiones",
	"Estética",
	"Conciertos",
	"Otros",
}

// IncomeCategories are categories that only make sense for incoming
// transactions. Income items are restricted to these plus Otros;
// expense items exclude them.
var IncomeCategories = []string{CategorySueldo}

// IsIncomeCategory reports whether a category is income-only.
func IsIncomeCategory(category string) bool {
	for _, c := range IncomeCategories {
		if c == category {
			return true
		}
	}
	return false
}
