package classifier

import "dmunoz/cartola-csv/internal/models"

// DefaultRules returns the built-in rule table for Chilean bank
// statements. Order matters: rules are evaluated top to bottom and the
// first keyword hit wins, so the generic transfer rule sits after the
// specific merchant rules.
func DefaultRules() []models.CategoryRule {
	return []models.CategoryRule{
		{
			Keywords: []string{
				"SUPERMERCADO", "UNIMARC", "LIDER", "JUMBO", "SANTA ISABEL",
				"TOTTUS", "FOOD MARKET", "PRONTO COPEC", "ISIDORA.COPEC",
				"TUU MARKET", "ALMACEN",
			},
			Category:   "Supermercado",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"DELIVERY", "RAPPI", "UBER EATS", "PEDIDOS YA"},
			Category:   "Delivery",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"UBER TRIP", "TAXI", "TRANSPORTE", "METRO", "BUS", "RECORRIDO"},
			Category:   "Transporte",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords: []string{
				"RESTAURANT", "RESTORAN", "CAFE", "SUSHI", "PIZZA", "MCDONALDS",
				"BURGER", "NIU SUSHI", "DELI A VARAS", "CERVECERA", "CERVECERIA",
				"RATIO COFFEE", "WONDERLAND CAFE", "CAFETERIA", "UDON", "STARBUCKS",
			},
			Category:   "Restaurant",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"AIRBNB", "HOTEL", "HOSPEDAJE", "MIGUEL ARTURO", "BRAVO GI SPA"},
			Category:   "Arriendo",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"SUELDO", "REMUNERACIONES", "TRANSFERENCIA SUELDO"},
			Category:   models.CategorySueldo,
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords: []string{
				"CLAUDE", "OPENAI", "GITHUB", "NOTION", "OBSIDIAN", "FIGMA",
				"DIGITALOCEAN", "AWS", "GOOGLE CLOUD",
			},
			Category:   "Trabajo",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"CINE", "MOVILAND", "HOYTS"},
			Category:   "Cine",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"FARMACIA", "FARMA", "CRUZ VERDE", "SALCOBRAND"},
			Category:   "Salud",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"GYM", "GIMNASIO", "SPORT", "DEPORTE", "FUTBOL", "TENIS", "ESGRIMA"},
			Category:   "Deporte",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"LAVANDERIA", "LAVANDERÍA", "DRY CLEAN"},
			Category:   "Lavandería",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"PAGO", "PAGO CGE", "PAGO WOM", "CUENTA", "SERVICIO", "WOMPAY"},
			Category:   "Gastos Básicos",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords: []string{
				"MUBI", "GOOGLE YOUTUBE", "DL GOOGLE YOUTUBE", "GOOGLE PLAY YOUTUBE",
				"NEXTORY", "NETFLIX", "SPOTIFY", "HBO MAX", "AMAZON PRIME",
				"CRUNCHYROLL", "DRUMSCRIBE",
			},
			Category:   "Streaming",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"TRANSFERENCIA", "TRANSF"},
			Category:   models.CategoryOtros,
			Confidence: models.ConfidenceLow,
		},
		{
			Keywords:   []string{"DIGITAL PUBLICATION", "KINDLE", "BUSCALIBRE", "ANTARTICA"},
			Category:   "Libros",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords: []string{
				"PLAYSTATION", "PLAY STATION", "PSN", "PS4", "PS5", "STEAM",
				"NINTENDO", "SWITCH", "XBOX", "DISCORD", "EPIC GAMES",
				"EPICGAMES", "JUEGOS", "GAME", "GAMING",
			},
			Category:   "Juegos",
			Confidence: models.ConfidenceHigh,
		},
		{
			Keywords:   []string{"AHORRO"},
			Category:   "Ahorro",
			Confidence: models.ConfidenceHigh,
		},
	}
}

// DefaultRecurringKeywords returns the keyword set that flags a
// transaction as a recurring charge (subscriptions, rent, utilities).
func DefaultRecurringKeywords() []string {
	return []string{
		"NETFLIX", "SPOTIFY", "AMAZON PRIME", "HBO MAX", "DISNEY",
		"YOUTUBE", "GOOGLE YOUTUBE", "GOOGLE PLAY", "APPLE.COM BILL",
		"MUBI", "CRUNCHYROLL", "NEXTORY", "DRUMSCRIBE",
		"FIGMA", "NOTION", "GITHUB", "DIGITALOCEAN", "AWS", "GOOGLE CLOUD",
		"PAGO CGE", "PAGO WOM", "WOMPAY",
		"ARRIENDO", "AIRBNB",
		"CLUB ESCRIMA", "GYM", "GIMNASIO", "SMARTFIT",
		"SUBSCRIPTION", "SUSCRIPCION", "MENSUAL", "RECURRENTE", "RENOVACION",
	}
}
