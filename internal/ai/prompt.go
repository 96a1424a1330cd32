package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/models"
)

// categoryExamples anchors the model on real Chilean merchant strings
// so partial matches resolve to specific categories instead of Otros.
const categoryExamples = `Ejemplos específicos de transacciones bancarias chilenas:

SUPERMERCADO: UNIMARC, FOOD MARKET, PRONTO COPEC, ISIDORA.COPEC, TUU MARKET, ALMACEN, LIDER, JUMBO, TOTTUS, SANTA ISABEL
TRANSPORTE: PAYU UBER TRIP, PAYU *UBER, RECORRIDO, BIPAYTEMUCO, LATAM.COM, TUU TRANSPORTES, COPEC (combustible), SKY AIRLINE
DELIVERY: PAYU UBER EATS, RAPPI, PEDIDOSYA, CORNERSHOP
RESTAURANT: NIU SUSHI, DELI A VARAS, CERVECERA, CERVECERIA, RATIO COFFEE, WONDERLAND CAFE, CAFETERIA, UDON, STARBUCKS, JUAN VALDEZ
STREAMING: MUBI, GOOGLE YOUTUBE, DL GOOGLE YOUTUBE, GOOGLE PLAY YOUTUBE, NEXTORY, NETFLIX, SPOTIFY, HBO MAX, AMAZON PRIME, CRUNCHYROLL, DRUMSCRIBE
TRABAJO: FIGMA, DIGITALOCEAN, CLAUDE.AI, OBSIDIAN, GITHUB, NOTION, AWS, GOOGLE CLOUD
GASTOS BÁSICOS: PAGO CGE, PAGO WOM, WOMPAY, luz, agua, gas, internet, teléfono
JUEGOS: PLAYSTATION NETWORK, PLAYSTATION, PSN, PS4, PS5, STEAM, NINTENDO, SWITCH, XBOX, DISCORD, EPIC GAMES, cualquier transacción relacionada con videojuegos
CINE: CINEPLANET, CINES MOVILAND, CINEMARK, CINEPOLIS
SALUD: SALCOBRAND, CRUZ VERDE, C. VERDE, AHUMADA, farmacias
LIBROS: DIGITAL PUBLICATION, KINDLE, BUSCALIBRE, ANTARTICA
DECORACIÓN: CASAIDEAS, IKEA, HOMY, SODIMAC (decoración), muebles
VESTIMENTA: RIPLEY, FALABELLA, ZARA, H&M, PARIS, ropa
INVERSIONES: binance.com, BUDA, crypto, acciones
DEPORTE: Club Esgrima, gimnasio, GYM, SMARTFIT
ARRIENDO: AIRBNB, TRANSF. PARA MIGUEL ARTURO
ESTÉTICA: peluquería, barbería, spa, manicure
LAVANDERÍA: lavandería, tintorería
CONCIERTOS: PUNTOTICKET, TICKETMASTER, eventos en vivo

CASOS AMBIGUOS → "Otros":
- APPLE.COM BILL
- MERCADOPAGO sin contexto
- Transferencias a personas sin contexto`

// AllowedCategories returns the categories an AI result may use for a
// transaction direction. Income keeps only income categories plus the
// default bucket; expenses keep everything else plus the default
// bucket.
func AllowedCategories(txType models.TransactionType) []string {
	var allowed []string
	for _, category := range models.Categories {
		isIncome := models.IsIncomeCategory(category)
		if txType == models.TypeAbono {
			if isIncome || category == models.CategoryOtros {
				allowed = append(allowed, category)
			}
		} else if !isIncome || category == models.CategoryOtros {
			allowed = append(allowed, category)
		}
	}
	return allowed
}

// batchEnvelope is the JSON shape the providers are instructed to
// return.
type batchEnvelope struct {
	Categories []batchEntry `json:"categories"`
}

type batchEntry struct {
	Index    int    `json:"index"`
	Category string `json:"category"`
}

// BuildBatchPrompt renders the categorization prompt for a batch.
// Indices in the prompt are batch-local and zero-based.
func BuildBatchPrompt(items []BatchItem) string {
	var itemLines []string
	for i, item := range items {
		direction := "Gasto (Cargo)"
		if item.Type == models.TypeAbono {
			direction = "Ingreso (Abono)"
		}
		itemLines = append(itemLines, fmt.Sprintf(
			"%d. Tipo: %s | Descripción: %q | Categorías disponibles: %s",
			i, direction, item.Description, strings.Join(AllowedCategories(item.Type), ", ")))
	}

	var categoryLines []string
	for i, category := range models.Categories {
		categoryLines = append(categoryLines, fmt.Sprintf("  %d. %s", i+1, category))
	}

	return fmt.Sprintf(`Eres un asistente experto en categorización de transacciones bancarias chilenas.

Necesito que categorices %d transacciones bancarias.

%s

Transacciones a categorizar:
%s

Categorías válidas (debes usar EXACTAMENTE una de estas):
%s

INSTRUCCIONES:
1. Analiza cada descripción cuidadosamente, palabra por palabra
2. Busca coincidencias parciales (ej: "PLAYSTATION" dentro de "PLAYSTATION NETWORK SAN MAT")
3. Selecciona la categoría MÁS ESPECÍFICA que coincida según los ejemplos proporcionados
4. Usa "Otros" solo como ÚLTIMO RECURSO
5. Para ingresos (Abono), prioriza "Sueldo" y solo usa "Otros" si definitivamente no es un sueldo

Responde ÚNICAMENTE con un objeto JSON válido con esta estructura exacta:
{
  "categories": [
    {"index": 0, "category": "nombre_exacto_de_la_categoria"},
    {"index": 1, "category": "nombre_exacto_de_la_categoria"}
  ]
}

CRÍTICO:
- Cada categoría DEBE coincidir EXACTAMENTE con una de las categorías listadas arriba
- El índice corresponde a la posición en la lista de transacciones (0-based)
- No agregues texto adicional, solo el JSON`,
		len(items), categoryExamples, strings.Join(itemLines, "\n\n"), strings.Join(categoryLines, "\n"))
}

// systemPrompt primes the model to answer with structured JSON only.
const systemPrompt = "Eres un asistente especializado en categorización de transacciones bancarias. " +
	"Siempre respondes con JSON válido y estructurado."

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseEnvelope decodes the provider's answer. Models sometimes wrap
// the JSON in prose; the fallback extracts the outermost object before
// giving up.
func parseEnvelope(content string) (batchEnvelope, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return batchEnvelope{}, fmt.Errorf("empty response")
	}

	var envelope batchEnvelope
	if err := json.Unmarshal([]byte(content), &envelope); err == nil {
		return envelope, nil
	}

	match := jsonObjectPattern.FindString(content)
	if match == "" {
		return batchEnvelope{}, fmt.Errorf("response is not JSON: %.80s", content)
	}
	if err := json.Unmarshal([]byte(match), &envelope); err != nil {
		return batchEnvelope{}, fmt.Errorf("parsing extracted JSON: %w", err)
	}
	return envelope, nil
}

// normalizeResults validates the envelope against the batch. Every item
// gets exactly one result: categories outside the allowed set for the
// item's direction and items the model skipped both degrade to the
// default bucket.
func normalizeResults(items []BatchItem, envelope batchEnvelope, logger logging.Logger) []BatchResult {
	byIndex := make(map[int]string, len(envelope.Categories))
	for _, entry := range envelope.Categories {
		if _, seen := byIndex[entry.Index]; !seen {
			byIndex[entry.Index] = strings.TrimSpace(entry.Category)
		}
	}

	results := make([]BatchResult, len(items))
	for i, item := range items {
		category, ok := byIndex[i]
		switch {
		case !ok || category == "":
			logger.Warn("AI result missing for item, using default category",
				logging.F("description", item.Description))
			category = models.CategoryOtros
		case !containsCategory(AllowedCategories(item.Type), category):
			logger.Warn("AI returned out-of-range category, using default",
				logging.F("category", category),
				logging.F("type", string(item.Type)))
			category = models.CategoryOtros
		}
		results[i] = BatchResult{Index: item.Index, Category: category}
	}
	return results
}

func containsCategory(categories []string, candidate string) bool {
	for _, category := range categories {
		if category == candidate {
			return true
		}
	}
	return false
}
