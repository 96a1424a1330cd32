// Package amount converts locale-ambiguous numeric strings into decimal
// values. Bank exports mix Chilean/European formats ("10.000,50") with
// US formats ("10,000.50"); when both separators are present, whichever
// appears last is the decimal separator.
package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a raw amount string to a signed decimal. Currency
// symbols and stray characters are ignored; unparseable input yields
// zero, never an error.
//
// Sign handling is intentionally uneven between branches: a single
// comma-decimal keeps a native sign, while multi-comma and dot-only
// values are coerced to their absolute value and re-signed only from an
// explicit leading minus. Downstream type assignment relies on this
// behavior for specific bank export formats, so do not symmetrize it.
func Parse(raw string) decimal.Decimal {
	cleaned := stripNonNumeric(raw)
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero
	}

	negative := strings.HasPrefix(cleaned, "-")
	if negative {
		cleaned = cleaned[1:]
	}

	commaCount := strings.Count(cleaned, ",")
	dotCount := strings.Count(cleaned, ".")

	if commaCount > 0 && dotCount > 0 {
		lastComma := strings.LastIndex(cleaned, ",")
		lastDot := strings.LastIndex(cleaned, ".")

		var intPart, decPart string
		if lastComma > lastDot {
			parts := strings.Split(cleaned, ",")
			intPart = strings.ReplaceAll(parts[0], ".", "")
			decPart = parts[1]
		} else {
			parts := strings.Split(cleaned, ".")
			intPart = strings.ReplaceAll(parts[0], ",", "")
			decPart = parts[1]
		}
		if decPart == "" {
			decPart = "00"
		}

		return sign(parseDecimal(intPart+"."+decPart), negative)
	}

	if commaCount > 0 {
		if commaCount == 1 {
			parts := strings.Split(cleaned, ",")
			if len(parts[1]) <= 2 {
				frac := parts[1]
				if frac == "" {
					frac = "00"
				}
				return sign(parseDecimal(parts[0]+"."+frac), negative)
			}
		}
		// Multi-comma values are thousands-separated and never
		// negative-native; only the recorded leading minus re-signs.
		return sign(parseDecimal(strings.ReplaceAll(cleaned, ",", "")).Abs(), negative)
	}

	if dotCount > 1 {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	} else if dotCount == 1 {
		afterDot := cleaned[strings.LastIndex(cleaned, ".")+1:]
		if len(afterDot) > 2 {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	return sign(parseDecimal(cleaned).Abs(), negative)
}

// stripNonNumeric keeps only digits, separators and minus signs.
func stripNonNumeric(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseDecimal parses a cleaned numeric string, tolerating a trailing
// decimal point. Anything unparseable collapses to zero.
func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func sign(d decimal.Decimal, negative bool) decimal.Decimal {
	if negative {
		return d.Abs().Neg()
	}
	return d
}
