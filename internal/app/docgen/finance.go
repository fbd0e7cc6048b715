package docgen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"visaportal/internal/app/ds"

	"gorm.io/datatypes"
)

// Currency symbols printed on documents.
const (
	CurrencyUSD = "US$"
	CurrencyBRL = "R$"
)

// DisplayAmount is what the client actually authorized, which the raw
// base-currency total cannot express on its own.
type DisplayAmount struct {
	Value    float64
	Currency string
}

func (a DisplayAmount) String() string {
	return fmt.Sprintf("%s %.2f", a.Currency, a.Value)
}

// DeriveDisplayAmount maps payment method and metadata to the amount and
// currency to print. The stored total is reused across payment rails with
// different tax and fee treatment, so each rail has its own rule:
//
//	pix          -> BRL, metadata final_amount when > 0, else base total
//	installments -> BRL, metadata total_brl, else base_brl, else base total
//	card         -> USD, always base total
//	zelle/manual -> USD, always base total
func DeriveDisplayAmount(order *ds.Order) DisplayAmount {
	base := parseAmount(order.TotalPriceUSD)

	switch order.PaymentMethod {
	case ds.PaymentMethodPix:
		if v := metaAmount(order.PaymentMetadata, "final_amount"); v > 0 {
			return DisplayAmount{Value: v, Currency: CurrencyBRL}
		}
		return DisplayAmount{Value: base, Currency: CurrencyBRL}

	case ds.PaymentMethodInstallments:
		if v := metaAmount(order.PaymentMetadata, "total_brl"); v > 0 {
			return DisplayAmount{Value: v, Currency: CurrencyBRL}
		}
		if v := metaAmount(order.PaymentMetadata, "base_brl"); v > 0 {
			return DisplayAmount{Value: v, Currency: CurrencyBRL}
		}
		return DisplayAmount{Value: base, Currency: CurrencyBRL}

	default: // card, zelle, manual: base currency, local metadata ignored
		return DisplayAmount{Value: base, Currency: CurrencyUSD}
	}
}

func parseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// metaAmount reads a numeric metadata value regardless of how the
// webhook serialized it (number, numeric string or json.Number).
func metaAmount(meta datatypes.JSONMap, key string) float64 {
	if meta == nil {
		return 0
	}
	switch v := meta[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseAmount(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// metaString reads a metadata value as a display string; numbers are
// formatted without trailing zeros.
func metaString(meta datatypes.JSONMap, key string) string {
	if meta == nil {
		return ""
	}
	switch v := meta[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}
