// Package normalize maps arbitrarily-named and -ordered raw extraction
// columns onto the canonical reconciliation schema. It is the only contract
// the volatile extraction layer has to honor: whatever format an extractor
// experiment produces, the canonical line item coming out of here is fixed.
package normalize

import (
	"strings"

	"boletim-audit/internal/domain"
)

// Canonical measurement fields. Upstream extractors emit both Portuguese and
// English headers depending on which experiment produced the table, so every
// field carries alias spellings. Matching is case-insensitive on trimmed,
// space-collapsed header text; unrecognized columns are dropped silently.
const (
	fieldDescription     = "description"
	fieldFullDescription = "full_description"
	fieldUnit            = "unit"

	fieldQtyStandby     = "qty_standby"
	fieldQtyOperational = "qty_operational"
	fieldQtyOvertime    = "qty_overtime"
	fieldQtyTotal       = "qty_total"

	fieldUnitPriceStandby     = "unit_price_standby"
	fieldUnitPriceOperational = "unit_price_operational"
	fieldUnitPriceOvertime    = "unit_price_overtime"

	fieldTotalStandby       = "total_standby"
	fieldTotalOperational   = "total_operational"
	fieldTotalOvertime      = "total_overtime"
	fieldTotalOvertimeHours = "total_overtime_hours"
	fieldTotalBilled        = "total_billed"
)

var lineItemAliases = map[string]string{
	"description":     fieldDescription,
	"descricao":       fieldDescription,
	"descrição":       fieldDescription,
	"funcao":          fieldDescription,
	"função":          fieldDescription,
	"role":            fieldDescription,
	"cargo":           fieldDescription,

	"full_description": fieldFullDescription,
	"nome":             fieldFullDescription,
	"name":             fieldFullDescription,
	"profissional":     fieldFullDescription,
	"colaborador":      fieldFullDescription,

	"unit":    fieldUnit,
	"unidade": fieldUnit,
	"und":     fieldUnit,
	"un":      fieldUnit,

	"qty_standby":      fieldQtyStandby,
	"qtd sobreaviso":   fieldQtyStandby,
	"qtde sobreaviso":  fieldQtyStandby,
	"qty_operational":  fieldQtyOperational,
	"qtd operacional":  fieldQtyOperational,
	"qtde operacional": fieldQtyOperational,
	"qty_overtime":     fieldQtyOvertime,
	"qtd he":           fieldQtyOvertime,
	"qtd hora extra":   fieldQtyOvertime,
	"qty_total":        fieldQtyTotal,
	"qtd total":        fieldQtyTotal,
	"qtd":              fieldQtyTotal,
	"quantidade":       fieldQtyTotal,

	"unit_price_standby":         fieldUnitPriceStandby,
	"valor unitario sobreaviso":  fieldUnitPriceStandby,
	"preco sobreaviso":           fieldUnitPriceStandby,
	"unit_price_operational":     fieldUnitPriceOperational,
	"valor unitario":             fieldUnitPriceOperational,
	"valor unitario operacional": fieldUnitPriceOperational,
	"preco unitario":             fieldUnitPriceOperational,
	"unit_price_overtime":        fieldUnitPriceOvertime,
	"valor he":                   fieldUnitPriceOvertime,
	"valor hora extra":           fieldUnitPriceOvertime,

	"total_standby":        fieldTotalStandby,
	"total sobreaviso":     fieldTotalStandby,
	"total_operational":    fieldTotalOperational,
	"total operacional":    fieldTotalOperational,
	"total_overtime":       fieldTotalOvertime,
	"total he":             fieldTotalOvertime,
	"total_overtime_hours": fieldTotalOvertimeHours,
	"total horas extras":   fieldTotalOvertimeHours,
	"total_billed":         fieldTotalBilled,
	"total":                fieldTotalBilled,
	"valor total":          fieldTotalBilled,
	"total medido":         fieldTotalBilled,
}

// normalizeHeader canonicalizes one header cell for alias lookup.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

// columnIndex maps canonical field names to column positions. The first
// column claiming a field wins; later columns with the same alias are
// ignored rather than overwriting the earlier claim.
func columnIndex(header []string, aliases map[string]string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		field, ok := aliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, taken := idx[field]; !taken {
			idx[field] = i
		}
	}
	return idx
}

// LineItems converts one raw extracted table into canonical line items. The
// transformation is pure: absent columns and empty cells stay nil, non-empty
// monetary cells go through the currency normalizer (garbled cells degrade
// to 0), extra columns are discarded, and fully-empty records are skipped.
// Running it twice on the same table yields the same items.
func LineItems(t domain.RawTable) []domain.CanonicalLineItem {
	idx := columnIndex(t.Header, lineItemAliases)

	var items []domain.CanonicalLineItem
	for _, rec := range t.Records {
		if blankRecord(rec) {
			continue
		}
		items = append(items, domain.CanonicalLineItem{
			Description:     textCell(rec, idx, fieldDescription),
			FullDescription: textCell(rec, idx, fieldFullDescription),
			Unit:            textCell(rec, idx, fieldUnit),

			QtyStandby:     numericCell(rec, idx, fieldQtyStandby),
			QtyOperational: numericCell(rec, idx, fieldQtyOperational),
			QtyOvertime:    numericCell(rec, idx, fieldQtyOvertime),
			QtyTotal:       numericCell(rec, idx, fieldQtyTotal),

			UnitPriceStandby:     numericCell(rec, idx, fieldUnitPriceStandby),
			UnitPriceOperational: numericCell(rec, idx, fieldUnitPriceOperational),
			UnitPriceOvertime:    numericCell(rec, idx, fieldUnitPriceOvertime),

			TotalStandby:       numericCell(rec, idx, fieldTotalStandby),
			TotalOperational:   numericCell(rec, idx, fieldTotalOperational),
			TotalOvertime:      numericCell(rec, idx, fieldTotalOvertime),
			TotalOvertimeHours: numericCell(rec, idx, fieldTotalOvertimeHours),
			TotalBilled:        numericCell(rec, idx, fieldTotalBilled),
		})
	}
	return items
}

func blankRecord(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// textCell returns the trimmed cell for a canonical field, or "" when the
// column is absent or the record is too short.
func textCell(rec []string, idx map[string]int, field string) string {
	i, ok := idx[field]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// numericCell returns the normalized monetary value for a canonical field.
// An absent column or an empty cell yields nil; a garbled non-empty cell
// degrades to 0 rather than failing the row, so bad extraction stays
// observable without poisoning rows that simply have no value.
func numericCell(rec []string, idx map[string]int, field string) *float64 {
	i, ok := idx[field]
	if !ok || i >= len(rec) {
		return nil
	}
	if strings.TrimSpace(rec[i]) == "" {
		return nil
	}
	v := domain.NormalizeCurrency(rec[i])
	return &v
}
