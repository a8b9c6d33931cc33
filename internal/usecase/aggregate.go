package usecase

import (
	"fmt"
	"sort"
	"strings"

	"boletim-audit/internal/domain"
)

// NoDiscrepanciesFinding is reported when an audit ran and found every row
// clean, so callers can tell "checked, clean" apart from "not checked".
const NoDiscrepanciesFinding = "no discrepancies found between measurement and contract"

// Aggregate merges per-document results into one combined table plus the
// findings summary. Rows come out document-major in lexical document-name
// order, keeping extraction order within each document, which makes repeated
// runs over identical inputs byte-identical.
func Aggregate(perDocument map[string][]domain.ReconciledRow) ([]domain.ReconciledRow, []string, bool) {
	documents := make([]string, 0, len(perDocument))
	for doc := range perDocument {
		documents = append(documents, doc)
	}
	sort.Strings(documents)

	combined := make([]domain.ReconciledRow, 0)
	findings := make([]string, 0)
	for _, doc := range documents {
		for _, row := range perDocument[doc] {
			combined = append(combined, row)
			if row.Flagged() {
				findings = append(findings, fmt.Sprintf("%s - %s", doc, rowFinding(row)))
			}
		}
	}

	if len(findings) == 0 {
		return combined, []string{NoDiscrepanciesFinding}, true
	}
	return combined, findings, false
}

// rowFinding renders the flagged conditions of one row as a single
// human-readable entry.
func rowFinding(row domain.ReconciledRow) string {
	var conditions []string
	if row.FlagPriceDivergent {
		conditions = append(conditions, priceFinding(row))
	}
	if row.FlagPriceDivergentVsSupport {
		conditions = append(conditions, "unit price diverges from support document")
	}
	if row.FlagTotalMismatch {
		conditions = append(conditions, fmt.Sprintf("recalculated total %.2f differs from billed %.2f", row.RecalculatedTotal, orZero(row.Item.TotalBilled)))
	}
	if row.FlagDuplicateDescription {
		conditions = append(conditions, "duplicate line item, possible double billing")
	}
	return fmt.Sprintf("%s: %s", row.Item.Key(), strings.Join(conditions, "; "))
}

func priceFinding(row domain.ReconciledRow) string {
	if row.Contract == nil {
		return "unit price diverges from contract"
	}
	if row.Item.UnitPriceOperational != nil && domain.Round2(*row.Item.UnitPriceOperational) != domain.Round2(row.Contract.UnitPrice) {
		return fmt.Sprintf("unit price diverges from contract: measured %.2f, contract %.2f", *row.Item.UnitPriceOperational, row.Contract.UnitPrice)
	}
	return fmt.Sprintf("standby price diverges from contract: measured %.2f, contract %.2f", orZero(row.Item.UnitPriceStandby), row.Contract.StandbyPrice)
}
