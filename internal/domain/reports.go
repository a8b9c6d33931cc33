package domain

import "github.com/google/uuid"

// ReconciledRow is a measurement line item left-joined with at most one
// contract reference item, plus the derived discrepancy flags. Flags are pure
// functions of the row and its matches; recomputing them on identical inputs
// yields identical results.
type ReconciledRow struct {
	Document string            `json:"document"`
	Item     CanonicalLineItem `json:"item"`

	// Contract is nil when no contract row shares the reconciliation key.
	Contract *ContractReferenceItem `json:"contract,omitempty"`

	RecalculatedTotal float64 `json:"recalculated_total"`
	Unmatched         bool    `json:"unmatched"`

	FlagPriceDivergent          bool `json:"flag_price_divergent"`
	FlagTotalMismatch           bool `json:"flag_total_mismatch"`
	FlagDuplicateDescription    bool `json:"flag_duplicate_description"`
	FlagPriceDivergentVsSupport bool `json:"flag_price_divergent_vs_support"`
}

// Flagged reports whether any discrepancy flag is set on the row.
func (r ReconciledRow) Flagged() bool {
	return r.FlagPriceDivergent || r.FlagTotalMismatch || r.FlagDuplicateDescription || r.FlagPriceDivergentVsSupport
}

// Summary provides high-level statistics of one audit run.
type Summary struct {
	DocumentsProcessed int `json:"documents_processed"`
	RowsProcessed      int `json:"rows_processed"`
	MatchedRows        int `json:"matched_rows"`
	UnmatchedRows      int `json:"unmatched_rows"`
	FlaggedRows        int `json:"flagged_rows"`
}

// AuditReport is the top-level structure for the final JSON output. Rows are
// document-major, in lexical document-name order, keeping extraction order
// within each document.
type AuditReport struct {
	RunID        uuid.UUID       `json:"run_id"`
	AuditSummary Summary         `json:"audit_summary"`
	Rows         []ReconciledRow `json:"rows"`

	// Findings holds one human-readable entry per flagged condition. When no
	// row is flagged it holds the single no-discrepancies entry and Clean is
	// true, so "checked, clean" stays distinguishable from "not checked".
	Findings []string `json:"findings"`
	Clean    bool     `json:"clean"`

	// AmbiguousContractKeys lists contract keys that appeared more than once
	// in the reference table; the first occurrence won the join.
	AmbiguousContractKeys []string `json:"ambiguous_contract_keys,omitempty"`
}
