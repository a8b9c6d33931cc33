package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"boletim-audit/internal/config"
	"boletim-audit/internal/domain"
	"boletim-audit/internal/normalize"
)

// ReconciliationUseCase orchestrates one audit run: it pulls raw tables from
// the repository, normalizes them, reconciles every measurement document
// against the contract reference table and aggregates the results.
type ReconciliationUseCase struct {
	repo TableRepository
	cfg  config.Config
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(repo TableRepository, cfg config.Config) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo, cfg: cfg}
}

// Audit performs the full reconciliation pipeline. supportPath may be empty,
// in which case no support comparison is made. contractPath may be empty, in
// which case the repository supplies the built-in reference table.
func (uc *ReconciliationUseCase) Audit(ctx context.Context, measurementPaths []string, contractPath, supportPath string) (*domain.AuditReport, error) {
	tables, err := uc.repo.GetMeasurementTables(ctx, measurementPaths)
	if err != nil {
		return nil, fmt.Errorf("could not get measurement tables: %w", err)
	}

	contractTable, err := uc.repo.GetContractTable(ctx, contractPath)
	if err != nil {
		return nil, fmt.Errorf("could not get contract table: %w", err)
	}
	contractIdx, ambiguous := IndexContract(normalize.ContractItems(contractTable))

	var supportIdx map[string]domain.CanonicalLineItem
	if supportPath != "" {
		supportTable, err := uc.repo.GetSupportTable(ctx, supportPath)
		if err != nil {
			return nil, fmt.Errorf("could not get support table: %w", err)
		}
		supportIdx = IndexSupport(normalize.LineItems(supportTable))
	}

	perDocument := make(map[string][]domain.ReconciledRow, len(tables))
	for doc, table := range tables {
		items := normalize.LineItems(table)
		perDocument[doc] = Reconcile(doc, items, contractIdx, supportIdx, uc.cfg.Reconcile)
	}

	rows, findings, clean := Aggregate(perDocument)

	report := &domain.AuditReport{
		RunID:                 uuid.New(),
		Rows:                  rows,
		Findings:              findings,
		Clean:                 clean,
		AmbiguousContractKeys: ambiguous,
	}
	report.AuditSummary = summarize(len(tables), rows)
	return report, nil
}

// IndexContract builds the key index for the contract reference table. When
// two contract rows share a key the first occurrence wins; every shadowed
// key is returned, sorted, so the ambiguity stays observable for audit.
func IndexContract(items []domain.ContractReferenceItem) (map[string]domain.ContractReferenceItem, []string) {
	idx := make(map[string]domain.ContractReferenceItem, len(items))
	seenAmbiguous := make(map[string]bool)
	for _, item := range items {
		key := item.Key()
		if _, ok := idx[key]; ok {
			seenAmbiguous[key] = true
			continue
		}
		idx[key] = item
	}

	var ambiguous []string
	for key := range seenAmbiguous {
		ambiguous = append(ambiguous, key)
	}
	sort.Strings(ambiguous)
	return idx, ambiguous
}

// IndexSupport builds the key index for the optional support evidence,
// first occurrence winning as with the contract table.
func IndexSupport(items []domain.CanonicalLineItem) map[string]domain.CanonicalLineItem {
	idx := make(map[string]domain.CanonicalLineItem, len(items))
	for _, item := range items {
		key := item.Key()
		if _, ok := idx[key]; !ok {
			idx[key] = item
		}
	}
	return idx
}

// Reconcile left-joins the measurement items of one document against the
// contract index, recomputes expected totals and classifies every row. No
// row is ever dropped: an item without a contract match is marked Unmatched
// and is never price-flagged, since there is no baseline to compare against.
func Reconcile(document string, items []domain.CanonicalLineItem, contractIdx map[string]domain.ContractReferenceItem, supportIdx map[string]domain.CanonicalLineItem, cfg config.ReconcileConfig) []domain.ReconciledRow {
	rows := make([]domain.ReconciledRow, 0, len(items))
	for _, item := range items {
		row := domain.ReconciledRow{
			Document:          document,
			Item:              item,
			RecalculatedTotal: recalculatedTotal(item),
		}

		if contract, ok := contractIdx[item.Key()]; ok {
			c := contract
			row.Contract = &c
			row.FlagPriceDivergent = priceDivergent(item, contract.StandbyPrice, contract.UnitPrice)
		} else {
			row.Unmatched = true
		}

		if supportIdx != nil {
			if support, ok := supportIdx[item.Key()]; ok {
				row.FlagPriceDivergentVsSupport = priceDivergentVsSupport(item, support)
			}
		}

		if item.TotalBilled != nil {
			row.FlagTotalMismatch = math.Abs(row.RecalculatedTotal-*item.TotalBilled) > cfg.TotalTolerance
		}

		rows = append(rows, row)
	}

	flagDuplicates(rows)
	return rows
}

// recalculatedTotal mirrors the additive structure of the billed total:
// regular quantities at the standby and operational rates, overtime
// quantities at the overtime rate, plus the flat overtime-hours charge.
// Missing operands count as zero so one garbled cell never aborts the row.
func recalculatedTotal(item domain.CanonicalLineItem) float64 {
	return orZero(item.QtyTotal)*orZero(item.UnitPriceStandby) +
		orZero(item.QtyTotal)*orZero(item.UnitPriceOperational) +
		orZero(item.QtyOvertime)*orZero(item.UnitPriceOvertime) +
		orZero(item.TotalOvertimeHours)
}

// priceDivergent compares the measured standby and operational unit prices
// against the contract rates for the same key. Comparison is on two-decimal
// rounded values; a rate class absent from the measurement row is not
// compared.
func priceDivergent(item domain.CanonicalLineItem, standbyPrice, operationalPrice float64) bool {
	if item.UnitPriceStandby != nil && domain.Round2(*item.UnitPriceStandby) != domain.Round2(standbyPrice) {
		return true
	}
	if item.UnitPriceOperational != nil && domain.Round2(*item.UnitPriceOperational) != domain.Round2(operationalPrice) {
		return true
	}
	return false
}

// priceDivergentVsSupport is the independent corroboration channel: the same
// rate-class comparison, but against the support document's values. A rate
// class absent from either side is not compared.
func priceDivergentVsSupport(item, support domain.CanonicalLineItem) bool {
	if item.UnitPriceStandby != nil && support.UnitPriceStandby != nil &&
		domain.Round2(*item.UnitPriceStandby) != domain.Round2(*support.UnitPriceStandby) {
		return true
	}
	if item.UnitPriceOperational != nil && support.UnitPriceOperational != nil &&
		domain.Round2(*item.UnitPriceOperational) != domain.Round2(*support.UnitPriceOperational) {
		return true
	}
	return false
}

// flagDuplicates annotates rows whose (description, full_description) pair
// is identical after case/whitespace normalization. Every member of such a
// group is flagged, first occurrence included: the point is to surface the
// group, not to elect an original. Rows with neither field filled in are
// skipped, since an empty pair identifies nothing.
func flagDuplicates(rows []domain.ReconciledRow) {
	groups := make(map[string][]int, len(rows))
	for i, row := range rows {
		key := duplicateKey(row.Item)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], i)
	}
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		for _, i := range members {
			rows[i].FlagDuplicateDescription = true
		}
	}
}

func duplicateKey(item domain.CanonicalLineItem) string {
	desc := strings.ToUpper(strings.TrimSpace(item.Description))
	full := strings.ToUpper(strings.TrimSpace(item.FullDescription))
	if desc == "" && full == "" {
		return ""
	}
	return desc + "\x1f" + full
}

func summarize(documents int, rows []domain.ReconciledRow) domain.Summary {
	s := domain.Summary{
		DocumentsProcessed: documents,
		RowsProcessed:      len(rows),
	}
	for _, row := range rows {
		if row.Unmatched {
			s.UnmatchedRows++
		} else {
			s.MatchedRows++
		}
		if row.Flagged() {
			s.FlaggedRows++
		}
	}
	return s
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
