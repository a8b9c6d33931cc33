package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"boletim-audit/internal/config"
	"boletim-audit/internal/domain"
	"boletim-audit/internal/usecase"
	mock_usecase "boletim-audit/internal/usecase/mocks"
)

func f(v float64) *float64 { return &v }

var contractTable = domain.RawTable{
	Header: []string{"item_id", "categoria", "funcao", "unidade", "valor unitario", "valor sobreaviso"},
	Records: [][]string{
		{"1.01", "MAO DE OBRA", "SOLDADOR", "DIARIA", "120,00", "60,00"},
		{"1.02", "MAO DE OBRA", "CALDEIREIRO", "DIARIA", "1.102,50", "630,00"},
	},
}

func measurementTable(records ...[]string) domain.RawTable {
	return domain.RawTable{
		Header:  []string{"funcao", "nome", "unidade", "qtd total", "qtd he", "valor unitario sobreaviso", "valor unitario", "valor he", "total horas extras", "valor total"},
		Records: records,
	}
}

func TestReconciliationUseCase_Audit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		tables       map[string]domain.RawTable
		contractPath string
		supportPath  string
		supportTable domain.RawTable
		measureErr   error
		contractErr  error
		supportErr   error
		cfg          config.Config
		wantErr      bool
		check        func(t *testing.T, report *domain.AuditReport)
	}{
		{
			name: "total additivity with consistent billing",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					// 10 x 100 operational, nothing else
					[]string{"Soldador", "Paulo Gomes", "diaria", "10", "", "", "100,00", "", "", "1000,00"},
				),
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				assert.Len(t, report.Rows, 1)
				row := report.Rows[0]
				assert.Equal(t, 1000.0, row.RecalculatedTotal)
				assert.False(t, row.FlagTotalMismatch)
				// operational 100 vs contract 120 diverges
				assert.True(t, row.FlagPriceDivergent)
			},
		},
		{
			name: "price divergence against contract",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					[]string{"Soldador", "Paulo Gomes", "diaria", "1", "", "", "150,00", "", "", "150,00"},
				),
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				row := report.Rows[0]
				assert.NotNil(t, row.Contract)
				assert.Equal(t, "1.01", row.Contract.ItemID)
				assert.True(t, row.FlagPriceDivergent)
				assert.False(t, report.Clean)
			},
		},
		{
			name: "equal rounded prices are not divergent",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					[]string{"Caldeireiro", "Adriano Rangel", "diaria", "1", "", "630,00", "1102,50", "", "", "1732,50"},
				),
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				row := report.Rows[0]
				assert.False(t, row.FlagPriceDivergent)
				assert.False(t, row.FlagTotalMismatch)
				assert.True(t, report.Clean)
				assert.Equal(t, []string{usecase.NoDiscrepanciesFinding}, report.Findings)
			},
		},
		{
			name: "unmatched row is marked and never price-flagged",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					[]string{"Montador", "Rafael Macedo", "diaria", "2", "", "", "999,99", "", "", "1999,98"},
				),
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				row := report.Rows[0]
				assert.True(t, row.Unmatched)
				assert.Nil(t, row.Contract)
				assert.False(t, row.FlagPriceDivergent)
				assert.Equal(t, 1, report.AuditSummary.UnmatchedRows)
				assert.Equal(t, 0, report.AuditSummary.MatchedRows)
			},
		},
		{
			name: "total mismatch outside tolerance",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					// recalculated 10 x 120 = 1200, billed 1250
					[]string{"Soldador", "Paulo Gomes", "diaria", "10", "", "", "120,00", "", "", "1250,00"},
				),
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				row := report.Rows[0]
				assert.Equal(t, 1200.0, row.RecalculatedTotal)
				assert.True(t, row.FlagTotalMismatch)
				assert.False(t, row.FlagPriceDivergent)
			},
		},
		{
			name: "total difference inside tolerance is accepted",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					// recalculated 1200, billed 1200.50, tolerance 1.0
					[]string{"Soldador", "Paulo Gomes", "diaria", "10", "", "", "120,00", "", "", "1200,50"},
				),
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				assert.False(t, report.Rows[0].FlagTotalMismatch)
			},
		},
		{
			name: "zero tolerance means exact equality",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					[]string{"Soldador", "Paulo Gomes", "diaria", "10", "", "", "120,00", "", "", "1200,50"},
				),
			},
			cfg: config.Config{Reconcile: config.ReconcileConfig{TotalTolerance: 0}},
			check: func(t *testing.T, report *domain.AuditReport) {
				assert.True(t, report.Rows[0].FlagTotalMismatch)
			},
		},
		{
			name: "absent billed column is never a total mismatch",
			tables: map[string]domain.RawTable{
				"bm_01.csv": {
					Header: []string{"funcao", "nome", "unidade", "qtd total", "valor unitario"},
					Records: [][]string{
						{"Soldador", "Paulo Gomes", "diaria", "10", "120,00"},
					},
				},
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				row := report.Rows[0]
				assert.Equal(t, 1200.0, row.RecalculatedTotal)
				assert.Nil(t, row.Item.TotalBilled)
				// no billed value to compare against, so no arithmetic flag
				assert.False(t, row.FlagTotalMismatch)
			},
		},
		{
			name: "garbled billed cell compares as zero and is flagged",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					[]string{"Soldador", "Paulo Gomes", "diaria", "10", "", "", "120,00", "", "", "ilegivel"},
				),
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				row := report.Rows[0]
				assert.NotNil(t, row.Item.TotalBilled)
				assert.Equal(t, 0.0, *row.Item.TotalBilled)
				assert.True(t, row.FlagTotalMismatch)
			},
		},
		{
			name: "overtime charges participate in the recalculated total",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					// 10 x (60 standby + 120 operational) + 4 x 15 overtime + 100 flat
					[]string{"Soldador", "Paulo Gomes", "diaria", "10", "4", "60,00", "120,00", "15,00", "100,00", "1960,00"},
				),
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				row := report.Rows[0]
				assert.Equal(t, 1960.0, row.RecalculatedTotal)
				assert.False(t, row.FlagTotalMismatch)
			},
		},
		{
			name: "duplicate rows are flagged symmetrically",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					[]string{"Soldador", "Paulo Gomes", "diaria", "1", "", "", "120,00", "", "", "120,00"},
					[]string{"Caldeireiro", "Adriano Rangel", "diaria", "1", "", "", "1102,50", "", "", "1102,50"},
					[]string{"Soldador", "Paulo Gomes", "diaria", "1", "", "", "120,00", "", "", "120,00"},
				),
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				assert.True(t, report.Rows[0].FlagDuplicateDescription)
				assert.True(t, report.Rows[2].FlagDuplicateDescription)
				assert.False(t, report.Rows[1].FlagDuplicateDescription)
			},
		},
		{
			name: "support evidence corroboration",
			tables: map[string]domain.RawTable{
				"bm_01.csv": measurementTable(
					[]string{"Soldador", "Paulo Gomes", "diaria", "1", "", "", "120,00", "", "", "120,00"},
				),
			},
			supportPath: "support.csv",
			supportTable: domain.RawTable{
				Header: []string{"funcao", "unidade", "valor unitario"},
				Records: [][]string{
					{"Soldador", "diaria", "110,00"},
				},
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				row := report.Rows[0]
				// contract agrees (120) but the support document does not
				assert.False(t, row.FlagPriceDivergent)
				assert.True(t, row.FlagPriceDivergentVsSupport)
			},
		},
		{
			name: "empty document yields empty clean result",
			tables: map[string]domain.RawTable{
				"bm_01.csv": {},
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				assert.Empty(t, report.Rows)
				assert.True(t, report.Clean)
				assert.Equal(t, 1, report.AuditSummary.DocumentsProcessed)
				assert.Equal(t, []string{usecase.NoDiscrepanciesFinding}, report.Findings)
			},
		},
		{
			name: "rows from multiple documents are document-major and ordered",
			tables: map[string]domain.RawTable{
				"bm_02.csv": measurementTable(
					[]string{"Caldeireiro", "Adriano Rangel", "diaria", "1", "", "630,00", "1102,50", "", "", "1732,50"},
				),
				"bm_01.csv": measurementTable(
					[]string{"Soldador", "Paulo Gomes", "diaria", "1", "", "", "120,00", "", "", "120,00"},
				),
			},
			cfg: config.Default(),
			check: func(t *testing.T, report *domain.AuditReport) {
				assert.Len(t, report.Rows, 2)
				assert.Equal(t, "bm_01.csv", report.Rows[0].Document)
				assert.Equal(t, "bm_02.csv", report.Rows[1].Document)
				assert.Equal(t, 2, report.AuditSummary.DocumentsProcessed)
			},
		},
		{
			name:       "measurement repository error",
			measureErr: errors.New("failed to read measurement tables"),
			cfg:        config.Default(),
			wantErr:    true,
		},
		{
			name:        "contract repository error",
			tables:      map[string]domain.RawTable{},
			contractErr: errors.New("failed to read contract table"),
			cfg:         config.Default(),
			wantErr:     true,
		},
		{
			name:        "support repository error",
			tables:      map[string]domain.RawTable{},
			supportPath: "support.csv",
			supportErr:  errors.New("failed to read support table"),
			cfg:         config.Default(),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := mock_usecase.NewMockTableRepository(ctrl)
			paths := []string{"bm_01.csv"}

			if tt.measureErr != nil {
				mRepo.EXPECT().
					GetMeasurementTables(gomock.Any(), paths).
					Return(nil, tt.measureErr)
			} else {
				mRepo.EXPECT().
					GetMeasurementTables(gomock.Any(), paths).
					Return(tt.tables, nil)

				if tt.contractErr != nil {
					mRepo.EXPECT().
						GetContractTable(gomock.Any(), tt.contractPath).
						Return(domain.RawTable{}, tt.contractErr)
				} else {
					mRepo.EXPECT().
						GetContractTable(gomock.Any(), tt.contractPath).
						Return(contractTable, nil)

					if tt.supportPath != "" {
						if tt.supportErr != nil {
							mRepo.EXPECT().
								GetSupportTable(gomock.Any(), tt.supportPath).
								Return(domain.RawTable{}, tt.supportErr)
						} else {
							mRepo.EXPECT().
								GetSupportTable(gomock.Any(), tt.supportPath).
								Return(tt.supportTable, nil)
						}
					}
				}
			}

			uc := usecase.NewReconciliationUseCase(mRepo, tt.cfg)
			got, gotErr := uc.Audit(context.Background(), paths, tt.contractPath, tt.supportPath)

			if tt.wantErr {
				assert.Error(t, gotErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, gotErr)
				assert.NotNil(t, got)
				tt.check(t, got)
			}
		})
	}
}

func TestIndexContract(t *testing.T) {
	items := []domain.ContractReferenceItem{
		{ItemID: "1.01", Description: "Soldador", Unit: "diaria", UnitPrice: 120},
		{ItemID: "1.02", Description: "Caldeireiro", Unit: "diaria", UnitPrice: 1102.50},
		{ItemID: "9.99", Description: "SOLDADOR", Unit: " diaria ", UnitPrice: 999},
	}

	idx, ambiguous := usecase.IndexContract(items)

	assert.Len(t, idx, 2)
	// first occurrence wins on the duplicated key
	assert.Equal(t, "1.01", idx["SOLDADOR - DIARIA"].ItemID)
	assert.Equal(t, []string{"SOLDADOR - DIARIA"}, ambiguous)
}

func TestIndexContractNoAmbiguity(t *testing.T) {
	idx, ambiguous := usecase.IndexContract([]domain.ContractReferenceItem{
		{Description: "Soldador", Unit: "diaria"},
	})
	assert.Len(t, idx, 1)
	assert.Empty(t, ambiguous)
}

func TestReconcileIsDeterministic(t *testing.T) {
	items := []domain.CanonicalLineItem{
		{Description: "Soldador", FullDescription: "Paulo Gomes", Unit: "diaria", QtyTotal: f(10), UnitPriceOperational: f(120), TotalBilled: f(1250)},
		{Description: "Soldador", FullDescription: "Paulo Gomes", Unit: "diaria", QtyTotal: f(10), UnitPriceOperational: f(120), TotalBilled: f(1250)},
		{Description: "Montador", FullDescription: "Rafael Macedo", Unit: "diaria", QtyTotal: f(2), UnitPriceOperational: f(999.99)},
	}
	contractIdx, _ := usecase.IndexContract([]domain.ContractReferenceItem{
		{Description: "Soldador", Unit: "diaria", UnitPrice: 120, StandbyPrice: 60},
	})

	first := usecase.Reconcile("bm_01.csv", items, contractIdx, nil, config.Default().Reconcile)
	second := usecase.Reconcile("bm_01.csv", items, contractIdx, nil, config.Default().Reconcile)
	assert.Equal(t, first, second)

	// recomputing flags on identical inputs is idempotent
	assert.True(t, first[0].FlagDuplicateDescription)
	assert.True(t, first[1].FlagDuplicateDescription)
	assert.False(t, first[2].FlagDuplicateDescription)
	assert.True(t, first[2].Unmatched)
}
