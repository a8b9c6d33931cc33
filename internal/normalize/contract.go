package normalize

import (
	"boletim-audit/internal/domain"
)

const (
	fieldItemID       = "item_id"
	fieldCategory     = "category"
	fieldUnitPrice    = "unit_price"
	fieldStandbyPrice = "standby_price"
)

var contractAliases = map[string]string{
	"item_id": fieldItemID,
	"item":    fieldItemID,
	"codigo":  fieldItemID,
	"código":  fieldItemID,

	"category":  fieldCategory,
	"categoria": fieldCategory,

	"description": fieldDescription,
	"descricao":   fieldDescription,
	"descrição":   fieldDescription,
	"funcao":      fieldDescription,
	"função":      fieldDescription,

	"full_description": fieldFullDescription,
	"detalhamento":     fieldFullDescription,

	"unit":    fieldUnit,
	"unidade": fieldUnit,
	"und":     fieldUnit,

	"unit_price":     fieldUnitPrice,
	"valor unitario": fieldUnitPrice,
	"preco unitario": fieldUnitPrice,
	"valor":          fieldUnitPrice,

	"standby_price":    fieldStandbyPrice,
	"valor sobreaviso": fieldStandbyPrice,
	"preco sobreaviso": fieldStandbyPrice,
}

// ContractItems converts a raw contract price table into reference items,
// using the same tolerant header matching as the measurement path. Prices
// are plain floats here: a contract row without a parseable price is a
// zero-price reference, which the engine will happily compare against and
// flag, keeping bad contract extractions observable instead of silent.
func ContractItems(t domain.RawTable) []domain.ContractReferenceItem {
	idx := columnIndex(t.Header, contractAliases)

	var items []domain.ContractReferenceItem
	for _, rec := range t.Records {
		if blankRecord(rec) {
			continue
		}
		item := domain.ContractReferenceItem{
			ItemID:          textCell(rec, idx, fieldItemID),
			Category:        textCell(rec, idx, fieldCategory),
			Description:     textCell(rec, idx, fieldDescription),
			FullDescription: textCell(rec, idx, fieldFullDescription),
			Unit:            textCell(rec, idx, fieldUnit),
		}
		if p := numericCell(rec, idx, fieldUnitPrice); p != nil {
			item.UnitPrice = *p
		}
		if p := numericCell(rec, idx, fieldStandbyPrice); p != nil {
			item.StandbyPrice = *p
		}
		items = append(items, item)
	}
	return items
}
