package gateway

import "boletim-audit/internal/domain"

// builtinContractTable is the fallback reference-price table, used when no
// contract document is supplied for the run. It is expressed as a raw table
// so it flows through the exact same normalization path as an uploaded
// contract, Brazilian-formatted prices included.
var builtinContractTable = domain.RawTable{
	Header: []string{"item_id", "categoria", "funcao", "detalhamento", "unidade", "valor unitario", "valor sobreaviso"},
	Records: [][]string{
		{"1.01", "MAO DE OBRA", "SOLDADOR", "Soldador qualificado", "DIARIA", "1.352,75", "740,79"},
		{"1.02", "MAO DE OBRA", "CALDEIREIRO", "Caldeireiro", "DIARIA", "1.102,50", "630,00"},
		{"1.03", "MAO DE OBRA", "MECANICO", "Mecânico de manutenção", "DIARIA", "831,25", "356,25"},
		{"1.04", "MAO DE OBRA", "ELETRICISTA", "Eletricista industrial", "DIARIA", "945,00", "472,50"},
		{"1.05", "MAO DE OBRA", "ENCARREGADO", "Encarregado de equipe", "DIARIA", "1.470,00", "735,00"},
		{"1.06", "MAO DE OBRA", "AJUDANTE", "Ajudante geral", "DIARIA", "525,00", "262,50"},
		{"2.01", "MAO DE OBRA", "SOLDADOR", "Soldador qualificado, hora extra", "HORA", "169,09", "0,00"},
		{"2.02", "MAO DE OBRA", "CALDEIREIRO", "Caldeireiro, hora extra", "HORA", "137,81", "0,00"},
		{"3.01", "EQUIPAMENTO", "GUINDASTE 50T", "Guindaste 50 toneladas com operador", "DIARIA", "8.312,50", "4.156,25"},
		{"3.02", "EQUIPAMENTO", "MUNCK", "Caminhão munck", "DIARIA", "2.940,00", "1.470,00"},
	},
}
