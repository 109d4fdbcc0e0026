package transacting

import "github.com/vfg2006/admin-dashboard-api/internal/domain"

// SearchFields são os campos testados pela busca, combinados com OR
var SearchFields = []string{domain.TransactionFieldUserID, domain.TransactionFieldCost}

// BuildSearchFilter monta o filtro de substring sem diferenciar maiúsculas.
// cost é texto, então "12" encontra "112.00" e "12.50".
func BuildSearchFilter(search string) domain.FilterStage {
	fields := make([]string, len(SearchFields))
	copy(fields, SearchFields)

	return domain.FilterStage{
		Search: search,
		Fields: fields,
	}
}
