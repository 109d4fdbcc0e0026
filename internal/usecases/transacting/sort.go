package transacting

import "github.com/vfg2006/admin-dashboard-api/internal/domain"

const directionAscending = "asc"

// BuildSortOrder resolve o sort do cliente. A direção é ascendente somente
// quando o token é exatamente "asc"; qualquer outro valor é descendente.
// needsCoercion indica que o campo é cost e precisa ser convertido para
// número antes da ordenação.
func BuildSortOrder(spec *domain.SortSpec) (order *domain.SortOrder, needsCoercion bool) {
	if spec == nil {
		return nil, false
	}

	direction := domain.SortDescending
	if spec.Direction == directionAscending {
		direction = domain.SortAscending
	}

	return &domain.SortOrder{
		Field:     spec.Field,
		Direction: direction,
	}, spec.Field == domain.TransactionFieldCost
}
