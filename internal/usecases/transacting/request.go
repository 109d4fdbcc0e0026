package transacting

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"github.com/vfg2006/admin-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultPage     int64 = 0
	DefaultPageSize int64 = 20
)

// sortParam é o formato serializado de sort. O grid do dashboard envia a
// direção na chave "sort"; "direction" tem precedência quando as duas vêm.
type sortParam struct {
	Field     *string `json:"field"`
	Direction *string `json:"direction"`
	Sort      *string `json:"sort"`
}

// NormalizeRequest aplica os defaults e valida page, pageSize, sort e search
func NormalizeRequest(params url.Values) (*domain.TransactionQuery, error) {
	query := &domain.TransactionQuery{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Search:   params.Get("search"),
	}

	if raw := strings.TrimSpace(params.Get("page")); raw != "" {
		page, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || page < 0 {
			return nil, NewTransactionError(ErrInvalidPagination, apiErrors.ErrInvalidPagination, "page deve ser um inteiro maior ou igual a zero")
		}
		query.Page = page
	}

	if raw := strings.TrimSpace(params.Get("pageSize")); raw != "" {
		pageSize, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || pageSize <= 0 {
			return nil, NewTransactionError(ErrInvalidPagination, apiErrors.ErrInvalidPagination, "pageSize deve ser um inteiro maior que zero")
		}
		query.PageSize = pageSize
	}

	// page*pageSize precisa caber em int64 para virar o skip
	if query.Page > math.MaxInt64/query.PageSize {
		return nil, NewTransactionError(ErrInvalidPagination, apiErrors.ErrInvalidPagination, "page fora do intervalo para o pageSize informado")
	}

	if raw := strings.TrimSpace(params.Get("sort")); raw != "" {
		spec, err := parseSort(raw)
		if err != nil {
			return nil, err
		}
		query.Sort = spec
	}

	return query, nil
}

func parseSort(raw string) (*domain.SortSpec, error) {
	if !strings.HasPrefix(raw, "{") {
		return nil, NewTransactionError(ErrInvalidSortSpec, apiErrors.ErrInvalidSortSpec, "sort deve ser um objeto JSON")
	}

	var param sortParam
	if err := json.Unmarshal([]byte(raw), &param); err != nil {
		return nil, NewTransactionError(ErrInvalidSortSpec, apiErrors.ErrInvalidSortSpec, "sort não é um JSON válido")
	}

	if param.Field == nil || strings.TrimSpace(*param.Field) == "" {
		return nil, NewTransactionError(ErrInvalidSortSpec, apiErrors.ErrInvalidSortSpec, "sort.field é obrigatório")
	}

	spec := &domain.SortSpec{Field: *param.Field}
	switch {
	case param.Direction != nil:
		spec.Direction = *param.Direction
	case param.Sort != nil:
		spec.Direction = *param.Sort
	}

	return spec, nil
}
