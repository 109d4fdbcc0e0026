package domain

// SortDirection segue a convenção do banco: 1 ascendente, -1 descendente
type SortDirection int

const (
	SortAscending  SortDirection = 1
	SortDescending SortDirection = -1
)

func (d SortDirection) String() string {
	if d == SortAscending {
		return "asc"
	}
	return "desc"
}

// SortSpec é o parâmetro de ordenação como o cliente enviou
type SortSpec struct {
	Field     string
	Direction string
}

// SortOrder é a ordenação resolvida de um único campo
type SortOrder struct {
	Field     string
	Direction SortDirection
}

// TransactionQuery é a requisição de listagem já normalizada
type TransactionQuery struct {
	Page     int64
	PageSize int64
	Sort     *SortSpec // nil = ordem natural da coleção
	Search   string
}

// Offset é a quantidade de documentos pulados antes da página
func (q TransactionQuery) Offset() int64 {
	return q.Page * q.PageSize
}
