// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nomes das coleções no banco de documentos
const (
	CollectionTransactions   = "transactions"
	CollectionUsers          = "users"
	CollectionAffiliateStats = "affiliatestats"
	CollectionOverallStats   = "overallstats"
)

// Campos de Transaction usados pelas consultas
const (
	TransactionFieldID     = "_id"
	TransactionFieldUserID = "userId"
	TransactionFieldCost   = "cost"
)

// Transaction é criada pelo processo externo de carga; esta API apenas lê.
// Cost é persistido como texto.
type Transaction struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id"`
	UserID    string               `json:"userId" bson:"userId"`
	Cost      Cost                 `json:"cost" bson:"cost"`
	Products  []primitive.ObjectID `json:"products" bson:"products"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// UnmarshalBSON devolve products ausente ou nulo como lista vazia
func (t *Transaction) UnmarshalBSON(data []byte) error {
	type plain Transaction
	if err := bson.Unmarshal(data, (*plain)(t)); err != nil {
		return err
	}

	if t.Products == nil {
		t.Products = make([]primitive.ObjectID, 0)
	}

	return nil
}

// TransactionsPage é a resposta da listagem paginada.
// Total é o tamanho da coleção inteira, sem o filtro de busca.
type TransactionsPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int64         `json:"total"`
}
