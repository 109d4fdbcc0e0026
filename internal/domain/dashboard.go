package domain

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TransactionFieldCreatedAt = "createdAt"

	// Quantidade de transações recentes no painel
	DashboardRecentTransactions int64 = 50
)

// DashboardStats é a resposta do painel geral. Os campos vindos do
// OverallStat são repassados como estão; thisMonthStats e todayStats somem
// da resposta quando o mês ou o dia não existem no documento.
type DashboardStats struct {
	TotalCustomers       any           `json:"totalCustomers"`
	YearlyTotalSoldUnits any           `json:"yearlyTotalSoldUnits"`
	YearlySalesTotal     any           `json:"yearlySalesTotal"`
	MonthlyData          any           `json:"monthlyData"`
	SalesByCategory      any           `json:"salesByCategory"`
	ThisMonthStats       any           `json:"thisMonthStats,omitempty"`
	TodayStats           any           `json:"todayStats,omitempty"`
	Transactions         []Transaction `json:"transactions"`
}

// GeographyEntry é a contagem de usuários por país no formato ISO3
type GeographyEntry struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

// FindEntry procura no array field o primeiro documento cujo key é igual a
// value. Retorna nil quando não encontra.
func (s OverallStat) FindEntry(field, key, value string) any {
	var entries []any
	switch list := s[field].(type) {
	case primitive.A:
		entries = list
	case []any:
		entries = list
	default:
		return nil
	}

	for _, entry := range entries {
		if current, ok := entryValue(entry, key).(string); ok && current == value {
			return entry
		}
	}

	return nil
}

func entryValue(entry any, key string) any {
	switch doc := entry.(type) {
	case bson.M:
		return doc[key]
	case map[string]any:
		return doc[key]
	case bson.D:
		for _, elem := range doc {
			if elem.Key == key {
				return elem.Value
			}
		}
	}
	return nil
}
