package memory

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Seed é o conteúdo do arquivo usado para popular o banco em memória
type Seed struct {
	Users          []domain.User          `json:"users"`
	Transactions   []domain.Transaction   `json:"transactions"`
	AffiliateStats []domain.AffiliateStat `json:"affiliateStats"`
	OverallStats   []domain.OverallStat   `json:"overallStats"`
}

// LoadSeedFile lê um arquivo JSON e insere os documentos no store. Registros
// sem _id recebem um ObjectID novo.
func LoadSeedFile(store *Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao ler arquivo de seed %s", path)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return errors.Wrapf(err, "erro ao interpretar arquivo de seed %s", path)
	}

	return store.Load(seed)
}

// Load insere todas as coleções do seed
func (s *Store) Load(seed Seed) error {
	for i := range seed.Users {
		if seed.Users[i].ID.IsZero() {
			seed.Users[i].ID = primitive.NewObjectID()
		}
		if err := s.Insert(domain.CollectionUsers, seed.Users[i]); err != nil {
			return err
		}
	}

	for i := range seed.Transactions {
		if seed.Transactions[i].ID.IsZero() {
			seed.Transactions[i].ID = primitive.NewObjectID()
		}
		if err := s.Insert(domain.CollectionTransactions, seed.Transactions[i]); err != nil {
			return err
		}
	}

	for i := range seed.AffiliateStats {
		if seed.AffiliateStats[i].ID.IsZero() {
			seed.AffiliateStats[i].ID = primitive.NewObjectID()
		}
		if err := s.Insert(domain.CollectionAffiliateStats, seed.AffiliateStats[i]); err != nil {
			return err
		}
	}

	for _, stat := range seed.OverallStats {
		// entradas null do arquivo não viram documento
		if stat == nil {
			continue
		}
		if _, ok := stat["_id"]; !ok {
			stat["_id"] = primitive.NewObjectID()
		}
		if err := s.Insert(domain.CollectionOverallStats, stat); err != nil {
			return err
		}
	}

	return nil
}
