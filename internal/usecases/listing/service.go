package listing

import (
	"context"

	"github.com/biter777/countries"
	"github.com/vfg2006/admin-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"github.com/vfg2006/admin-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/admin-dashboard-api/pkg/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lister agrupa as leituras de coleção única do dashboard
type Lister interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListCustomers(ctx context.Context) ([]domain.User, error)
	ListAdmins(ctx context.Context) ([]domain.User, error)
	GetSales(ctx context.Context) (domain.OverallStat, error)
	GetGeography(ctx context.Context) ([]domain.GeographyEntry, error)
}

type Service struct {
	userRepository        repository.UserRepository
	overallStatRepository repository.OverallStatRepository
}

func NewService(
	userRepository repository.UserRepository,
	overallStatRepository repository.OverallStatRepository,
) Lister {
	return &Service{
		userRepository:        userRepository,
		overallStatRepository: overallStatRepository,
	}
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewListingError(ErrUserNotFound, apiErrors.ErrNotFound, "identificador inválido")
	}

	user, err := s.userRepository.FindByID(ctx, objectID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", id).Error("Erro ao buscar usuário")
		return nil, NewListingError(ErrStoreFailure, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if user == nil {
		return nil, NewListingError(ErrUserNotFound, apiErrors.ErrNotFound, "")
	}

	return user, nil
}

// ListCustomers lista os usuários com role user
func (s *Service) ListCustomers(ctx context.Context) ([]domain.User, error) {
	return s.listByRole(ctx, domain.RoleUser)
}

// ListAdmins lista os usuários com role admin
func (s *Service) ListAdmins(ctx context.Context) ([]domain.User, error) {
	return s.listByRole(ctx, domain.RoleAdmin)
}

func (s *Service) listByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	users, err := s.userRepository.ListByRole(ctx, role)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_role", role).Error("Erro ao listar usuários")
		return nil, NewListingError(ErrStoreFailure, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if users == nil {
		users = make([]domain.User, 0)
	}

	return users, nil
}

// GetSales devolve o primeiro OverallStat como está
func (s *Service) GetSales(ctx context.Context) (domain.OverallStat, error) {
	stat, err := s.overallStatRepository.FindFirst(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar overall stats")
		return nil, NewListingError(ErrStoreFailure, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if stat == nil {
		return nil, NewListingError(ErrOverallStatNotFound, apiErrors.ErrNotFound, "")
	}

	return stat, nil
}

// GetGeography conta os usuários por país (ISO3), na ordem em que cada país
// aparece pela primeira vez. Países não reconhecidos são ignorados.
func (s *Service) GetGeography(ctx context.Context) ([]domain.GeographyEntry, error) {
	logger := log.ForContext(ctx)

	users, err := s.userRepository.ListAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar usuários para geografia")
		return nil, NewListingError(ErrStoreFailure, apiErrors.ErrDatabaseOperation, err.Error())
	}

	entries := make([]domain.GeographyEntry, 0)
	positions := make(map[string]int)

	for _, user := range users {
		code := countries.ByName(user.Country)
		if code == countries.Unknown {
			logger.WithField("user_country", user.Country).Debug("País não reconhecido")
			continue
		}

		iso3 := code.Alpha3()
		if i, ok := positions[iso3]; ok {
			entries[i].Value++
			continue
		}

		positions[iso3] = len(entries)
		entries = append(entries, domain.GeographyEntry{ID: iso3, Value: 1})
	}

	return entries, nil
}
