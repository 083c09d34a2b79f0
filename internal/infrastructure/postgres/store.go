package postgres

import (
	"context"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

// Store is the gorm-backed implementation of domain.Store. One instance
// wraps the shared *gorm.DB; InTx hands the engines a Store bound to a
// single transaction.
type Store struct {
	db       *gorm.DB
	users    *repository.DefaultUserRepository
	requests *repository.DefaultRequestRepository
	offers   *repository.DefaultOfferRepository
	orders   *repository.DefaultOrderRepository
	products *repository.DefaultProductRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		users:    repository.NewDefaultUserRepository(db),
		requests: repository.NewDefaultRequestRepository(db),
		offers:   repository.NewDefaultOfferRepository(db),
		orders:   repository.NewDefaultOrderRepository(db),
		products: repository.NewDefaultProductRepository(db),
	}
}

func (s *Store) Users() domain.UserRepository       { return s.users }
func (s *Store) Requests() domain.RequestRepository { return s.requests }
func (s *Store) Offers() domain.OfferRepository     { return s.offers }
func (s *Store) Orders() domain.OrderRepository     { return s.orders }
func (s *Store) Products() domain.ProductRepository { return s.products }

func (s *Store) InTx(ctx context.Context, fn func(tx domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
