package offer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/metrics"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
	offerdto "github.com/craveo/marketplace-service/internal/usecase/dto/offer"
	"github.com/craveo/marketplace-service/internal/usecase/order"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *postgres.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.ProductModel{},
		&models.RequestPostModel{},
		&models.OfferModel{},
		&models.OrderModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	applyConstraintIndexes(t, db)
	return postgres.NewStore(db)
}

// applyConstraintIndexes executes the SQL migration on top of AutoMigrate so
// tests run against the same uniqueness backstops as production, including
// the partial unique index on pending offers.
func applyConstraintIndexes(t *testing.T, db *gorm.DB) {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "000001_negotiation_constraints.up.sql"))
	if err != nil {
		t.Fatalf("failed to read constraint migration: %v", err)
	}
	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to apply constraint migration: %v", err)
		}
	}
}

func newEngines(store domain.Store) (*DefaultOfferUsecase, *order.DefaultOrderUsecase) {
	m := metrics.NewMarketplaceMetrics(prometheus.NewRegistry())
	orderUC := order.NewDefaultOrderUsecase(store, nil, m)
	offerUC := NewDefaultOfferUsecase(store, orderUC, nil, m)
	return offerUC, orderUC
}

func seedUser(t *testing.T, store domain.Store, role domain.UserRole) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "test",
		Email:     uuid.New().String() + "@example.com",
		Role:      role,
		Status:    domain.UserActive,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedSupplierWithCatalog(t *testing.T, store domain.Store, category string) *domain.User {
	t.Helper()
	supplier := seedUser(t, store, domain.RoleSupplier)
	product := &domain.Product{
		ID:         uuid.New().String(),
		SupplierID: supplier.ID,
		Name:       "catalog item",
		Price:      10,
		Category:   category,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := store.Products().Create(context.Background(), product); err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return supplier
}

func seedRequest(t *testing.T, store domain.Store, customerID, category string, quantity int, offerPrice *float64) *domain.RequestPost {
	t.Helper()
	request := &domain.RequestPost{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Title:      "100 bread rolls",
		Category:   category,
		Quantity:   quantity,
		OfferPrice: offerPrice,
		Status:     domain.RequestOpen,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := store.Requests().Create(context.Background(), request); err != nil {
		t.Fatalf("failed to seed request: %v", err)
	}
	return request
}

func floatPtr(v float64) *float64 { return &v }

func TestAcceptOfferBakeryScenario(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	bakeryA := seedSupplierWithCatalog(t, store, "bakery")
	bakeryB := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 100, nil)

	offerA, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: bakeryA.ID, ProposedPrice: 95,
	})
	if err != nil {
		t.Fatalf("submit offer A: %v", err)
	}
	offerB, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: bakeryB.ID, ProposedPrice: 105,
	})
	if err != nil {
		t.Fatalf("submit offer B: %v", err)
	}

	acceptedOffer, placedOrder, err := offerUC.Respond(ctx, offerA.ID, customer.ID, offerdto.ActionAccept)
	if err != nil {
		t.Fatalf("accept offer A: %v", err)
	}

	if acceptedOffer.Status != domain.OfferAccepted {
		t.Errorf("offer A status = %s, want accepted", acceptedOffer.Status)
	}
	if placedOrder == nil {
		t.Fatal("no order placed")
	}
	if placedOrder.TotalPrice != 95 {
		t.Errorf("order total = %v, want 95", placedOrder.TotalPrice)
	}
	if placedOrder.Quantity != 100 {
		t.Errorf("order quantity = %d, want 100", placedOrder.Quantity)
	}
	if placedOrder.SupplierID != bakeryA.ID || placedOrder.CustomerID != customer.ID {
		t.Errorf("order parties = (%s, %s), want (%s, %s)",
			placedOrder.CustomerID, placedOrder.SupplierID, customer.ID, bakeryA.ID)
	}

	siblingB, err := store.Offers().GetByID(ctx, offerB.ID)
	if err != nil {
		t.Fatalf("reload offer B: %v", err)
	}
	if siblingB.Status != domain.OfferRejected {
		t.Errorf("offer B status = %s, want rejected", siblingB.Status)
	}

	fulfilled, err := store.Requests().GetByID(ctx, request.ID)
	if err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if fulfilled.Status != domain.RequestFulfilled {
		t.Errorf("request status = %s, want fulfilled", fulfilled.Status)
	}

	// Losing offer cannot be accepted anymore.
	_, _, err = offerUC.Respond(ctx, offerB.ID, customer.ID, offerdto.ActionAccept)
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second accept error = %v, want ErrConflict", err)
	}
}

func TestDirectAcceptAtListedPrice(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "produce")
	rival := seedSupplierWithCatalog(t, store, "produce")
	request := seedRequest(t, store, customer.ID, "produce", 3, floatPtr(30))

	rivalOffer, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: rival.ID, ProposedPrice: 40,
	})
	if err != nil {
		t.Fatalf("submit rival offer: %v", err)
	}

	acceptedOffer, placedOrder, err := offerUC.DirectAccept(ctx, request.ID, supplier.ID)
	if err != nil {
		t.Fatalf("direct accept: %v", err)
	}

	if acceptedOffer.Status != domain.OfferAccepted {
		t.Errorf("offer status = %s, want accepted", acceptedOffer.Status)
	}
	if acceptedOffer.ProposedPrice != 30 {
		t.Errorf("offer price = %v, want 30", acceptedOffer.ProposedPrice)
	}
	if placedOrder.TotalPrice != 30 || placedOrder.Quantity != 3 {
		t.Errorf("order = (%v, %d), want (30, 3)", placedOrder.TotalPrice, placedOrder.Quantity)
	}
	if placedOrder.Number == "" {
		t.Error("order number is empty")
	}

	reloadedRival, _ := store.Offers().GetByID(ctx, rivalOffer.ID)
	if reloadedRival.Status != domain.OfferRejected {
		t.Errorf("rival offer status = %s, want rejected", reloadedRival.Status)
	}

	// A second direct accept must not produce another order.
	_, _, err = offerUC.DirectAccept(ctx, request.ID, rival.ID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second direct accept error = %v, want ErrConflict", err)
	}
}

func TestDirectAcceptWithoutListedPrice(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "produce")
	request := seedRequest(t, store, customer.ID, "produce", 1, nil)

	_, _, err := offerUC.DirectAccept(ctx, request.ID, supplier.ID)
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("error = %v, want ErrInvalidState", err)
	}
}

func TestSubmitDuplicatePendingOffer(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 10, nil)

	if _, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: supplier.ID, ProposedPrice: 20,
	}); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	_, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: supplier.ID, ProposedPrice: 18,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate submit error = %v, want ErrConflict", err)
	}
}

func TestSubmitOnNonOpenRequest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 10, nil)

	request.Status = domain.RequestCancelledByCustomer
	if err := store.Requests().Update(ctx, request); err != nil {
		t.Fatalf("cancel request: %v", err)
	}

	_, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: supplier.ID, ProposedPrice: 20,
	})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("error = %v, want ErrInvalidState", err)
	}

	offers, err := store.Offers().ListByRequest(ctx, request.ID, nil)
	if err != nil {
		t.Fatalf("list offers: %v", err)
	}
	if len(offers) != 0 {
		t.Errorf("offers created = %d, want 0", len(offers))
	}
}

func TestSubmitOnFulfilledRequest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	winner := seedSupplierWithCatalog(t, store, "bakery")
	latecomer := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 10, nil)

	winning, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: winner.ID, ProposedPrice: 20,
	})
	if err != nil {
		t.Fatalf("submit winning offer: %v", err)
	}
	if _, _, err := offerUC.Respond(ctx, winning.ID, customer.ID, offerdto.ActionAccept); err != nil {
		t.Fatalf("accept: %v", err)
	}

	_, err = offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: latecomer.ID, ProposedPrice: 15,
	})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("submit on fulfilled request error = %v, want ErrInvalidState", err)
	}

	pending, err := store.Offers().ListByRequest(ctx, request.ID, []domain.OfferStatus{domain.OfferPending})
	if err != nil {
		t.Fatalf("list pending offers: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending offers on fulfilled request = %d, want 0", len(pending))
	}
}

func TestPendingOfferUniqueIndexBackstop(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 10, nil)

	makeOffer := func(status domain.OfferStatus) *domain.Offer {
		return &domain.Offer{
			ID:            uuid.New().String(),
			RequestID:     request.ID,
			SupplierID:    supplier.ID,
			ProposedPrice: 20,
			Status:        status,
			CreatedAt:     time.Now().UTC(),
			UpdatedAt:     time.Now().UTC(),
		}
	}

	if err := store.Offers().Create(ctx, makeOffer(domain.OfferPending)); err != nil {
		t.Fatalf("first pending offer: %v", err)
	}
	// Straight through the repository, below the usecase precondition
	// checks: the partial unique index has to reject the second row.
	err := store.Offers().Create(ctx, makeOffer(domain.OfferPending))
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second pending offer error = %v, want ErrConflict", err)
	}
	// The index only covers pending rows, settled ones may accumulate.
	if err := store.Offers().Create(ctx, makeOffer(domain.OfferRejected)); err != nil {
		t.Errorf("rejected offer alongside pending: %v", err)
	}
}

func TestRejectOnCancelledRequest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 10, nil)

	submitted, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: supplier.ID, ProposedPrice: 20,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	request.Status = domain.RequestCancelledByCustomer
	if err := store.Requests().Update(ctx, request); err != nil {
		t.Fatalf("cancel request: %v", err)
	}

	// Once the request is terminal, every response is refused, reject
	// included: the negotiation is over.
	_, _, err = offerUC.Respond(ctx, submitted.ID, customer.ID, offerdto.ActionReject)
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("reject on cancelled request error = %v, want ErrConflict", err)
	}
}

func TestSubmitOutsideCatalogCategory(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "electronics")
	request := seedRequest(t, store, customer.ID, "bakery", 10, nil)

	_, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: supplier.ID, ProposedPrice: 20,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestRespondByNonOwner(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	stranger := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 10, nil)

	submitted, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: supplier.ID, ProposedPrice: 20,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	_, _, err = offerUC.Respond(ctx, submitted.ID, stranger.ID, offerdto.ActionAccept)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestCounterThenDirectAccept(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 10, floatPtr(50))

	submitted, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: supplier.ID, ProposedPrice: 70,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	countered, _, err := offerUC.Respond(ctx, submitted.ID, customer.ID, offerdto.ActionCounter)
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	if countered.Status != domain.OfferCountered {
		t.Errorf("offer status = %s, want countered", countered.Status)
	}
	reloadedRequest, _ := store.Requests().GetByID(ctx, request.ID)
	if reloadedRequest.Status != domain.RequestCounterOffered {
		t.Errorf("request status = %s, want counter_offered", reloadedRequest.Status)
	}

	// The supplier gives in and takes the listed price instead.
	_, placedOrder, err := offerUC.DirectAccept(ctx, request.ID, supplier.ID)
	if err != nil {
		t.Fatalf("direct accept after counter: %v", err)
	}
	if placedOrder.TotalPrice != 50 {
		t.Errorf("order total = %v, want 50", placedOrder.TotalPrice)
	}

	reloadedOffer, _ := store.Offers().GetByID(ctx, submitted.ID)
	if reloadedOffer.Status != domain.OfferRejected {
		t.Errorf("countered offer status = %s, want rejected", reloadedOffer.Status)
	}
}

func TestCancelPendingOffer(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 10, nil)

	submitted, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: supplier.ID, ProposedPrice: 20,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	cancelled, err := offerUC.Cancel(ctx, submitted.ID, supplier.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != domain.OfferCancelledBySupplier {
		t.Errorf("status = %s, want cancelled_by_supplier", cancelled.Status)
	}

	_, _, err = offerUC.Respond(ctx, submitted.ID, customer.ID, offerdto.ActionAccept)
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("accept cancelled offer error = %v, want ErrInvalidState", err)
	}
}

func TestUpdateSettledOffer(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 10, nil)

	submitted, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: supplier.ID, ProposedPrice: 20,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, _, err := offerUC.Respond(ctx, submitted.ID, customer.ID, offerdto.ActionReject); err != nil {
		t.Fatalf("reject: %v", err)
	}

	// The rejection already settled the offer, an edit must not revive it.
	_, err = offerUC.Update(ctx, submitted.ID, supplier.ID, &offerdto.UpdateOfferInput{
		ProposedPrice: floatPtr(15),
	})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("update rejected offer error = %v, want ErrInvalidState", err)
	}

	reloaded, _ := store.Offers().GetByID(ctx, submitted.ID)
	if reloaded.Status != domain.OfferRejected {
		t.Errorf("status = %s, want rejected", reloaded.Status)
	}
	if reloaded.ProposedPrice != 20 {
		t.Errorf("price = %v, want 20 untouched", reloaded.ProposedPrice)
	}
}

func TestExpireStaleOffers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	offerUC, _ := newEngines(store)

	customer := seedUser(t, store, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, store, "bakery")
	request := seedRequest(t, store, customer.ID, "bakery", 10, nil)

	stale := &domain.Offer{
		ID:            uuid.New().String(),
		RequestID:     request.ID,
		SupplierID:    supplier.ID,
		ProposedPrice: 20,
		Status:        domain.OfferPending,
		CreatedAt:     time.Now().UTC().Add(-48 * time.Hour),
		UpdatedAt:     time.Now().UTC().Add(-48 * time.Hour),
	}
	if err := store.Offers().Create(ctx, stale); err != nil {
		t.Fatalf("seed stale offer: %v", err)
	}

	expired, err := offerUC.ExpireStale(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if expired != 1 {
		t.Errorf("expired = %d, want 1", expired)
	}

	reloaded, _ := store.Offers().GetByID(ctx, stale.ID)
	if reloaded.Status != domain.OfferExpired {
		t.Errorf("status = %s, want expired", reloaded.Status)
	}
}

// faultyStore injects a failure into order creation so the acceptance
// transaction has to roll back.
type faultyStore struct {
	domain.Store
}

func (s *faultyStore) Orders() domain.OrderRepository {
	return &faultyOrderRepo{s.Store.Orders()}
}

func (s *faultyStore) InTx(ctx context.Context, fn func(tx domain.Store) error) error {
	return s.Store.InTx(ctx, func(tx domain.Store) error {
		return fn(&faultyStore{tx})
	})
}

type faultyOrderRepo struct {
	domain.OrderRepository
}

func (r *faultyOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	return errors.New("injected order write failure")
}

func TestAcceptRollsBackOnOrderFailure(t *testing.T) {
	ctx := context.Background()
	realStore := newTestStore(t)
	store := &faultyStore{realStore}

	m := metrics.NewMarketplaceMetrics(prometheus.NewRegistry())
	orderUC := order.NewDefaultOrderUsecase(store, nil, m)
	offerUC := NewDefaultOfferUsecase(store, orderUC, nil, m)

	customer := seedUser(t, realStore, domain.RoleCustomer)
	supplier := seedSupplierWithCatalog(t, realStore, "bakery")
	request := seedRequest(t, realStore, customer.ID, "bakery", 10, nil)

	submitted, err := offerUC.Submit(ctx, &offerdto.SubmitOfferInput{
		RequestID: request.ID, SupplierID: supplier.ID, ProposedPrice: 20,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	_, _, err = offerUC.Respond(ctx, submitted.ID, customer.ID, offerdto.ActionAccept)
	if err == nil {
		t.Fatal("accept succeeded despite injected order failure")
	}

	// Nothing from the transaction may have stuck.
	reloadedOffer, _ := realStore.Offers().GetByID(ctx, submitted.ID)
	if reloadedOffer.Status != domain.OfferPending {
		t.Errorf("offer status = %s, want pending after rollback", reloadedOffer.Status)
	}
	reloadedRequest, _ := realStore.Requests().GetByID(ctx, request.ID)
	if reloadedRequest.Status != domain.RequestOpen {
		t.Errorf("request status = %s, want open after rollback", reloadedRequest.Status)
	}
	exists, _ := realStore.Orders().ExistsForRequest(ctx, request.ID)
	if exists {
		t.Error("order exists after rollback")
	}
}
