package request

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
	requestdto "github.com/craveo/marketplace-service/internal/usecase/dto/request"
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
// tests run against the same uniqueness backstops as production.
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

func newRequestUC(store domain.Store, advisor domain.MatchAdvisor) *DefaultRequestUsecase {
	return NewDefaultRequestUsecase(store, advisor, nil, metrics.NewMarketplaceMetrics(prometheus.NewRegistry()))
}

func seedUser(t *testing.T, store domain.Store, role domain.UserRole, businessCategory string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:               uuid.New().String(),
		Name:             "test",
		Email:            uuid.New().String() + "@example.com",
		Role:             role,
		Status:           domain.UserActive,
		BusinessCategory: businessCategory,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	if err := store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestCreateRequestGuards(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	uc := newRequestUC(store, nil)

	customer := seedUser(t, store, domain.RoleCustomer, "")
	supplier := seedUser(t, store, domain.RoleSupplier, "bakery")

	created, err := uc.Create(ctx, &requestdto.CreateRequestInput{
		CustomerID: customer.ID, Title: "100 bread rolls", Category: "bakery", Quantity: 100,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.RequestOpen {
		t.Errorf("status = %s, want open", created.Status)
	}

	_, err = uc.Create(ctx, &requestdto.CreateRequestInput{
		CustomerID: supplier.ID, Title: "x", Quantity: 1,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("supplier create error = %v, want ErrForbidden", err)
	}

	_, err = uc.Create(ctx, &requestdto.CreateRequestInput{
		CustomerID: customer.ID, Title: "x", Quantity: 0,
	})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("zero quantity error = %v, want ErrInvalidState", err)
	}

	_, err = uc.Create(ctx, &requestdto.CreateRequestInput{
		CustomerID: uuid.New().String(), Title: "x", Quantity: 1,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown customer error = %v, want ErrNotFound", err)
	}
}

func TestUpdateRequestOnlyWhileOpen(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	uc := newRequestUC(store, nil)

	customer := seedUser(t, store, domain.RoleCustomer, "")
	stranger := seedUser(t, store, domain.RoleCustomer, "")

	created, err := uc.Create(ctx, &requestdto.CreateRequestInput{
		CustomerID: customer.ID, Title: "old title", Quantity: 5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTitle := "new title"
	updated, err := uc.Update(ctx, created.ID, customer.ID, &requestdto.UpdateRequestInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "new title" {
		t.Errorf("title = %q, want %q", updated.Title, "new title")
	}

	_, err = uc.Update(ctx, created.ID, stranger.ID, &requestdto.UpdateRequestInput{Title: &newTitle})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger update error = %v, want ErrForbidden", err)
	}

	if _, err := uc.Cancel(ctx, created.ID, customer.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	_, err = uc.Update(ctx, created.ID, customer.ID, &requestdto.UpdateRequestInput{Title: &newTitle})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("update after cancel error = %v, want ErrInvalidState", err)
	}
}

func TestDeleteCascadesPendingOffers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	uc := newRequestUC(store, nil)

	customer := seedUser(t, store, domain.RoleCustomer, "")
	supplier := seedUser(t, store, domain.RoleSupplier, "bakery")

	created, err := uc.Create(ctx, &requestdto.CreateRequestInput{
		CustomerID: customer.ID, Title: "100 bread rolls", Category: "bakery", Quantity: 100,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pendingOffer := &domain.Offer{
		ID:            uuid.New().String(),
		RequestID:     created.ID,
		SupplierID:    supplier.ID,
		ProposedPrice: 90,
		Status:        domain.OfferPending,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	if err := store.Offers().Create(ctx, pendingOffer); err != nil {
		t.Fatalf("seed offer: %v", err)
	}

	if err := uc.Delete(ctx, created.ID, customer.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Requests().GetByID(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("request lookup error = %v, want ErrNotFound", err)
	}
	if _, err := store.Offers().GetByID(ctx, pendingOffer.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("offer lookup error = %v, want ErrNotFound", err)
	}
}

func TestListScopedByRole(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	uc := newRequestUC(store, nil)

	customerA := seedUser(t, store, domain.RoleCustomer, "")
	customerB := seedUser(t, store, domain.RoleCustomer, "")
	supplier := seedUser(t, store, domain.RoleSupplier, "bakery")
	admin := seedUser(t, store, domain.RoleAdmin, "")

	for _, owner := range []*domain.User{customerA, customerB} {
		if _, err := uc.Create(ctx, &requestdto.CreateRequestInput{
			CustomerID: owner.ID, Title: "rolls", Category: "bakery", Quantity: 10,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	cancelledRequest, err := uc.Create(ctx, &requestdto.CreateRequestInput{
		CustomerID: customerA.ID, Title: "cancelled", Quantity: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.Cancel(ctx, cancelledRequest.ID, customerA.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	ownRequests, err := uc.List(ctx, &requestdto.ListRequestsInput{CallerID: customerA.ID})
	if err != nil {
		t.Fatalf("customer list: %v", err)
	}
	if len(ownRequests) != 1 {
		t.Errorf("customer sees %d requests, want 1 (own, live)", len(ownRequests))
	}

	board, err := uc.List(ctx, &requestdto.ListRequestsInput{CallerID: supplier.ID})
	if err != nil {
		t.Fatalf("supplier list: %v", err)
	}
	if len(board) != 2 {
		t.Errorf("supplier sees %d requests, want 2 open", len(board))
	}

	everything, err := uc.List(ctx, &requestdto.ListRequestsInput{CallerID: admin.ID})
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(everything) != 3 {
		t.Errorf("admin sees %d requests, want 3", len(everything))
	}
}

// stubAdvisor matches on a category substring and can be forced to fail.
type stubAdvisor struct {
	matchCategory string
	fail          bool
}

func (a *stubAdvisor) IsMatch(ctx context.Context, query domain.MatchQuery) (bool, error) {
	if a.fail {
		return false, errors.New("advisor unavailable")
	}
	return query.SupplierCategory == a.matchCategory, nil
}

func TestMatchingForSupplier(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	customer := seedUser(t, store, domain.RoleCustomer, "")
	supplier := seedUser(t, store, domain.RoleSupplier, "bakery")

	advisor := &stubAdvisor{matchCategory: "bakery"}
	uc := newRequestUC(store, advisor)

	if _, err := uc.Create(ctx, &requestdto.CreateRequestInput{
		CustomerID: customer.ID, Title: "rolls", Category: "bakery", Quantity: 10,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	matched, err := uc.MatchingForSupplier(ctx, supplier.ID)
	if err != nil {
		t.Fatalf("matching: %v", err)
	}
	if len(matched) != 1 {
		t.Errorf("matched = %d, want 1", len(matched))
	}

	// Advisor failures drop items instead of failing the call.
	advisor.fail = true
	matched, err = uc.MatchingForSupplier(ctx, supplier.ID)
	if err != nil {
		t.Fatalf("matching with failing advisor: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("matched = %d, want 0 when advisor fails", len(matched))
	}

	_, err = uc.MatchingForSupplier(ctx, customer.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("customer matching error = %v, want ErrForbidden", err)
	}
}

func TestGetByIDVisibility(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	uc := newRequestUC(store, nil)

	customer := seedUser(t, store, domain.RoleCustomer, "")
	supplier := seedUser(t, store, domain.RoleSupplier, "bakery")
	otherCustomer := seedUser(t, store, domain.RoleCustomer, "")

	created, err := uc.Create(ctx, &requestdto.CreateRequestInput{
		CustomerID: customer.ID, Title: "rolls", Category: "bakery", Quantity: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.GetByID(ctx, created.ID, customer.ID); err != nil {
		t.Errorf("owner get: %v", err)
	}
	if _, err := uc.GetByID(ctx, created.ID, supplier.ID); err != nil {
		t.Errorf("supplier get while open: %v", err)
	}
	if _, err := uc.GetByID(ctx, created.ID, otherCustomer.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("other customer get error = %v, want ErrForbidden", err)
	}

	// Once cancelled, suppliers without an offer lose visibility.
	if _, err := uc.Cancel(ctx, created.ID, customer.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := uc.GetByID(ctx, created.ID, supplier.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("supplier get after cancel error = %v, want ErrForbidden", err)
	}
}

func TestGetByIDVisibilityAfterFulfillment(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	uc := newRequestUC(store, nil)

	customer := seedUser(t, store, domain.RoleCustomer, "")
	winner := seedUser(t, store, domain.RoleSupplier, "bakery")
	loser := seedUser(t, store, domain.RoleSupplier, "bakery")
	bystander := seedUser(t, store, domain.RoleSupplier, "bakery")

	created, err := uc.Create(ctx, &requestdto.CreateRequestInput{
		CustomerID: customer.ID, Title: "rolls", Category: "bakery", Quantity: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC()
	for _, seed := range []struct {
		supplierID string
		status     domain.OfferStatus
	}{
		{winner.ID, domain.OfferAccepted},
		{loser.ID, domain.OfferRejected},
	} {
		if err := store.Offers().Create(ctx, &domain.Offer{
			ID:            uuid.New().String(),
			RequestID:     created.ID,
			SupplierID:    seed.supplierID,
			ProposedPrice: 90,
			Status:        seed.status,
			CreatedAt:     now,
			UpdatedAt:     now,
		}); err != nil {
			t.Fatalf("seed offer: %v", err)
		}
	}
	created.Status = domain.RequestFulfilled
	if err := store.Requests().Update(ctx, created); err != nil {
		t.Fatalf("fulfill request: %v", err)
	}

	// The winning supplier keeps visibility into the request their order
	// came from, and so does a supplier whose offer lost.
	if _, err := uc.GetByID(ctx, created.ID, winner.ID); err != nil {
		t.Errorf("winning supplier get after fulfillment: %v", err)
	}
	if _, err := uc.GetByID(ctx, created.ID, loser.ID); err != nil {
		t.Errorf("losing supplier get after fulfillment: %v", err)
	}
	if _, err := uc.GetByID(ctx, created.ID, bystander.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("bystander get error = %v, want ErrForbidden", err)
	}
}
