package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dineease/internal/adapters/out/inmem"
	"dineease/internal/adapters/out/postgres/orderrepo"
	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
	"dineease/internal/core/domain/model/order"
	"dineease/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
	menuItems []*menu.MenuItem
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db)

	suite.menuItems, err = inmem.DefaultMenu()
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newOrder(placedAt time.Time) *order.Order {
	cart := order.NewCart()

	pizza := suite.menuItems[4]
	err := cart.AddItem(pizza, menu.Selection{"Size": `Medium (14")`}, 2)
	suite.Require().NoError(err)

	salmon := suite.menuItems[0]
	err = cart.AddItem(salmon, nil, 1)
	suite.Require().NoError(err)

	name := "John Smith"
	street := "123 Main St"
	city := "Springfield"
	state := "IL"
	zip := "62704"
	phone := "555-123-4567"
	cart.UpdateAddress(order.AddressPatch{
		Name: &name, Street: &street, City: &city, State: &state, ZipCode: &zip, Phone: &phone,
	})

	aggregate, err := order.NewOrder(kernel.NewUUID(), cart, placedAt, placedAt.Add(40*time.Minute))
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	placed := suite.newOrder(time.Now().UTC().Truncate(time.Microsecond))

	err := suite.repo.Add(ctx, placed)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, placed.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(placed))
	suite.Equal(placed.Status(), restored.Status())
	suite.Equal(placed.OrderType(), restored.OrderType())
	suite.Equal(placed.Receipt().Total(), restored.Receipt().Total())
	suite.Equal(placed.Address(), restored.Address())

	restoredLines := restored.Lines()
	placedLines := placed.Lines()
	suite.Require().Len(restoredLines, len(placedLines))
	for i := range placedLines {
		suite.Equal(placedLines[i].Key(), restoredLines[i].Key())
		suite.Equal(placedLines[i].Quantity(), restoredLines[i].Quantity())
		suite.Equal(placedLines[i].UnitPrice(), restoredLines[i].UnitPrice())
	}
}

func (suite *GormOrderRepositoryTestSuite) TestGet_Unknown() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	placed := suite.newOrder(time.Now().UTC())

	err := suite.repo.Add(ctx, placed)
	suite.Require().NoError(err)

	err = placed.ChangeStatus(order.OnTheWay)
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, placed)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OnTheWay, restored.Status())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_Unknown() {
	err := suite.repo.Update(context.Background(), suite.newOrder(time.Now().UTC()))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestGetAllActive_FiltersAndSortsNewestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	oldest := suite.newOrder(base.Add(-2 * time.Hour))
	delivered := suite.newOrder(base.Add(-1 * time.Hour))
	newest := suite.newOrder(base)

	suite.Require().NoError(delivered.ChangeStatus(order.Delivered))

	for _, aggregate := range []*order.Order{oldest, delivered, newest} {
		suite.Require().NoError(suite.repo.Add(ctx, aggregate))
	}

	active, err := suite.repo.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	suite.True(active[0].IsEqual(newest))
	suite.True(active[1].IsEqual(oldest))

	all, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
