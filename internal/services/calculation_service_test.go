package services

import (
	"math"
	"testing"

	"github.com/hikaru-dev/calc-forest-api/internal/models"
	"github.com/hikaru-dev/calc-forest-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type calcTestEnv struct {
	db      *gorm.DB
	service *CalculationService
	user    *models.User
}

func setupCalcTestEnv(t *testing.T) calcTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Calculation{},
	)
	require.NoError(t, err)

	user := &models.User{
		Username:     "calc-user",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)

	service := NewCalculationService(repository.NewCalculationRepository(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return calcTestEnv{
		db:      db,
		service: service,
		user:    user,
	}
}

func (env calcTestEnv) count(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Model(&models.Calculation{}).Count(&count).Error)
	return count
}

func TestCalculationService_CreateRoot(t *testing.T) {
	env := setupCalcTestEnv(t)

	calc, err := env.service.CreateRoot(env.user.ID, 10)
	require.NoError(t, err)

	require.Equal(t, float64(10), calc.Number)
	require.Equal(t, float64(10), calc.Result)
	require.Nil(t, calc.Operation)
	require.Nil(t, calc.ParentID)
	require.Equal(t, env.user.ID, calc.UserID)
	require.NotZero(t, calc.ID)
}

func TestCalculationService_CreateRoot_NonFinite(t *testing.T) {
	env := setupCalcTestEnv(t)

	for _, number := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := env.service.CreateRoot(env.user.ID, number)
		require.ErrorIs(t, err, ErrInvalidNumber)
	}

	require.Zero(t, env.count(t))
}

func TestCalculationService_CreateChild_Derivation(t *testing.T) {
	env := setupCalcTestEnv(t)

	root, err := env.service.CreateRoot(env.user.ID, 10)
	require.NoError(t, err)

	tests := []struct {
		op     models.Operation
		number float64
		want   float64
	}{
		{models.OperationAdd, 3, 13},
		{models.OperationSub, 4, 6},
		{models.OperationMul, 3, 30},
		{models.OperationDiv, 4, 2.5},
	}

	for _, tt := range tests {
		child, err := env.service.CreateChild(env.user.ID, root.ID, tt.op, tt.number)
		require.NoError(t, err)
		require.Equal(t, tt.want, child.Result)
		require.Equal(t, tt.number, child.Number)
		require.NotNil(t, child.Operation)
		require.Equal(t, tt.op, *child.Operation)
		require.NotNil(t, child.ParentID)
		require.Equal(t, root.ID, *child.ParentID)
	}
}

func TestCalculationService_CreateChild_ChainsFromParentResult(t *testing.T) {
	env := setupCalcTestEnv(t)

	root, err := env.service.CreateRoot(env.user.ID, 10)
	require.NoError(t, err)

	child, err := env.service.CreateChild(env.user.ID, root.ID, models.OperationMul, 3)
	require.NoError(t, err)
	require.Equal(t, float64(30), child.Result)

	grandchild, err := env.service.CreateChild(env.user.ID, child.ID, models.OperationSub, 5)
	require.NoError(t, err)
	require.Equal(t, float64(25), grandchild.Result)
}

func TestCalculationService_CreateChild_DivisionByZero(t *testing.T) {
	env := setupCalcTestEnv(t)

	root, err := env.service.CreateRoot(env.user.ID, 10)
	require.NoError(t, err)
	before := env.count(t)

	_, err = env.service.CreateChild(env.user.ID, root.ID, models.OperationDiv, 0)
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.Equal(t, before, env.count(t))
}

func TestCalculationService_CreateChild_InvalidOperation(t *testing.T) {
	env := setupCalcTestEnv(t)

	root, err := env.service.CreateRoot(env.user.ID, 10)
	require.NoError(t, err)
	before := env.count(t)

	_, err = env.service.CreateChild(env.user.ID, root.ID, "%", 1)
	require.ErrorIs(t, err, ErrInvalidOperation)
	require.Equal(t, before, env.count(t))
}

func TestCalculationService_CreateChild_ParentNotFound(t *testing.T) {
	env := setupCalcTestEnv(t)
	before := env.count(t)

	_, err := env.service.CreateChild(env.user.ID, 9999, models.OperationAdd, 1)
	require.ErrorIs(t, err, ErrParentNotFound)
	require.Equal(t, before, env.count(t))
}

func TestCalculationService_CreateChild_NonFinite(t *testing.T) {
	env := setupCalcTestEnv(t)

	root, err := env.service.CreateRoot(env.user.ID, 10)
	require.NoError(t, err)
	before := env.count(t)

	_, err = env.service.CreateChild(env.user.ID, root.ID, models.OperationAdd, math.NaN())
	require.ErrorIs(t, err, ErrInvalidNumber)
	require.Equal(t, before, env.count(t))
}

func TestCalculationService_ListAll(t *testing.T) {
	env := setupCalcTestEnv(t)

	root, err := env.service.CreateRoot(env.user.ID, 1)
	require.NoError(t, err)
	child, err := env.service.CreateChild(env.user.ID, root.ID, models.OperationAdd, 2)
	require.NoError(t, err)

	first, err := env.service.ListAll()
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, root.ID, first[0].ID)
	require.Equal(t, child.ID, first[1].ID)

	// No intervening writes: listing again returns the identical sequence
	second, err := env.service.ListAll()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCalculationService_ListChildren_ForestShape(t *testing.T) {
	env := setupCalcTestEnv(t)

	root, err := env.service.CreateRoot(env.user.ID, 10)
	require.NoError(t, err)
	c1, err := env.service.CreateChild(env.user.ID, root.ID, models.OperationAdd, 1)
	require.NoError(t, err)
	c2, err := env.service.CreateChild(env.user.ID, root.ID, models.OperationSub, 2)
	require.NoError(t, err)

	children, err := env.service.ListChildren(&root.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	require.Equal(t, c1.ID, children[0].ID)
	require.Equal(t, c2.ID, children[1].ID)

	for _, leaf := range []*models.Calculation{c1, c2} {
		grandchildren, err := env.service.ListChildren(&leaf.ID)
		require.NoError(t, err)
		require.Empty(t, grandchildren)
	}

	roots, err := env.service.ListChildren(nil)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Equal(t, root.ID, roots[0].ID)
}
