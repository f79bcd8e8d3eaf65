package service

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"muaku_backend/internals/features/orders/dto"
	"muaku_backend/internals/features/orders/model"
)

func newOrderTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.PaymentModel{},
	))
	return db
}

// order satu item dengan harga = total yang diinginkan
func createTestOrder(t *testing.T, db *gorm.DB, total int64) *model.OrderModel {
	t.Helper()
	order, err := CreateOrder(db, dto.CreateOrderRequest{
		ClientID: uuid.New(),
		Items: []dto.OrderItemInput{
			{Name: "Paket Rias Akad", Quantity: 1, Price: total},
		},
	})
	require.NoError(t, err)
	return order
}

func payment(amount int64) dto.AddPaymentRequest {
	return dto.AddPaymentRequest{Amount: amount, PaymentMethod: "transfer"}
}

func requireFiberStatus(t *testing.T, err error, status int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, status, fe.Code)
}

func TestAddPaymentSequence(t *testing.T) {
	db := newOrderTestDB(t)
	order := createTestOrder(t, db, 10_000_000)

	p1, o1, err := AddPayment(db, order.ID, payment(4_000_000))
	require.NoError(t, err)
	assert.Equal(t, 1, p1.PaymentNumber)
	assert.Equal(t, int64(4_000_000), o1.PaidAmount)
	assert.Equal(t, int64(6_000_000), o1.RemainingAmount)
	assert.Equal(t, model.PaymentStatusBelumLunas, o1.PaymentStatus)

	p2, o2, err := AddPayment(db, order.ID, payment(6_000_000))
	require.NoError(t, err)
	assert.Equal(t, 2, p2.PaymentNumber)
	assert.Equal(t, int64(10_000_000), o2.PaidAmount)
	assert.Equal(t, int64(0), o2.RemainingAmount)
	assert.Equal(t, model.PaymentStatusLunas, o2.PaymentStatus)
}

func TestAddPaymentOverpayRejected(t *testing.T) {
	db := newOrderTestDB(t)
	order := createTestOrder(t, db, 1_000_000)

	_, _, err := AddPayment(db, order.ID, payment(600_000))
	require.NoError(t, err)

	_, _, err = AddPayment(db, order.ID, payment(500_000))
	requireFiberStatus(t, err, fiber.StatusBadRequest)

	// penolakan tidak boleh mengubah apa pun
	got, err := GetOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(600_000), got.PaidAmount)
	assert.Equal(t, int64(400_000), got.RemainingAmount)
	assert.Equal(t, model.PaymentStatusBelumLunas, got.PaymentStatus)
	assert.Len(t, got.Payments, 1)
}

func TestAddPaymentExactRemainingAccepted(t *testing.T) {
	db := newOrderTestDB(t)
	order := createTestOrder(t, db, 1_000_000)

	_, o, err := AddPayment(db, order.ID, payment(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, int64(0), o.RemainingAmount)
	assert.Equal(t, model.PaymentStatusLunas, o.PaymentStatus)
}

func TestAddPaymentNonPositiveRejected(t *testing.T) {
	db := newOrderTestDB(t)
	order := createTestOrder(t, db, 1_000_000)

	_, _, err := AddPayment(db, order.ID, payment(0))
	requireFiberStatus(t, err, fiber.StatusBadRequest)

	_, _, err = AddPayment(db, order.ID, payment(-100))
	requireFiberStatus(t, err, fiber.StatusBadRequest)
}

func TestAddPaymentOrderNotFound(t *testing.T) {
	db := newOrderTestDB(t)

	_, _, err := AddPayment(db, uuid.New(), payment(100_000))
	requireFiberStatus(t, err, fiber.StatusNotFound)
}

func TestListPaymentsOrdered(t *testing.T) {
	db := newOrderTestDB(t)
	order := createTestOrder(t, db, 3_000_000)

	for i := 0; i < 3; i++ {
		_, _, err := AddPayment(db, order.ID, payment(1_000_000))
		require.NoError(t, err)
	}

	payments, err := ListPayments(db, order.ID)
	require.NoError(t, err)
	require.Len(t, payments, 3)
	for i, p := range payments {
		assert.Equal(t, i+1, p.PaymentNumber)
	}
}

func TestCreateOrderComputesAggregates(t *testing.T) {
	db := newOrderTestDB(t)

	order, err := CreateOrder(db, dto.CreateOrderRequest{
		ClientID: uuid.New(),
		Items: []dto.OrderItemInput{
			{Name: "Rias Akad", Quantity: 1, Price: 3_500_000},
			{Name: "Rias Resepsi", Quantity: 1, Price: 4_000_000},
			{Name: "Rias Keluarga", Quantity: 5, Price: 500_000},
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{4}-\d{3}$`), order.OrderNumber)
	assert.Equal(t, int64(10_000_000), order.TotalAmount)
	assert.Equal(t, int64(0), order.PaidAmount)
	assert.Equal(t, int64(10_000_000), order.RemainingAmount)
	assert.Equal(t, model.PaymentStatusBelumLunas, order.PaymentStatus)
	assert.Len(t, order.Items, 3)
}

func TestCreateOrderWithInitialPayment(t *testing.T) {
	db := newOrderTestDB(t)

	dp := payment(2_000_000)
	order, err := CreateOrder(db, dto.CreateOrderRequest{
		ClientID: uuid.New(),
		Items: []dto.OrderItemInput{
			{Name: "Paket Rias Lengkap", Quantity: 1, Price: 8_000_000},
		},
		InitialPayment: &dp,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2_000_000), order.PaidAmount)
	assert.Equal(t, int64(6_000_000), order.RemainingAmount)
	require.Len(t, order.Payments, 1)
	assert.Equal(t, 1, order.Payments[0].PaymentNumber)
}

func TestOrderNumbersUnique(t *testing.T) {
	db := newOrderTestDB(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		order := createTestOrder(t, db, 1_000_000)
		assert.False(t, seen[order.OrderNumber], "nomor order duplikat: %s", order.OrderNumber)
		seen[order.OrderNumber] = true
	}
}

func TestUpdateOrderItemsRecomputesAggregates(t *testing.T) {
	db := newOrderTestDB(t)
	order := createTestOrder(t, db, 5_000_000)

	_, _, err := AddPayment(db, order.ID, payment(3_000_000))
	require.NoError(t, err)

	// total turun sampai di bawah yang sudah dibayar → otomatis Lunas
	updated, err := UpdateOrderItems(db, order.ID, dto.UpdateOrderItemsRequest{
		Items: []dto.OrderItemInput{
			{Name: "Rias Akad Saja", Quantity: 1, Price: 2_500_000},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2_500_000), updated.TotalAmount)
	assert.Equal(t, int64(3_000_000), updated.PaidAmount)
	assert.Equal(t, int64(-500_000), updated.RemainingAmount)
	assert.Equal(t, model.PaymentStatusLunas, updated.PaymentStatus)
	assert.Len(t, updated.Items, 1)
}

func TestDeleteOrderWithPaymentsRejected(t *testing.T) {
	db := newOrderTestDB(t)
	order := createTestOrder(t, db, 1_000_000)

	_, _, err := AddPayment(db, order.ID, payment(500_000))
	require.NoError(t, err)

	err = DeleteOrder(db, order.ID)
	requireFiberStatus(t, err, fiber.StatusBadRequest)

	_, err = GetOrder(db, order.ID)
	assert.NoError(t, err)
}

func TestDeleteOrderWithoutPayments(t *testing.T) {
	db := newOrderTestDB(t)
	order := createTestOrder(t, db, 1_000_000)

	require.NoError(t, DeleteOrder(db, order.ID))

	_, err := GetOrder(db, order.ID)
	requireFiberStatus(t, err, fiber.StatusNotFound)

	var itemCount int64
	require.NoError(t, db.Model(&model.OrderItemModel{}).
		Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Equal(t, int64(0), itemCount)
}

func TestCreateOrderNumberClashSurfacesConflict(t *testing.T) {
	db := newOrderTestDB(t)
	first := createTestOrder(t, db, 1_000_000)
	createTestOrder(t, db, 1_000_000) // dapat nomor ...-002

	// hapus order pertama: count turun, nomor count+1 berikutnya
	// menabrak 002 yang masih ada
	require.NoError(t, DeleteOrder(db, first.ID))

	_, err := CreateOrder(db, dto.CreateOrderRequest{
		ClientID: uuid.New(),
		Items: []dto.OrderItemInput{
			{Name: "Paket Rias Akad", Quantity: 1, Price: 1_000_000},
		},
	})
	requireFiberStatus(t, err, fiber.StatusConflict)

	// retry berjalan lewat savepoint, transaksinya bersih saat gagal
	var count int64
	require.NoError(t, db.Model(&model.OrderModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteOrderNotFound(t *testing.T) {
	db := newOrderTestDB(t)
	err := DeleteOrder(db, uuid.New())
	requireFiberStatus(t, err, fiber.StatusNotFound)
}
