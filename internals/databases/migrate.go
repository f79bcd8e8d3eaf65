package database

import (
	"log"

	appointmentModel "muaku_backend/internals/features/appointments/model"
	productModel "muaku_backend/internals/features/catalog/model"
	clientModel "muaku_backend/internals/features/clients/model"
	invoiceModel "muaku_backend/internals/features/invoices/model"
	orderModel "muaku_backend/internals/features/orders/model"
	userModel "muaku_backend/internals/features/users/auth/model"
)

// MigrateAll menjalankan AutoMigrate untuk semua tabel aplikasi.
// Dipanggil saat RUN_MIGRATIONS=true (instalasi baru / setelah update).
func MigrateAll() {
	log.Println("🛠️ Menjalankan migrasi skema...")
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&clientModel.ClientModel{},
		&productModel.ProductModel{},
		&orderModel.OrderModel{},
		&orderModel.OrderItemModel{},
		&orderModel.PaymentModel{},
		&invoiceModel.InvoiceModel{},
		&appointmentModel.AppointmentModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}
