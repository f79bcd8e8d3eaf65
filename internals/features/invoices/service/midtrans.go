package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	SnapClient    snap.Client
	midtransReady bool
)

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
// Tidak dipanggil = fitur payment link mati, sisanya jalan normal.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
	midtransReady = true
}

func MidtransReady() bool {
	return midtransReady
}

// GenerateSnapToken membuat token Snap untuk menagih sisa tagihan order.
// Murni jalur keluar: pembayaran tetap dicatat manual lewat ledger.
func GenerateSnapToken(snapOrderID string, grossAmount int64, clientName, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  snapOrderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: clientName,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
