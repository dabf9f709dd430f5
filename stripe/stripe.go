package stripe

import "fmt"

// PaymentSession holds the handshake values the capture SDK consumes.
type PaymentSession struct {
	ClientSecret    string
	EphemeralKey    string
	CustomerID      string
	PublishableKey  string
	PaymentIntentID string
}

var publishableKey = "pk_test_matchify"

func CreatePaymentSession(missionID string, userID string, amount float64) (PaymentSession, error) {
	var s PaymentSession
	s.PaymentIntentID = "pi_" + missionID
	s.ClientSecret = fmt.Sprintf("pi_%s_secret_%s", missionID, userID)
	s.EphemeralKey = "ek_" + userID
	s.CustomerID = "cus_" + userID
	s.PublishableKey = publishableKey
	var err error
	return s, err
}
