package domain

// Entity types recorded in status_history rows.
const (
	EntityDiligence    = "diligence"
	EntityPayment      = "payment"
	EntityPaymentProof = "payment_proof"
	EntityUser         = "user"
)
