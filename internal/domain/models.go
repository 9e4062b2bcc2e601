package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	Status       string    `db:"status"`
	OABNumber    string    `db:"oab_number"`
	PixKey       string    `db:"pix_key"`
	City         string    `db:"city"`
	State        string    `db:"state"`
	CreatedAt    time.Time `db:"created_at"`
}

type Diligence struct {
	ID                 int        `db:"id"`
	Protocol           string     `db:"protocol"`
	Title              string     `db:"title"`
	Description        string     `db:"description"`
	Type               string     `db:"type"`
	Status             string     `db:"status"`
	Priority           string     `db:"priority"`
	Value              float64    `db:"value"`
	CorrespondentValue float64    `db:"correspondent_value"`
	Deadline           *time.Time `db:"deadline"`
	ClientID           int        `db:"client_id"`
	CorrespondentID    *int       `db:"correspondent_id"`
	City               string     `db:"city"`
	State              string     `db:"state"`
	Reminded           bool       `db:"reminded"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

type Payment struct {
	ID          int        `db:"id"`
	DiligenceID int        `db:"diligence_id"`
	Type        string     `db:"type"`
	Amount      float64    `db:"amount"`
	Status      string     `db:"status"`
	PaidDate    *time.Time `db:"paid_date"`
	CreatedAt   time.Time  `db:"created_at"`
}

type PaymentProof struct {
	ID              int       `db:"id"`
	DiligenceID     int       `db:"diligence_id"`
	PixKey          string    `db:"pix_key"`
	ProofImage      string    `db:"proof_image"`
	Amount          float64   `db:"amount"`
	Status          string    `db:"status"`
	RejectionReason string    `db:"rejection_reason"`
	UploadedByID    int       `db:"uploaded_by_id"`
	VerifiedByID    *int      `db:"verified_by_id"`
	CreatedAt       time.Time `db:"created_at"`
}

type StatusHistory struct {
	ID             int       `db:"id"`
	EntityType     string    `db:"entity_type"`
	EntityID       int       `db:"entity_id"`
	PreviousStatus string    `db:"previous_status"`
	NewStatus      string    `db:"new_status"`
	UserID         int       `db:"user_id"`
	Reason         string    `db:"reason"`
	CreatedAt      time.Time `db:"created_at"`
}

type Notification struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Data      []byte    `db:"data"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

type Attachment struct {
	ID           int       `db:"id"`
	DiligenceID  int       `db:"diligence_id"`
	Name         string    `db:"name"`
	URL          string    `db:"url"`
	StorageKey   string    `db:"storage_key"`
	Type         string    `db:"type"`
	Size         int64     `db:"size"`
	UploadedByID int       `db:"uploaded_by_id"`
	CreatedAt    time.Time `db:"created_at"`
}
