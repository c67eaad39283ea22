package domain

import "time"

type Favorite struct {
	UserID     int64 `json:"user_id" db:"user_id"`
	PropertyID int64 `json:"property_id" db:"property_id"`
}

type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"sender_id" db:"sender_id"`
	ReceiverID int64     `json:"receiver_id" db:"receiver_id"`
	PropertyID int64     `json:"property_id" db:"property_id"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// MessageView is a message enriched for the inbox.
type MessageView struct {
	Message
	SenderName    *string `json:"sender_name" db:"sender_name"`
	ReceiverName  *string `json:"receiver_name" db:"receiver_name"`
	PropertyTitle *string `json:"property_title" db:"property_title"`
}

type SendMessageInput struct {
	ReceiverID int64  `json:"receiver_id"`
	PropertyID int64  `json:"property_id"`
	Content    string `json:"content"`
}

type ReplyInput struct {
	Content string `json:"content"`
}

// Counterpart returns who a reply from actorID is addressed to.
func (m *Message) Counterpart(actorID int64) int64 {
	if m.SenderID == actorID {
		return m.ReceiverID
	}
	return m.SenderID
}

func (m *Message) IsParticipant(actorID int64) bool {
	return m.SenderID == actorID || m.ReceiverID == actorID
}

type PaymentType string

const (
	PaymentPromotion    PaymentType = "promotion"
	PaymentSubscription PaymentType = "subscription"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

const DefaultPaymentMethod = "card"

type Payment struct {
	ID         int64         `json:"id" db:"id"`
	UserID     int64         `json:"user_id" db:"user_id"`
	PropertyID *int64        `json:"property_id" db:"property_id"`
	Amount     float64       `json:"amount" db:"amount"`
	Type       PaymentType   `json:"type" db:"type"`
	Status     PaymentStatus `json:"status" db:"status"`
	Method     string        `json:"method" db:"method"`
	Plan       string        `json:"plan" db:"plan"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
}

// PaymentView is the admin ledger row.
type PaymentView struct {
	Payment
	UserName      *string `json:"user_name" db:"user_name"`
	PropertyTitle *string `json:"property_title" db:"property_title"`
}

type PromoteInput struct {
	Method string `json:"method"`
}

type SubscribeInput struct {
	Plan   string `json:"plan"`
	Method string `json:"method"`
}

type Report struct {
	ID         int64     `json:"id" db:"id"`
	PropertyID int64     `json:"property_id" db:"property_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Reason     string    `json:"reason" db:"reason"`
	Resolved   bool      `json:"resolved" db:"resolved"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type ReportView struct {
	Report
	PropertyTitle *string `json:"property_title" db:"property_title"`
	ReporterName  *string `json:"reporter_name" db:"reporter_name"`
}

type CreateReportInput struct {
	Reason string `json:"reason"`
}

type Announcement struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateAnnouncementInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Stats are the admin dashboard counters.
type Stats struct {
	TotalProperties int64   `json:"totalProperties"`
	PendingApproval int64   `json:"pendingApproval"`
	TotalUsers      int64   `json:"totalUsers"`
	TotalSales      float64 `json:"totalSales"`
	ReportedCount   int64   `json:"reportedCount"`
}
