package models

import "time"

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanActive   LoanStatus = "ACTIVE"
	LoanReturned LoanStatus = "RETURNED"
)

// ProgressLog is an immutable reading or watching history entry of an item.
type ProgressLog struct {
	ID              int64      `json:"id"`
	ItemID          int64      `json:"itemId"`
	Date            Date       `json:"date"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	PageOrMinute    int        `json:"pageOrMinute"`
	Percent         int        `json:"percent"`
	ReaderName      string     `json:"readerName,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

func (p ProgressLog) EntityType() EntityType  { return EntityProgressLog }
func (p ProgressLog) Key() string             { return formatID(p.ID) }
func (p ProgressLog) LastModified() time.Time { return timeOrZero(p.UpdatedAt) }
func (p ProgressLog) Valid() bool             { return p.ID != 0 && p.UpdatedAt != nil }

// Loan records an item lent to someone.
type Loan struct {
	ID         int64      `json:"id"`
	ItemID     int64      `json:"itemId"`
	ToWhom     string     `json:"toWhom"`
	StartDate  Date       `json:"startDate"`
	DueDate    *Date      `json:"dueDate,omitempty"`
	ReturnedAt *Date      `json:"returnedAt,omitempty"`
	Status     LoanStatus `json:"status"`
	UpdatedAt  *time.Time `json:"updatedAt"`
}

func (l Loan) EntityType() EntityType  { return EntityLoan }
func (l Loan) Key() string             { return formatID(l.ID) }
func (l Loan) LastModified() time.Time { return timeOrZero(l.UpdatedAt) }
func (l Loan) Valid() bool             { return l.ID != 0 && l.UpdatedAt != nil }

// ExternalLink ties an item to a record of an external metadata provider.
type ExternalLink struct {
	ID         int64      `json:"id"`
	ItemID     int64      `json:"itemId"`
	Provider   string     `json:"provider"`
	ExternalID string     `json:"externalId,omitempty"`
	URL        string     `json:"url,omitempty"`
	Rating     *float64   `json:"rating,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt"`
}

func (e ExternalLink) EntityType() EntityType  { return EntityExternalLink }
func (e ExternalLink) Key() string             { return formatID(e.ID) }
func (e ExternalLink) LastModified() time.Time { return timeOrZero(e.UpdatedAt) }
func (e ExternalLink) Valid() bool             { return e.ID != 0 && e.UpdatedAt != nil }
