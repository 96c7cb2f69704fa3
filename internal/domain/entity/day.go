package entity

import "time"

// ActorRef identifies the user who performed a day operation
type ActorRef struct {
	UserID   string `json:"userId,omitempty"`
	UserName string `json:"userName"`
}

// Day is one open/close accounting cycle of the shop
type Day struct {
	ID           string     `json:"id"`
	StartedAt    time.Time  `json:"startedAt"`
	StartedBy    ActorRef   `json:"startedBy"`
	StartingCash int64      `json:"startingCash"`
	EndedAt      *time.Time `json:"endedAt"`
	EndedBy      *ActorRef  `json:"endedBy"`
	ClosingCash  *int64     `json:"closingCash"`
}

// BusinessDate is the calendar date the day is accounted under. It derives
// from the open time, so a day that spans midnight keeps its opening date.
func (d Day) BusinessDate() string {
	return d.StartedAt.UTC().Format("2006-01-02")
}

// SameBusinessDate reports whether t falls on the day's calendar date
func (d Day) SameBusinessDate(t time.Time) bool {
	return t.UTC().Format("2006-01-02") == d.BusinessDate()
}

// DayState is the day lifecycle aggregate: at most one current day plus the
// closed-day history
type DayState struct {
	CurrentDay *Day  `json:"currentDay"`
	History    []Day `json:"history"`
}

// SoldItem is a per-item sales aggregate for the day summary
type SoldItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Total    int64  `json:"total"`
}

// StaffWage is one staff member's accrued wage for the day summary
type StaffWage struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
	Wage  int64   `json:"wage"`
}

// DaySummary is the end-of-day reconciliation and P&L document. It is both
// returned to callers and rendered into the day-end email.
type DaySummary struct {
	Date         string   `json:"date"`
	StartingCash int64    `json:"startingCash"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
	EndedBy      *ActorRef  `json:"endedBy,omitempty"`

	CashFromSales  int64 `json:"cashFromSales"`
	QRFromSales    int64 `json:"qrFromSales"`
	CreditGiven    int64 `json:"creditGiven"`
	CashFromCredit int64 `json:"cashFromCredit"`
	QRFromCredit   int64 `json:"qrFromCredit"`
	InventoryCash  int64 `json:"inventoryCash"`
	InventoryQR    int64 `json:"inventoryQR"`
	InventoryTotal int64 `json:"inventoryTotal"`
	ExpectedCash   int64 `json:"expectedCash"`
	ExpectedQR     int64 `json:"expectedQR"`
	TotalSales     int64 `json:"totalSales"`
	BillCount      int   `json:"billCount"`

	SoldItems      []SoldItem       `json:"soldItems"`
	InventoryItems []InventoryEntry `json:"inventoryItems"`
	StaffWages     []StaffWage      `json:"staffWages"`
	TotalWages     int64            `json:"totalWages"`
	TotalIn        int64            `json:"totalIn"`
	TotalOut       int64            `json:"totalOut"`
	Rent           int64            `json:"rent"`
	NetProfit      int64            `json:"netProfit"`
}
