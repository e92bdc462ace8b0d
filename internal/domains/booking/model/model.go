package model

import (
	"shareit/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldItemID    = "item_id"
	FieldBookerID  = "booker_id"
	FieldStatus    = "status"

	ItemTable        = "items"
	FieldItemOwnerID = "owner_id"
)

// CacheKeyGet prefixes cached single-booking views. They embed the item name, so item writes clear them.
const CacheKeyGet = "booking:get"

// Status is the persisted lifecycle value of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

// Booking is a request by a booker to use an item for [Start, End).
// ItemName, ItemOwnerID and BookerName are read through joins and never written.
type Booking struct {
	ID          string    `db:"id"`
	Start       time.Time `db:"start_date"`
	End         time.Time `db:"end_date"`
	ItemID      string    `db:"item_id"`
	BookerID    string    `db:"booker_id"`
	Status      Status    `db:"status"`
	ItemName    string    `column:"name"     db:"item_name"     table:"items"`
	ItemOwnerID string    `column:"owner_id" db:"item_owner_id" table:"items"`
	BookerName  string    `column:"name"     db:"booker_name"   table:"users"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN items ON items.id = bookings.item_id JOIN users ON users.id = bookings.booker_id"
}

// LastNext holds the bookings around today for one item. Either side may be nil.
type LastNext struct {
	Last *Booking
	Next *Booking
}

const (
	MessageNotFound     = "errors.404.bookings"
	MessageUnavailable  = "errors.400.bookings.unavailable"
	MessageNotAllowed   = "errors.400.bookings.not_allowed"
	MessageInvalidDates = "errors.400.bookings.dates"
	MessageInvalidState = "errors.400.bookings.state"
	MessageApproved     = "errors.400.bookings.approved"
)
