// Package core holds the domain model of the well client: typed text
// records, the spending taxonomy, and financial entries.
package core

import (
	"fmt"
	"strings"
)

// RecordType identifies the kind of text record held by the remote store.
// The store keeps at most one live body per type.
type RecordType string

const (
	RecordTask     RecordType = "task"
	RecordNote     RecordType = "note"
	RecordBookmark RecordType = "bookmark"
)

// RecordTypes lists all valid record types in display order.
var RecordTypes = []RecordType{RecordTask, RecordNote, RecordBookmark}

// ParseRecordType converts user input to a RecordType.
func ParseRecordType(s string) (RecordType, error) {
	t := RecordType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRecordType, s)
	}
	return t, nil
}

// Valid reports whether the type is one of task, note or bookmark.
func (t RecordType) Valid() bool {
	switch t {
	case RecordTask, RecordNote, RecordBookmark:
		return true
	}
	return false
}

// Record is a typed unit of content. It is created by a write and replaced
// wholesale by an edit-and-push; it is never partially patched.
type Record struct {
	Type RecordType `json:"type"`
	Body string     `json:"body"`
}

// PaymentMethod is how a financial entry was paid.
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
)

// ParsePaymentMethod converts user input to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case PaymentCredit, PaymentDebit:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
}
