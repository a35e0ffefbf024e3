package core

import "errors"

// Common errors.
var (
	ErrUnknownRecordType    = errors.New("unknown record type")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrDuplicateCategory    = errors.New("category already exists")
	ErrDuplicateSubcategory = errors.New("subcategory already exists")
	ErrCategoryNotFound     = errors.New("category not found")
)
