package scanner

import (
	"context"

	"github.com/lumipallolabs/codemap/internal/model"
)

// Order selects how directory children are arranged
type Order int

const (
	// OrderByCode sorts children by code lines, largest first
	OrderByCode Order = iota
	// OrderFilesystem keeps the order the filesystem returns
	OrderFilesystem
)

// String returns a human-readable order name
func (o Order) String() string {
	switch o {
	case OrderByCode:
		return "code"
	case OrderFilesystem:
		return "filesystem"
	default:
		return ""
	}
}

// Toggle returns the other order
func (o Order) Toggle() Order {
	if o == OrderByCode {
		return OrderFilesystem
	}
	return OrderByCode
}

// Scanner defines the interface for listing a directory
type Scanner interface {
	// Scan returns the browsable entries of dir: "..", ".", then children
	Scan(ctx context.Context, dir string) ([]model.Entry, error)
}
