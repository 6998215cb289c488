// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"sync"

	"github.com/taibuivan/quantumbooks/internal/platform/apperr"
	"github.com/taibuivan/quantumbooks/internal/platform/validate"
)

// # Physical

// PhysicalBook is a stocked book shipped to the buyer's address.
type PhysicalBook struct {
	details

	mu    sync.Mutex
	stock int
}

// NewPhysicalBook validates d and stock and returns a new physical book.
func NewPhysicalBook(d Details, stock int) (*PhysicalBook, error) {
	base, err := newDetails(d, func(v *validate.Validator) {
		v.Min(FieldStock, stock, 0)
	})
	if err != nil {
		return nil, err
	}
	return &PhysicalBook{details: base, stock: stock}, nil
}

func (b *PhysicalBook) Kind() Kind          { return KindPhysical }
func (b *PhysicalBook) IsPurchasable() bool { return true }

// Stock returns the number of copies on hand.
func (b *PhysicalBook) Stock() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stock
}

// Buy checks and decrements stock under one lock, then notifies the shipper.
func (b *PhysicalBook) Buy(ctx context.Context, order Order, fulfil Fulfillment) (float64, error) {
	if err := checkQuantity(order.Quantity); err != nil {
		return 0, err
	}

	b.mu.Lock()
	if order.Quantity > b.stock {
		b.mu.Unlock()
		return 0, apperr.NotAvailable("insufficient stock for " + b.isbn)
	}
	b.stock -= order.Quantity
	b.mu.Unlock()

	fulfil.ship(ctx, order.Address)
	return b.price * float64(order.Quantity), nil
}

func (b *PhysicalBook) Listing() Listing {
	listing := b.listing(KindPhysical, true)
	stock := b.Stock()
	listing.Stock = &stock
	return listing
}

// # Digital

// DigitalBook is delivered by email and never runs out.
type DigitalBook struct {
	details
	fileFormat string
}

// NewDigitalBook validates d and returns a new digital book. The file format
// is descriptive only.
func NewDigitalBook(d Details, fileFormat string) (*DigitalBook, error) {
	base, err := newDetails(d, nil)
	if err != nil {
		return nil, err
	}
	return &DigitalBook{details: base, fileFormat: fileFormat}, nil
}

func (b *DigitalBook) Kind() Kind          { return KindDigital }
func (b *DigitalBook) IsPurchasable() bool { return true }

// FileFormat returns the descriptive file type tag, e.g. "pdf".
func (b *DigitalBook) FileFormat() string { return b.fileFormat }

// Buy emails the buyer; there is no stock to check.
func (b *DigitalBook) Buy(ctx context.Context, order Order, fulfil Fulfillment) (float64, error) {
	if err := checkQuantity(order.Quantity); err != nil {
		return 0, err
	}

	fulfil.email(ctx, order.Email)
	return b.price * float64(order.Quantity), nil
}

func (b *DigitalBook) Listing() Listing {
	listing := b.listing(KindDigital, true)
	listing.FileFormat = b.fileFormat
	return listing
}

// # Display Only

// DisplayOnlyBook is shown in the store but never sold.
type DisplayOnlyBook struct {
	details
}

// NewDisplayOnlyBook validates d and returns a new display-only book.
func NewDisplayOnlyBook(d Details) (*DisplayOnlyBook, error) {
	base, err := newDetails(d, nil)
	if err != nil {
		return nil, err
	}
	return &DisplayOnlyBook{details: base}, nil
}

func (b *DisplayOnlyBook) Kind() Kind          { return KindDisplayOnly }
func (b *DisplayOnlyBook) IsPurchasable() bool { return false }

// Buy always fails.
func (b *DisplayOnlyBook) Buy(_ context.Context, order Order, _ Fulfillment) (float64, error) {
	if err := checkQuantity(order.Quantity); err != nil {
		return 0, err
	}
	return 0, apperr.NotAvailable("display-only books are not for sale")
}

func (b *DisplayOnlyBook) Listing() Listing {
	return b.listing(KindDisplayOnly, false)
}
