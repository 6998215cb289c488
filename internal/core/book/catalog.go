// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"sync"

	"github.com/taibuivan/quantumbooks/internal/platform/validate"
	"github.com/taibuivan/quantumbooks/pkg/slice"
)

var (
	_ Book = (*PhysicalBook)(nil)
	_ Book = (*DigitalBook)(nil)
	_ Book = (*DisplayOnlyBook)(nil)
)

// Catalog is the insertion-ordered collection of books on sale.
//
// Duplicate ISBNs are allowed; lookups resolve to the first match. The
// catalog owns its books and only hands [Listing] snapshots to readers.
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	books  []Book
	fulfil Fulfillment
}

// NewCatalog returns an empty catalog whose purchases notify fulfil.
func NewCatalog(fulfil Fulfillment) *Catalog {
	return &Catalog{fulfil: fulfil}
}

// AddBook appends book to the catalog.
func (c *Catalog) AddBook(book Book) error {
	if book == nil {
		return (&validate.Validator{}).Custom(FieldISBN, true, "Book is required").Err()
	}

	c.mu.Lock()
	c.books = append(c.books, book)
	c.mu.Unlock()
	return nil
}

// RemoveOutdatedBooks drops every book older than maxYearsOld at currentYear
// and returns what was removed, in catalog order. A book exactly maxYearsOld
// years old is kept.
func (c *Catalog) RemoveOutdatedBooks(currentYear, maxYearsOld int) []Listing {
	isOutdated := func(b Book) bool {
		return currentYear-b.Year() > maxYearsOld
	}

	c.mu.Lock()
	removed, kept := slice.Partition(c.books, isOutdated)
	c.books = kept
	c.mu.Unlock()

	return slice.Map(removed, Book.Listing)
}

// BuyBook sells order.Quantity copies of the first book with the given ISBN.
// The book's own result is returned unchanged; a missing ISBN yields
// [ErrNotFound].
func (c *Catalog) BuyBook(ctx context.Context, isbn string, order Order) (float64, error) {
	_, amount, err := c.sell(ctx, isbn, order)
	return amount, err
}

// sell is [Catalog.BuyBook] that also returns the book that was sold.
func (c *Catalog) sell(ctx context.Context, isbn string, order Order) (Book, float64, error) {
	book, ok := c.find(isbn)
	if !ok {
		return nil, 0, ErrNotFound
	}

	amount, err := book.Buy(ctx, order, c.fulfil)
	if err != nil {
		return nil, 0, err
	}
	return book, amount, nil
}

// Find returns a snapshot of the first book with the given ISBN.
func (c *Catalog) Find(isbn string) (Listing, error) {
	book, ok := c.find(isbn)
	if !ok {
		return Listing{}, ErrNotFound
	}
	return book.Listing(), nil
}

// Listings returns snapshots of every book in catalog order.
func (c *Catalog) Listings() []Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slice.Map(c.books, Book.Listing)
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

func (c *Catalog) find(isbn string) (Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, book := range c.books {
		if book.ISBN() == isbn {
			return book, true
		}
	}
	return nil, false
}
