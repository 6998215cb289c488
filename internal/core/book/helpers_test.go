// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quantumbooks/internal/core/book"
)

// recorder is a Shipper and Mailer that remembers every notification and the
// state of the context it arrived with. onNotify, when set, runs after each
// notification is recorded.
type recorder struct {
	mu        sync.Mutex
	shipments []string
	emails    []string
	ctxErrs   []error
	onNotify  func()
}

func (r *recorder) NotifyShipping(ctx context.Context, address string) {
	r.mu.Lock()
	r.shipments = append(r.shipments, address)
	r.ctxErrs = append(r.ctxErrs, ctx.Err())
	hook := r.onNotify
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
}

func (r *recorder) NotifyEmail(ctx context.Context, recipient string) {
	r.mu.Lock()
	r.emails = append(r.emails, recipient)
	r.ctxErrs = append(r.ctxErrs, ctx.Err())
	hook := r.onNotify
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// ContextErrors returns ctx.Err() as seen by each notification, in order.
func (r *recorder) ContextErrors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.ctxErrs...)
}

func (r *recorder) Shipments() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.shipments...)
}

func (r *recorder) Emails() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.emails...)
}

func (r *recorder) fulfillment() book.Fulfillment {
	return book.Fulfillment{Shipper: r, Mailer: r}
}

func physical(t testing.TB, isbn string, year int, price float64, stock int) *book.PhysicalBook {
	t.Helper()
	b, err := book.NewPhysicalBook(book.Details{ISBN: isbn, Title: "Physical " + isbn, Author: "Author", Year: year, Price: price}, stock)
	require.NoError(t, err)
	return b
}

func digital(t testing.TB, isbn string, year int, price float64) *book.DigitalBook {
	t.Helper()
	b, err := book.NewDigitalBook(book.Details{ISBN: isbn, Title: "Digital " + isbn, Author: "Author", Year: year, Price: price}, "pdf")
	require.NoError(t, err)
	return b
}

func displayOnly(t testing.TB, isbn string, year int, price float64) *book.DisplayOnlyBook {
	t.Helper()
	b, err := book.NewDisplayOnlyBook(book.Details{ISBN: isbn, Title: "Showcase " + isbn, Author: "Author", Year: year, Price: price})
	require.NoError(t, err)
	return b
}

// demoCatalog returns the three-book catalog used across scenarios.
func demoCatalog(t testing.TB, rec *recorder) *book.Catalog {
	t.Helper()
	catalog := book.NewCatalog(rec.fulfillment())

	java, err := book.NewPhysicalBook(book.Details{ISBN: "111", Title: "Java 101", Author: "James", Year: 2015, Price: 100}, 10)
	require.NoError(t, err)
	python, err := book.NewDigitalBook(book.Details{ISBN: "222", Title: "Python Guide", Author: "Guido", Year: 2020, Price: 50}, "pdf")
	require.NoError(t, err)
	rare, err := book.NewDisplayOnlyBook(book.Details{ISBN: "333", Title: "Rare Book", Author: "Unknown", Year: 1980, Price: 999})
	require.NoError(t, err)

	require.NoError(t, catalog.AddBook(java))
	require.NoError(t, catalog.AddBook(python))
	require.NoError(t, catalog.AddBook(rare))
	return catalog
}
