// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/quantumbooks/internal/platform/request"
	"github.com/taibuivan/quantumbooks/internal/platform/respond"
	"github.com/taibuivan/quantumbooks/internal/platform/validate"
	"github.com/taibuivan/quantumbooks/pkg/pagination"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes builds the /books router. Mutating inventory routes are wrapped in
// staff.
func (handler *Handler) Routes(staff func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listBooks)
	router.Get("/{isbn}", handler.getBook)
	router.Post("/{isbn}/purchase", handler.purchaseBook)

	// Staff only
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(staff)

		staffRoute.Post("/", handler.createBook)
		staffRoute.Delete("/outdated", handler.removeOutdatedBooks)
	})

	return router
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	query := request.URL.Query()

	filter := Filter{
		Query: query.Get("q"),
		Kind:  Kind(query.Get("kind")),
	}

	validator := &validate.Validator{}
	if filter.Kind != "" {
		validator.Custom(FieldKind, !filter.Kind.IsValid(), "Unknown book kind")
	}
	if raw := query.Get("purchasable"); raw != "" {
		purchasable, err := strconv.ParseBool(raw)
		validator.Custom("purchasable", err != nil, "Must be true or false")
		filter.PurchasableOnly = purchasable
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, total, err := handler.service.ListBooks(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	listing, err := handler.service.GetBook(request.Context(), requestutil.Param(request, "isbn"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listing)
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input Draft
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	listing, err := handler.service.CreateBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, listing)
}

func (handler *Handler) purchaseBook(writer http.ResponseWriter, request *http.Request) {
	var order Order
	if err := requestutil.DecodeJSON(request, &order); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if order.Email != "" {
		if err := (&validate.Validator{}).Email(FieldEmail, order.Email).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	receipt, err := handler.service.BuyBook(request.Context(), requestutil.Param(request, "isbn"), order)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, receipt)
}

func (handler *Handler) removeOutdatedBooks(writer http.ResponseWriter, request *http.Request) {
	raw := request.URL.Query().Get(FieldMaxYearsOld)

	maxYearsOld, convErr := strconv.Atoi(raw)
	err := (&validate.Validator{}).
		Required(FieldMaxYearsOld, raw).
		Custom(FieldMaxYearsOld, raw != "" && convErr != nil, "Must be an integer").
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	removed, err := handler.service.RemoveOutdatedBooks(request.Context(), maxYearsOld)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, removed)
}
