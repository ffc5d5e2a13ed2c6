package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/BlackZ36/Meibeichi/internal/catalog"
	"github.com/BlackZ36/Meibeichi/internal/models"
)

// productListResponse is one page of the derived product table plus the
// row the detail panel should show.
type productListResponse struct {
	Items      []models.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
	SelectedID uuid.UUID        `json:"selectedId"`
}

// ProductsList runs the filter/sort/paginate pipeline over the full
// product set. The previously selected row id may be passed so the
// detail panel keeps its selection when the row survives the filters.
func (a *API) ProductsList(w http.ResponseWriter, r *http.Request) {
	all, err := a.products.List()
	if err != nil {
		slog.Error("list products", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load products")
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("per_page"))

	derived := catalog.Sort(catalog.Filter(all, q.Get("type"), q.Get("q")), q.Get("sort"), q.Get("dir"))
	view := catalog.Paginate(derived, page, pageSize)

	prev, _ := uuid.Parse(q.Get("selected"))
	writeJSON(w, http.StatusOK, productListResponse{
		Items:      view.Items,
		Total:      view.Total,
		Page:       view.Page,
		PageSize:   view.PageSize,
		TotalPages: view.TotalPages,
		SelectedID: catalog.Reselect(derived, prev),
	})
}

func (a *API) ProductGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	product, err := a.products.FindByID(id)
	if err != nil {
		slog.Error("find product", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load product")
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// productRequest carries product fields for create and update. Pointer
// fields let updates distinguish "not sent" from "set to zero value".
type productRequest struct {
	Code     *string           `json:"code"`
	Name     *string           `json:"name"`
	Type     *string           `json:"type"`
	Price    *string           `json:"price"`
	Material *string           `json:"material"`
	Images   *[]string         `json:"images"`
	Links    *[]models.LinkRow `json:"links"`
	Order    *int              `json:"order"`
}

// apply merges the request into p, leaving absent fields untouched.
func (req *productRequest) apply(p *models.Product) {
	if req.Code != nil {
		p.Code = *req.Code
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Material != nil {
		p.Material = *req.Material
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.Links != nil {
		p.Links = cleanLinks(*req.Links)
	}
	if req.Order != nil {
		p.Order = *req.Order
	}
}

func (a *API) ProductCreate(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var product models.Product
	req.apply(&product)
	if msg := validateProduct(product); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.products.Create(&product)
	if err != nil {
		slog.Error("create product", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create product")
		return
	}
	slog.Info("product created", "id", created.ID, "code", created.Code)
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := a.products.FindByID(id)
	if err != nil {
		slog.Error("find product", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load product")
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	req.apply(product)
	if msg := validateProduct(*product); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.products.Update(product); err != nil {
		slog.Error("update product", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not update product")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// ProductPin toggles a product between pinned and default ordering.
func (a *API) ProductPin(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	product, err := a.products.FindByID(id)
	if err != nil {
		slog.Error("find product", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load product")
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	order := models.OrderPinned
	if product.IsPinned() {
		order = models.OrderDefault
	}
	if err := a.products.SetOrder(id, order); err != nil {
		slog.Error("set product order", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not update product")
		return
	}
	product.Order = order
	writeJSON(w, http.StatusOK, product)
}

func (a *API) ProductDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if err := a.products.Delete(id); err != nil {
		slog.Error("delete product", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not delete product")
		return
	}
	slog.Info("product deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
