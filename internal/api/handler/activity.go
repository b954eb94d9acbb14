package handler

import (
	"net/http"

	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/catalog"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

type AddProductRequest struct {
	ProductID string `json:"product_id"`
}

func ListCustomerProducts(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.ListCustomerProducts(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeCatalogError(w, err, "Erro ao listar produtos do cliente")
			return
		}
		if items == nil {
			items = []*domain.CustomerProduct{}
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// AddProductToCustomer registra uma venda: vínculo e atividade de compra
func AddProductToCustomer(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddProductRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.ProductID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "product_id é obrigatório", nil)
			return
		}

		activity, err := service.AddProductToCustomer(r.Context(), pathParam(r, "id"), req.ProductID)
		if err != nil {
			writeCatalogError(w, err, "Erro ao vincular produto ao cliente")
			return
		}

		// produto já vinculado
		if activity == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusCreated, activity)
	}
}

func RemoveProductFromCustomer(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activity, err := service.RemoveProductFromCustomer(r.Context(), pathParam(r, "id"), pathParam(r, "product_id"))
		if err != nil {
			writeCatalogError(w, err, "Erro ao remover produto do cliente")
			return
		}

		writeJSON(w, http.StatusOK, activity)
	}
}

func ListActivities(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := domain.ActivityFilters{
			CustomerID: query.Get("customer_id"),
			Type:       domain.ActivityType(query.Get("type")),
		}

		activities, err := service.ListActivities(r.Context(), filters)
		if err != nil {
			writeCatalogError(w, err, "Erro ao listar atividades")
			return
		}
		if activities == nil {
			activities = []*domain.Activity{}
		}

		writeJSON(w, http.StatusOK, activities)
	}
}

func CreateActivity(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.ActivityInput
		if !decodeBody(w, r, &input) {
			return
		}

		activity, err := service.CreateActivity(r.Context(), &input)
		if err != nil {
			writeCatalogError(w, err, "Erro ao registrar atividade")
			return
		}

		writeJSON(w, http.StatusCreated, activity)
	}
}
