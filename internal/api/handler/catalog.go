package handler

import (
	"net/http"

	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/catalog"
)

func ListProducts(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			writeCatalogError(w, err, "Erro ao listar produtos")
			return
		}
		if products == nil {
			products = []*domain.Product{}
		}

		writeJSON(w, http.StatusOK, products)
	}
}

func GetProduct(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := service.GetProduct(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeCatalogError(w, err, "Erro ao buscar produto")
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}

func CreateProduct(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.ProductInput
		if !decodeBody(w, r, &input) {
			return
		}

		product, err := service.CreateProduct(r.Context(), &input)
		if err != nil {
			writeCatalogError(w, err, "Erro ao criar produto")
			return
		}

		writeJSON(w, http.StatusCreated, product)
	}
}

func UpdateProduct(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.ProductInput
		if !decodeBody(w, r, &input) {
			return
		}

		product, err := service.UpdateProduct(r.Context(), pathParam(r, "id"), &input)
		if err != nil {
			writeCatalogError(w, err, "Erro ao atualizar produto")
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}

func DeleteProduct(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteProduct(r.Context(), pathParam(r, "id")); err != nil {
			writeCatalogError(w, err, "Erro ao excluir produto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListCategories(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.ListCategories(r.Context())
		if err != nil {
			writeCatalogError(w, err, "Erro ao listar categorias")
			return
		}
		if categories == nil {
			categories = []*domain.Category{}
		}

		writeJSON(w, http.StatusOK, categories)
	}
}

func GetCategory(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := service.GetCategory(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeCatalogError(w, err, "Erro ao buscar categoria")
			return
		}

		writeJSON(w, http.StatusOK, category)
	}
}

func CreateCategory(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.CategoryInput
		if !decodeBody(w, r, &input) {
			return
		}

		category, err := service.CreateCategory(r.Context(), &input)
		if err != nil {
			writeCatalogError(w, err, "Erro ao criar categoria")
			return
		}

		writeJSON(w, http.StatusCreated, category)
	}
}

func UpdateCategory(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.CategoryInput
		if !decodeBody(w, r, &input) {
			return
		}

		category, err := service.UpdateCategory(r.Context(), pathParam(r, "id"), &input)
		if err != nil {
			writeCatalogError(w, err, "Erro ao atualizar categoria")
			return
		}

		writeJSON(w, http.StatusOK, category)
	}
}

// DeleteCategory remove a categoria; os produtos dela ficam sem categoria
func DeleteCategory(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteCategory(r.Context(), pathParam(r, "id")); err != nil {
			writeCatalogError(w, err, "Erro ao excluir categoria")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListCustomers(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.ListCustomers(r.Context())
		if err != nil {
			writeCatalogError(w, err, "Erro ao listar clientes")
			return
		}
		if customers == nil {
			customers = []*domain.Customer{}
		}

		writeJSON(w, http.StatusOK, customers)
	}
}

func GetCustomer(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, err := service.GetCustomer(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeCatalogError(w, err, "Erro ao buscar cliente")
			return
		}

		writeJSON(w, http.StatusOK, customer)
	}
}

func CreateCustomer(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.CustomerInput
		if !decodeBody(w, r, &input) {
			return
		}

		customer, err := service.CreateCustomer(r.Context(), &input)
		if err != nil {
			writeCatalogError(w, err, "Erro ao criar cliente")
			return
		}

		writeJSON(w, http.StatusCreated, customer)
	}
}

func UpdateCustomer(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.CustomerInput
		if !decodeBody(w, r, &input) {
			return
		}

		customer, err := service.UpdateCustomer(r.Context(), pathParam(r, "id"), &input)
		if err != nil {
			writeCatalogError(w, err, "Erro ao atualizar cliente")
			return
		}

		writeJSON(w, http.StatusOK, customer)
	}
}

func DeleteCustomer(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteCustomer(r.Context(), pathParam(r, "id")); err != nil {
			writeCatalogError(w, err, "Erro ao excluir cliente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
