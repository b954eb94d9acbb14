// Package exporting gera os arquivos CSV de produtos, clientes e o relatório completo
package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/usecases/reporting"
	"github.com/vfg2006/crm-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// bom faz o Excel abrir o arquivo como UTF-8
const bom = "\ufeff"

const ContentType = "text/csv; charset=utf-8"

var (
	productHeader  = []string{"N°", "ID", "Nome", "Preço", "Categoria", "Data de Exportação"}
	customerHeader = []string{"N°", "ID", "Nome", "Email", "Produtos Comprados", "Lista de Produtos", "Total Gasto", "Data de Exportação"}
	reportHeader   = []string{"Tipo", "Descrição", "Quantidade", "Valor", "Data"}
)

type File struct {
	Name string
	Data []byte
}

type Exporter interface {
	ExportProducts(ctx context.Context) (*File, error)
	ExportCustomers(ctx context.Context) (*File, error)
	ExportReport(ctx context.Context) (*File, error)
}

type Service struct {
	source reporting.DataSource
	now    func() time.Time
}

func NewService(source reporting.DataSource) Exporter {
	return &Service{
		source: source,
		now:    time.Now,
	}
}

func (s *Service) ExportProducts(ctx context.Context) (*File, error) {
	products, err := s.source.FetchAllProducts(ctx)
	if err != nil {
		return nil, unavailable("produtos", err)
	}

	if len(products) == 0 {
		return nil, ErrNothingToExport
	}

	now := s.now()
	exportedAt := utils.FormatDate(now)

	rows := make([][]string, 0, len(products)+1)
	rows = append(rows, productHeader)
	for i, product := range products {
		category := ""
		if product.CategoryName != nil {
			category = *product.CategoryName
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			product.ID,
			product.Name,
			utils.FormatMoney(product.Price),
			category,
			exportedAt,
		})
	}

	return s.write("produtos", now, rows)
}

// ExportCustomers lista os produtos atualmente vinculados a cada cliente.
// O total gasto usa o preço gravado na compra de cada produto.
func (s *Service) ExportCustomers(ctx context.Context) (*File, error) {
	snapshot := reporting.Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		customers, err := s.source.FetchAllCustomers(gctx)
		if err != nil {
			return unavailable("clientes", err)
		}
		snapshot.Customers = customers
		return nil
	})
	g.Go(s.fetchLinks(gctx, &snapshot))
	g.Go(func() error {
		activities, err := s.source.FetchAllPurchaseActivities(gctx)
		if err != nil {
			return unavailable("atividades", err)
		}
		snapshot.Activities = activities
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(snapshot.Customers) == 0 {
		return nil, ErrNothingToExport
	}

	now := s.now()
	exportedAt := utils.FormatDate(now)
	spending := snapshot.SpendingByCustomer()

	rows := make([][]string, 0, len(snapshot.Customers)+1)
	rows = append(rows, customerHeader)
	for i, customer := range snapshot.Customers {
		purchases, products, total := summarize(spending[customer.ID])

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			customer.ID,
			customer.Name,
			customer.Email,
			strconv.Itoa(purchases),
			products,
			utils.FormatMoney(total),
			exportedAt,
		})
	}

	return s.write("clientes", now, rows)
}

// ExportReport gera o resumo seguido de uma linha por produto e por cliente
func (s *Service) ExportReport(ctx context.Context) (*File, error) {
	snapshot := reporting.Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := s.source.FetchAllProducts(gctx)
		if err != nil {
			return unavailable("produtos", err)
		}
		snapshot.Products = products
		return nil
	})
	g.Go(func() error {
		customers, err := s.source.FetchAllCustomers(gctx)
		if err != nil {
			return unavailable("clientes", err)
		}
		snapshot.Customers = customers
		return nil
	})
	g.Go(func() error {
		activities, err := s.source.FetchAllPurchaseActivities(gctx)
		if err != nil {
			return unavailable("atividades", err)
		}
		snapshot.Activities = activities
		return nil
	})
	g.Go(s.fetchLinks(gctx, &snapshot))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if snapshot.CountProducts() == 0 && snapshot.CountCustomers() == 0 {
		return nil, ErrNothingToExport
	}

	now := s.now()
	date := utils.FormatDate(now)
	spending := snapshot.SpendingByCustomer()

	rows := [][]string{
		reportHeader,
		{"RESUMO", "Total de Produtos", strconv.Itoa(snapshot.CountProducts()), "", date},
		{"RESUMO", "Total de Clientes", strconv.Itoa(snapshot.CountCustomers()), "", date},
		{"RESUMO", "Receita Total", strconv.Itoa(snapshot.TotalSales()), utils.FormatMoney(snapshot.TotalRevenue()), date},
	}

	for _, product := range snapshot.Products {
		rows = append(rows, []string{"PRODUTO", product.Name, "1", utils.FormatMoney(product.Price), date})
	}

	for _, customer := range snapshot.Customers {
		purchases, _, total := summarize(spending[customer.ID])
		description := fmt.Sprintf("%s (%s)", customer.Name, customer.Email)
		rows = append(rows, []string{"CLIENTE", description, strconv.Itoa(purchases), utils.FormatMoney(total), date})
	}

	return s.write("relatorio_completo", now, rows)
}

func (s *Service) fetchLinks(ctx context.Context, snapshot *reporting.Snapshot) func() error {
	return func() error {
		links, err := s.source.FetchAllCustomerProducts(ctx)
		if err != nil {
			return unavailable("vínculos de clientes", err)
		}
		snapshot.CustomerProducts = links
		return nil
	}
}

func (s *Service) write(prefix string, now time.Time, rows [][]string) (*File, error) {
	var buffer bytes.Buffer
	buffer.WriteString(bom)

	writer := csv.NewWriter(&buffer)
	if err := writer.WriteAll(rows); err != nil {
		logrus.WithError(err).Errorf("Falha ao gerar CSV %s", prefix)
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	return &File{
		Name: fmt.Sprintf("%s_%s.csv", prefix, utils.FileDate(now)),
		Data: buffer.Bytes(),
	}, nil
}

func summarize(spending *reporting.CustomerSpending) (int, string, decimal.Decimal) {
	if spending == nil {
		return 0, "Nenhum", decimal.Zero
	}

	products := "Nenhum"
	if len(spending.Products) > 0 {
		products = strings.Join(spending.Products, "; ")
	}

	return spending.Purchases, products, spending.Total
}

func unavailable(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", reporting.ErrDataSourceUnavailable, name, err)
}
