package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Resumen: totales, tendencia de ventas y rankings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sum, err := a.dashboard.GetSummary(cmd.Context())
			if err != nil {
				return err
			}
			if a.output == "json" {
				return printJSON(a.out, sum)
			}

			s := sum.Stats
			fmt.Fprintln(a.out, sum.DateLabel)
			printKV(a.out, [][2]string{
				{"Clientes", strconv.Itoa(s.TotalCustomers)},
				{"Productos", strconv.Itoa(s.TotalProducts)},
				{"Pedidos", strconv.Itoa(s.TotalOrders)},
				{"Pendientes", strconv.Itoa(s.PendingOrders)},
				{"Ingresos", s.TotalRevenue.StringFixed(2)},
			})

			if len(sum.SalesTrend) > 0 {
				rows := make([][]string, 0, len(sum.SalesTrend))
				for _, p := range sum.SalesTrend {
					rows = append(rows, []string{p.Period, p.Revenue.StringFixed(2), strconv.Itoa(p.Orders)})
				}
				fmt.Fprintln(a.out)
				printTable(a.out, []string{"Período", "Ingresos", "Pedidos"}, rows)
			}

			rows := make([][]string, 0, len(sum.TopProducts))
			for _, p := range sum.TopProducts {
				rows = append(rows, []string{p.ProductCode, p.ProductName, strconv.Itoa(p.Quantity), p.Revenue.StringFixed(2)})
			}
			fmt.Fprintln(a.out, "\nTop productos")
			printTable(a.out, []string{"Código", "Producto", "Cantidad", "Ingresos"}, rows)

			rows = make([][]string, 0, len(sum.TopCustomers))
			for _, c := range sum.TopCustomers {
				rows = append(rows, []string{strconv.Itoa(c.CustomerNumber), c.CustomerName, c.TotalPaid.StringFixed(2)})
			}
			fmt.Fprintln(a.out, "\nTop clientes")
			printTable(a.out, []string{"Número", "Cliente", "Pagado"}, rows)
			return nil
		},
	}
}
