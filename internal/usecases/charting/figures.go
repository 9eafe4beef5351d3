// Package charting monta as figures e tabelas de apresentação do
// dashboard a partir dos registros filtrados e da série combinada.
// Todos os builders devolvem a Figure zero (serializada como {})
// quando não há dados.
package charting

import (
	"fmt"
	"sort"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/utils"
)

// SalesTrend monta o gráfico de linha com as vendas históricas e
// previstas separadas por uma linha vertical. O eixo x usa índices
// numéricos rotulados com as datas da série.
func SalesTrend(series domain.Series) domain.Figure {
	if series.IsEmpty() {
		return domain.Figure{}
	}

	historical := series.Historical()
	forecast := series.Forecast()

	data := make([]domain.Trace, 0, 2)
	if len(historical) > 0 {
		data = append(data, domain.Trace{
			Type: "scatter",
			Name: "Historical Sales",
			Mode: "lines",
			X:    indexRange(0, len(historical)),
			Y:    salesOf(historical),
			Line: &domain.Line{Color: "blue", Width: 2},
		})
	}
	if len(forecast) > 0 {
		data = append(data, domain.Trace{
			Type: "scatter",
			Name: "Forecasted Sales",
			Mode: "lines",
			X:    indexRange(len(historical), len(series)),
			Y:    salesOf(forecast),
			Line: &domain.Line{Color: "red", Width: 2, Dash: "dash"},
		})
	}

	tickVals := make([]int, len(series))
	tickText := make([]string, len(series))
	for i, month := range series {
		tickVals[i] = i
		tickText[i] = utils.FormatDate(month.Date)
	}

	layout := &domain.Layout{
		Title: &domain.Title{Text: "Sales Trend and Forecast", Font: &domain.Font{Size: 20}},
		XAxis: &domain.Axis{
			Title:     "Date",
			TickMode:  "array",
			TickVals:  tickVals,
			TickText:  tickText,
			TickAngle: 45,
			ShowGrid:  boolPtr(true),
			GridColor: "white",
		},
		YAxis:        &domain.Axis{Title: "Sales Units", ShowGrid: boolPtr(true), GridColor: "white"},
		Legend:       &domain.Legend{X: 0, Y: 1},
		Margin:       &domain.Margin{L: 50, R: 50, T: 80, B: 50},
		Height:       500,
		PlotBGColor:  "#E5ECF6",
		PaperBGColor: "white",
	}

	// A divisória fica sobre o último mês histórico
	if len(historical) > 0 && len(forecast) > 0 {
		divider := len(historical) - 1
		layout.Shapes = []domain.Shape{{
			Type: "line",
			XRef: "x",
			YRef: "paper",
			X0:   divider,
			X1:   divider,
			Y0:   0,
			Y1:   1,
			Line: &domain.Line{Color: "gray", Width: 1, Dash: "dash"},
		}}
	}

	return domain.Figure{Data: data, Layout: layout}
}

// VehicleTypePie monta a pizza de participação nas vendas por tipo de veículo
func VehicleTypePie(records []domain.SalesRecord) domain.Figure {
	if len(records) == 0 {
		return domain.Figure{}
	}

	totals := sumBy(records, func(r domain.SalesRecord) string { return r.VehicleType })
	labels := sortedKeys(totals)
	values := make([]float64, len(labels))
	for i, label := range labels {
		values[i] = totals[label]
	}

	return domain.Figure{
		Data: []domain.Trace{{Type: "pie", Labels: labels, Values: values}},
		Layout: &domain.Layout{
			Title:  &domain.Title{Text: "Sales by Vehicle Type"},
			Height: 400,
		},
	}
}

// RegionBar monta o gráfico de barras de vendas por região, com um
// trace por região para a legenda colorida
func RegionBar(records []domain.SalesRecord) domain.Figure {
	if len(records) == 0 {
		return domain.Figure{}
	}

	totals := sumBy(records, func(r domain.SalesRecord) string { return r.Region })

	regions := sortedKeys(totals)
	data := make([]domain.Trace, 0, len(regions))
	for _, region := range regions {
		data = append(data, domain.Trace{
			Type: "bar",
			Name: region,
			X:    []string{region},
			Y:    []float64{totals[region]},
		})
	}

	return domain.Figure{
		Data: data,
		Layout: &domain.Layout{
			Title:  &domain.Title{Text: "Sales by Region"},
			XAxis:  &domain.Axis{Title: "region"},
			YAxis:  &domain.Axis{Title: "sales"},
			Height: 400,
		},
	}
}

// ExogenousTrends monta o painel 2x2 com a trajetória de cada variável
// exógena ao longo da série, marcando o início da previsão
func ExogenousTrends(series domain.Series) domain.Figure {
	if series.IsEmpty() {
		return domain.Figure{}
	}

	dates := make([]string, len(series))
	unemployment := make([]float64, len(series))
	gasPrice := make([]float64, len(series))
	cpi := make([]float64, len(series))
	search := make([]float64, len(series))
	for i, month := range series {
		dates[i] = utils.FormatDate(month.Date)
		unemployment[i] = month.Unemployment
		gasPrice[i] = month.GasPrice
		cpi[i] = month.CPIAll
		search[i] = month.SearchVolume
	}

	data := []domain.Trace{
		{Type: "scatter", Name: "Unemployment", Mode: "lines", X: dates, Y: unemployment, XAxis: "x", YAxis: "y"},
		{Type: "scatter", Name: "Gas Price", Mode: "lines", X: dates, Y: gasPrice, XAxis: "x2", YAxis: "y2"},
		{Type: "scatter", Name: "CPI", Mode: "lines", X: dates, Y: cpi, XAxis: "x3", YAxis: "y3"},
		{Type: "scatter", Name: "Search Volume", Mode: "lines", X: dates, Y: search, XAxis: "x4", YAxis: "y4"},
	}

	layout := &domain.Layout{
		Title:       &domain.Title{Text: "Exogenous Variable Trends"},
		Grid:        &domain.Grid{Rows: 2, Columns: 2, Pattern: "independent"},
		Annotations: panelTitles(),
		Height:      500,
	}

	if forecast := series.Forecast(); len(forecast) > 0 {
		layout.Shapes = forecastDividers(utils.FormatDate(forecast[0].Date))
	}

	return domain.Figure{Data: data, Layout: layout}
}

// TopModels monta o gráfico de barras dos dez modelos mais vendidos,
// com os traces agrupados por fabricante
func TopModels(records []domain.SalesRecord) domain.Figure {
	if len(records) == 0 {
		return domain.Figure{}
	}

	type modelSales struct {
		label string
		maker string
		total float64
	}

	totals := make(map[string]*modelSales)
	for _, r := range records {
		key := r.MakeModel()
		entry, ok := totals[key]
		if !ok {
			entry = &modelSales{label: key, maker: r.Make}
			totals[key] = entry
		}
		entry.total += r.Sales
	}

	top := make([]*modelSales, 0, len(totals))
	for _, entry := range totals {
		top = append(top, entry)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].total != top[j].total {
			return top[i].total > top[j].total
		}
		return top[i].label < top[j].label
	})
	if len(top) > 10 {
		top = top[:10]
	}

	// Um trace por fabricante, na ordem em que aparecem no ranking
	type group struct {
		labels []string
		values []float64
	}
	groups := make(map[string]*group)
	makerOrder := make([]string, 0)
	for _, entry := range top {
		g, ok := groups[entry.maker]
		if !ok {
			g = &group{}
			groups[entry.maker] = g
			makerOrder = append(makerOrder, entry.maker)
		}
		g.labels = append(g.labels, entry.label)
		g.values = append(g.values, entry.total)
	}

	data := make([]domain.Trace, 0, len(makerOrder))
	for _, maker := range makerOrder {
		g := groups[maker]
		data = append(data, domain.Trace{Type: "bar", Name: maker, X: g.labels, Y: g.values})
	}

	return domain.Figure{
		Data: data,
		Layout: &domain.Layout{
			Title:  &domain.Title{Text: "Top 10 Models by Sales"},
			XAxis:  &domain.Axis{Title: "make_model"},
			YAxis:  &domain.Axis{Title: "sales"},
			Height: 400,
		},
	}
}

// StateMap monta o mapa coroplético de vendas por estado americano
func StateMap(records []domain.SalesRecord) domain.Figure {
	if len(records) == 0 {
		return domain.Figure{}
	}

	totals := sumBy(records, func(r domain.SalesRecord) string { return r.State })
	states := sortedKeys(totals)
	values := make([]float64, len(states))
	for i, state := range states {
		values[i] = totals[state]
	}

	return domain.Figure{
		Data: []domain.Trace{{
			Type:         "choropleth",
			Locations:    states,
			Z:            values,
			LocationMode: "USA-states",
			Colorscale:   "Blues",
			ColorBar:     &domain.ColorBar{Title: "Sales"},
		}},
		Layout: &domain.Layout{
			Title:  &domain.Title{Text: "Sales by State"},
			Geo:    &domain.Geo{Scope: "usa"},
			Height: 500,
		},
	}
}

// Heatmap monta o mapa de calor de vendas para o par de dimensões
// informado. Combinações sem registros aparecem como zero.
func Heatmap(records []domain.SalesRecord, xDim, yDim string) (domain.Figure, error) {
	xAccessor, ok := dimensionAccessors[xDim]
	if !ok {
		return domain.Figure{}, fmt.Errorf("%w: %s", ErrUnknownDimension, xDim)
	}
	yAccessor, ok := dimensionAccessors[yDim]
	if !ok {
		return domain.Figure{}, fmt.Errorf("%w: %s", ErrUnknownDimension, yDim)
	}
	if len(records) == 0 {
		return domain.Figure{}, nil
	}

	cells := make(map[string]map[string]float64)
	xSet := make(map[string]bool)
	for _, r := range records {
		x := xAccessor(r)
		y := yAccessor(r)
		if cells[y] == nil {
			cells[y] = make(map[string]float64)
		}
		cells[y][x] += r.Sales
		xSet[x] = true
	}

	xs := make([]string, 0, len(xSet))
	for x := range xSet {
		xs = append(xs, x)
	}
	ys := make([]string, 0, len(cells))
	for y := range cells {
		ys = append(ys, y)
	}
	xs = sortDimension(xDim, xs)
	ys = sortDimension(yDim, ys)

	z := make([][]float64, len(ys))
	for i, y := range ys {
		z[i] = make([]float64, len(xs))
		for j, x := range xs {
			z[i][j] = cells[y][x]
		}
	}

	return domain.Figure{
		Data: []domain.Trace{{
			Type:       "heatmap",
			X:          dimensionAxis(xDim, xs),
			Y:          dimensionAxis(yDim, ys),
			Z:          z,
			Colorscale: "Viridis",
			ColorBar:   &domain.ColorBar{Title: "Sales"},
		}},
		Layout: &domain.Layout{
			Title:  &domain.Title{Text: fmt.Sprintf("Sales Heatmap by %s and %s", yDim, xDim)},
			Height: 400,
		},
	}, nil
}

// panelTitles posiciona os títulos dos quatro painéis do grid 2x2
func panelTitles() []domain.Annotation {
	titles := []string{"Unemployment Rate", "Gas Price", "Consumer Price Index", "Search Volume"}
	positions := []struct{ x, y float64 }{
		{0.225, 1.0},
		{0.775, 1.0},
		{0.225, 0.425},
		{0.775, 0.425},
	}

	out := make([]domain.Annotation, len(titles))
	for i, title := range titles {
		out[i] = domain.Annotation{
			Text:      title,
			X:         positions[i].x,
			Y:         positions[i].y,
			XRef:      "paper",
			YRef:      "paper",
			XAnchor:   "center",
			ShowArrow: false,
			Font:      &domain.Font{Size: 16},
		}
	}
	return out
}

// forecastDividers marca o início da previsão em cada painel do grid
func forecastDividers(date string) []domain.Shape {
	axes := []struct{ x, y string }{
		{"x", "y domain"},
		{"x2", "y2 domain"},
		{"x3", "y3 domain"},
		{"x4", "y4 domain"},
	}

	out := make([]domain.Shape, len(axes))
	for i, axis := range axes {
		out[i] = domain.Shape{
			Type: "line",
			XRef: axis.x,
			YRef: axis.y,
			X0:   date,
			X1:   date,
			Y0:   0,
			Y1:   1,
			Line: &domain.Line{Color: "gray", Width: 1, Dash: "dash"},
		}
	}
	return out
}

func sumBy(records []domain.SalesRecord, key func(domain.SalesRecord) string) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[key(r)] += r.Sales
	}
	return totals
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexRange(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func salesOf(series domain.Series) []float64 {
	out := make([]float64, len(series))
	for i, month := range series {
		out[i] = month.Sales
	}
	return out
}

func boolPtr(b bool) *bool {
	return &b
}
