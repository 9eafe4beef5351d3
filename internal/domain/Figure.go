package domain

// Figure é o descritor de gráfico enviado ao frontend: uma lista de
// traces e os metadados de apresentação. Uma Figure vazia serializa
// como {} e sinaliza "sem dados" para o renderizador.
type Figure struct {
	Data   []Trace `json:"data,omitempty"`
	Layout *Layout `json:"layout,omitempty"`
}

// IsEmpty indica se a figura não possui traces
func (f Figure) IsEmpty() bool {
	return len(f.Data) == 0
}

// Trace descreve uma série plotável. Os campos usados dependem do tipo
// (scatter, bar, pie, choropleth, heatmap); os demais ficam omitidos.
type Trace struct {
	Type         string    `json:"type"`
	Name         string    `json:"name,omitempty"`
	Mode         string    `json:"mode,omitempty"`
	X            any       `json:"x,omitempty"`
	Y            any       `json:"y,omitempty"`
	Z            any       `json:"z,omitempty"`
	Labels       []string  `json:"labels,omitempty"`
	Values       []float64 `json:"values,omitempty"`
	Locations    []string  `json:"locations,omitempty"`
	LocationMode string    `json:"locationmode,omitempty"`
	Colorscale   string    `json:"colorscale,omitempty"`
	ColorBar     *ColorBar `json:"colorbar,omitempty"`
	Line         *Line     `json:"line,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
	XAxis        string    `json:"xaxis,omitempty"`
	YAxis        string    `json:"yaxis,omitempty"`
}

// Line define cor, espessura e tracejado de uma linha
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// Marker define a aparência dos pontos/barras de um trace
type Marker struct {
	Color string `json:"color,omitempty"`
}

// ColorBar define o rótulo da barra de cores de mapas e heatmaps
type ColorBar struct {
	Title string `json:"title,omitempty"`
}

// Layout carrega os metadados de apresentação de uma Figure
type Layout struct {
	Title        *Title       `json:"title,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	XAxis2       *Axis        `json:"xaxis2,omitempty"`
	YAxis2       *Axis        `json:"yaxis2,omitempty"`
	XAxis3       *Axis        `json:"xaxis3,omitempty"`
	YAxis3       *Axis        `json:"yaxis3,omitempty"`
	XAxis4       *Axis        `json:"xaxis4,omitempty"`
	YAxis4       *Axis        `json:"yaxis4,omitempty"`
	Legend       *Legend      `json:"legend,omitempty"`
	Grid         *Grid        `json:"grid,omitempty"`
	Shapes       []Shape      `json:"shapes,omitempty"`
	Annotations  []Annotation `json:"annotations,omitempty"`
	Margin       *Margin      `json:"margin,omitempty"`
	Height       int          `json:"height,omitempty"`
	PlotBGColor  string       `json:"plot_bgcolor,omitempty"`
	PaperBGColor string       `json:"paper_bgcolor,omitempty"`
	Geo          *Geo         `json:"geo,omitempty"`
}

// Title é o título da figura ou de um eixo
type Title struct {
	Text string  `json:"text"`
	X    float64 `json:"x,omitempty"`
	Font *Font   `json:"font,omitempty"`
}

// Font define o tamanho da fonte de um título
type Font struct {
	Size int `json:"size,omitempty"`
}

// Axis descreve um eixo cartesiano, incluindo ticks customizados
// usados para rotular posições numéricas com datas
type Axis struct {
	Title     string   `json:"title,omitempty"`
	TickMode  string   `json:"tickmode,omitempty"`
	TickVals  []int    `json:"tickvals,omitempty"`
	TickText  []string `json:"ticktext,omitempty"`
	TickAngle float64  `json:"tickangle,omitempty"`
	ShowGrid  *bool    `json:"showgrid,omitempty"`
	GridColor string   `json:"gridcolor,omitempty"`
}

// Legend posiciona a legenda dentro da área do gráfico
type Legend struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	XAnchor string  `json:"xanchor,omitempty"`
	YAnchor string  `json:"yanchor,omitempty"`
}

// Grid organiza múltiplos painéis em linhas e colunas
type Grid struct {
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Pattern string `json:"pattern,omitempty"`
}

// Shape desenha marcações sobre o gráfico, como a linha vertical que
// separa histórico de previsão
type Shape struct {
	Type string `json:"type"`
	XRef string `json:"xref,omitempty"`
	YRef string `json:"yref,omitempty"`
	X0   any    `json:"x0"`
	X1   any    `json:"x1"`
	Y0   any    `json:"y0"`
	Y1   any    `json:"y1"`
	Line *Line  `json:"line,omitempty"`
}

// Annotation é um texto posicionado sobre a figura (títulos de painéis)
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	XAnchor   string  `json:"xanchor,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	Font      *Font   `json:"font,omitempty"`
}

// Margin define as margens externas da figura
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Geo configura a projeção de mapas coropléticos
type Geo struct {
	Scope string `json:"scope,omitempty"`
}
