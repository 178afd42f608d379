package models

// ChartSeries holds the cells a chart series is drawn from.
type ChartSeries struct {
	// Name is the literal series name, if written.
	Name string `json:"name,omitempty"`
	// NameRange is the range address of the series name.
	NameRange string `json:"name_range,omitempty"`
	// Categories is the range address of the category or X values.
	Categories string `json:"categories,omitempty"`
	// Values is the range address of the series values.
	Values string `json:"values,omitempty"`
}

// Chart represents a chart and the ranges its series refer to.
type Chart struct {
	// Name is the drawing object name.
	Name string `json:"name"`
	// Class is the chart:class value, e.g. "chart:bar".
	Class string `json:"class"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}
