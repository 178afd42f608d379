// Package odsref converts Excel workbooks into OpenDocument style cell
// values, range addresses and formulas, and exposes the reference and value
// codecs those forms are built from.
package odsref

import "fmt"

// Mode represents the extraction mode.
type Mode string

const (
	// ModeLight extracts cell values only.
	ModeLight Mode = "light"
	// ModeStandard extracts cell values, charts, table candidates and print
	// areas.
	ModeStandard Mode = "standard"
	// ModeVerbose also translates cell formulas.
	ModeVerbose Mode = "verbose"
)

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, nil
	}
	return "", fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", s)
}

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (light, standard, verbose).
	Mode Mode
	// IncludeFormulas specifies whether to translate cell formulas.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeFormulas *bool
	// IncludePrintAreas specifies whether to include print areas.
	// If nil, defaults to false for light mode, true otherwise.
	IncludePrintAreas *bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeFormulas returns whether to translate cell formulas.
func (o Options) ShouldIncludeFormulas() bool {
	if o.IncludeFormulas != nil {
		return *o.IncludeFormulas
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return o.Mode != ModeLight
}

// ShouldIncludeCharts returns whether to read chart series ranges.
func (o Options) ShouldIncludeCharts() bool {
	return o.Mode != ModeLight
}

// ShouldDetectTables returns whether to detect table candidates.
func (o Options) ShouldDetectTables() bool {
	return o.Mode != ModeLight
}
