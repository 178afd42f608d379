package excel

import (
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"
)

// numClass is the value type a number format displays a number as.
type numClass int

const (
	classNumber numClass = iota
	classPercent
	classCurrency
	classDate
	classTime
)

type numFormat struct {
	class numClass
	// currency is the symbol or code of a currency format, when written.
	currency string
}

// classifyStyle reads the number format of a cell style. Built-in formats are
// looked up by id, custom ones are tokenized.
func classifyStyle(style *excelize.Style) numFormat {
	if style == nil {
		return numFormat{}
	}
	if style.CustomNumFmt != nil {
		return classifyCode(*style.CustomNumFmt)
	}

	switch id := style.NumFmt; {
	case id >= 14 && id <= 17, id == 22:
		return numFormat{class: classDate}
	case id >= 18 && id <= 21, id >= 45 && id <= 47:
		return numFormat{class: classTime}
	case id == 9, id == 10:
		return numFormat{class: classPercent}
	case id >= 5 && id <= 8, id == 42, id == 44:
		return numFormat{class: classCurrency}
	}
	return numFormat{}
}

// classifyCode classifies a format code by its positive section.
func classifyCode(code string) numFormat {
	p := nfp.NumberFormatParser()
	sections := p.Parse(code)
	if len(sections) == 0 {
		return numFormat{}
	}

	var nf numFormat
	var date, clock, percent bool
	for _, tok := range sections[0].Items {
		switch tok.TType {
		case nfp.TokenTypeDateTimes:
			v := strings.ToLower(tok.TValue)
			switch {
			case strings.ContainsAny(v, "yde"), strings.HasPrefix(v, "mmm"):
				date = true
			case strings.ContainsAny(v, "hs"), v == "am/pm":
				clock = true
			}
		case nfp.TokenTypeElapsedDateTimes:
			clock = true
		case nfp.TokenTypePercent:
			percent = true
		case nfp.TokenTypeCurrencyLanguage:
			for _, part := range tok.Parts {
				if part.Token.TType == nfp.TokenSubTypeCurrencyString && part.Token.TValue != "" {
					nf.currency = part.Token.TValue
				}
			}
		case nfp.TokenTypeLiteral:
			if nf.currency == "" && strings.ContainsAny(tok.TValue, "$€£¥") {
				nf.currency = strings.TrimSpace(tok.TValue)
			}
		}
	}

	switch {
	case date:
		nf.class = classDate
	case clock:
		nf.class = classTime
	case nf.currency != "":
		nf.class = classCurrency
	case percent:
		nf.class = classPercent
	}
	return nf
}
