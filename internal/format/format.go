// Package format renders money and dates for guests.
package format

import (
	"fmt"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/guestbook"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	RUB Currency = "RUB"
)

func (c Currency) Symbol() string {
	switch c {
	case USD:
		return "$"
	case EUR:
		return "€"
	case RUB:
		return "₽"
	}
	return string(c)
}

func (c Currency) Unit() currency.Unit {
	return currency.MustParseISO(string(c))
}

// ParseCurrency accepts an ISO 4217 code of a supported currency.
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("parse currency %q: %w", code, err)
	}
	switch c := Currency(unit.String()); c {
	case USD, EUR, RUB:
		return c, nil
	}
	return "", fmt.Errorf("currency %s is not supported", unit)
}

// Month names for the languages dates are localized in. Anything else
// falls back to English.
var (
	dateLanguages = language.NewMatcher([]language.Tag{language.English, language.Russian})

	// Genitive abbreviations, as in "19 окт. 2026 г.".
	ruShortMonths = [...]string{"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."}
	ruMonths      = [...]string{"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь", "Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"}
)

type Formatter struct {
	printer  *message.Printer
	currency Currency
	russian  bool
}

func NewFormatter(lang language.Tag, cur Currency) *Formatter {
	_, i, _ := dateLanguages.Match(lang)
	return &Formatter{printer: message.NewPrinter(lang), currency: cur, russian: i == 1}
}

func (f *Formatter) Currency() Currency {
	return f.currency
}

// Money formats amount with the currency symbol, e.g. "$1,074.00".
func (f *Formatter) Money(amount decimal.Decimal) string {
	return f.currency.Symbol() + f.amount(amount)
}

// MoneyCode uses the ISO code instead of the symbol, e.g. "USD 1,074.00".
func (f *Formatter) MoneyCode(amount decimal.Decimal) string {
	return string(f.currency) + " " + f.amount(amount)
}

func (f *Formatter) amount(amount decimal.Decimal) string {
	scale, _ := currency.Standard.Rounding(f.currency.Unit())
	rounded := amount.Round(int32(scale))
	return f.printer.Sprintf("%v", number.Decimal(rounded.InexactFloat64(), number.Scale(scale)))
}

// Date uses the medium date style of the language, e.g. "Oct 19, 2026" or
// "19 окт. 2026 г.".
func (f *Formatter) Date(t time.Time) string {
	if f.russian {
		return fmt.Sprintf("%d %s %d г.", t.Day(), ruShortMonths[t.Month()-1], t.Year())
	}
	return t.Format("Jan 2, 2006")
}

// MonthTitle is the header of a guestbook section, e.g. "October 2026".
func (f *Formatter) MonthTitle(key guestbook.MonthKey) string {
	if f.russian {
		return fmt.Sprintf("%s %d", ruMonths[key.Month-1], key.Year)
	}
	return fmt.Sprintf("%s %d", key.Month, key.Year)
}
