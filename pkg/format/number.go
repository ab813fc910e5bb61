package format

import (
	"log/slog"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberFormatter renders decimal numbers with a locale's digit grouping
// and decimal separator.
type numberFormatter struct {
	printer *message.Printer
	opts    []number.Option
}

func (f numberFormatter) format(v float64) string {
	return f.printer.Sprint(number.Decimal(v, f.opts...))
}

// FormatNumber formats v using the locale's number conventions.
// Recognized options: "minimumFractionDigits", "maximumFractionDigits",
// "style" ("percent" renders v as a percentage).
func (c *Cache) FormatNumber(locale string, v float64, opts Options) string {
	f := c.numbers.GetOrSet(Key(locale, opts), func() numberFormatter {
		var nopts []number.Option
		if minDigits, ok := optInt(opts, "minimumFractionDigits"); ok {
			nopts = append(nopts, number.MinFractionDigits(minDigits))
		}
		if maxDigits, ok := optInt(opts, "maximumFractionDigits"); ok {
			nopts = append(nopts, number.MaxFractionDigits(maxDigits))
		}
		return numberFormatter{
			printer: message.NewPrinter(c.tag(locale)),
			opts:    nopts,
		}
	})

	if style, _ := optString(opts, "style"); style == "percent" {
		return f.printer.Sprint(number.Percent(v, f.opts...))
	}
	return f.format(v)
}

// currencyFormatter renders monetary amounts with a currency symbol in
// the locale's conventions.
type currencyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

func (f currencyFormatter) format(v float64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(v)))
}

// FormatCurrency formats an amount with the given ISO 4217 currency code
// under the locale's conventions. An empty or unknown code falls back to
// USD with a logged warning.
func (c *Cache) FormatCurrency(locale string, v float64, code string) string {
	if code == "" {
		code = "USD"
	}

	f := c.currencies.GetOrSet(Key(locale, Options{"currency": code}), func() currencyFormatter {
		unit, err := currency.ParseISO(code)
		if err != nil {
			c.log.Warn("unknown currency code, using USD",
				slog.String("code", code),
				slog.String("error", err.Error()))
			unit = currency.USD
		}
		return currencyFormatter{
			printer: message.NewPrinter(c.tag(locale)),
			unit:    unit,
		}
	})

	return f.format(v)
}
