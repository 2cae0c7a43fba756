package translate

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LOCALE_ENV overrides the system locale list when set.
const LOCALE_ENV = "ISACORE_LANG"

var printer *message.Printer

func init() {
	var locales []string

	if env := os.Getenv(LOCALE_ENV); env != "" {
		locales = strings.Split(env, ":")
	} else {
		var err error
		locales, err = locale.GetLocales()
		if err != nil {
			log.Printf("isacore: locale: %v", err)
		}
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
