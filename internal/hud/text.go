package hud

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English catalog entry doubles as the key.
const (
	keyLife      = "Life: %d/%d"
	keyClearUses = "Kill Them All (%d uses left)"
	keyNoUses    = "No Uses Left"
	keyGameOver  = "Game Over"
)

var supported = []language.Tag{
	language.English,
	language.TraditionalChinese,
}

var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	entries := map[language.Tag][][2]string{
		language.English: {
			{keyLife, "Life: %d/%d"},
			{keyClearUses, "Kill Them All (%d uses left)"},
			{keyNoUses, "No Uses Left"},
			{keyGameOver, "Game Over"},
		},
		language.TraditionalChinese: {
			{keyLife, "生命：%d/%d"},
			{keyClearUses, "全部消滅（剩餘 %d 次）"},
			{keyNoUses, "已無剩餘次數"},
			{keyGameOver, "遊戲結束"},
		},
	}
	for tag, list := range entries {
		for _, e := range list {
			// SetString only fails on malformed tags, and these are constants.
			_ = b.SetString(tag, e[0], e[1])
		}
	}
	return b
}

// newPrinter returns a printer for the closest supported match to lang.
func newPrinter(lang string) (*message.Printer, error) {
	if lang == "" {
		lang = "en"
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("hud language %q: %w", lang, err)
	}
	_, idx, _ := language.NewMatcher(supported).Match(tag)
	return message.NewPrinter(supported[idx], message.Catalog(messages)), nil
}
