package api

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const DefaultLocale = "en-US"

// Message keys of the console catalog
const (
	keyGreeting          = "greeting"
	keyUserBoard         = "board.user"
	keyAIBoard           = "board.ai"
	keyUserMove          = "turn.user"
	keyAIMove            = "turn.ai"
	keyPrompt            = "input.prompt"
	keyAICoordinates     = "input.ai_coordinates"
	keyWrongTokenCount   = "input.wrong_token_count"
	keyNonNumeric        = "input.non_numeric"
	keyShotHit           = "shot.hit"
	keyShotDestroyed     = "shot.destroyed"
	keyShotMiss          = "shot.miss"
	keyShotOutOfBounds   = "shot.out_of_bounds"
	keyShotAlreadyTarget = "shot.already_targeted"
	keyUserWon           = "result.user_won"
	keyAIWon             = "result.ai_won"
)

var supportedLocales = []language.Tag{
	language.AmericanEnglish,
	language.Russian,
}

var catalogMessages = map[language.Tag]map[string]string{
	language.AmericanEnglish: {
		keyGreeting:          "Sea Battle\nEnter a target as two numbers: x y (x is the column, y is the row)",
		keyUserBoard:         "User board:",
		keyAIBoard:           "AI board:",
		keyUserMove:          "User move!",
		keyAIMove:            "AI move!",
		keyPrompt:            "Coordinates: ",
		keyAICoordinates:     "Coordinates: %d %d",
		keyWrongTokenCount:   "Enter 2 coordinates!",
		keyNonNumeric:        "Enter only numbers!",
		keyShotHit:           "Hit!",
		keyShotDestroyed:     "Ship destroyed!",
		keyShotMiss:          "Missed!",
		keyShotOutOfBounds:   "You're trying to shoot outside!",
		keyShotAlreadyTarget: "You have already shot this cell",
		keyUserWon:           "User won!",
		keyAIWon:             "AI won!",
	},
	language.Russian: {
		keyGreeting:          "Морской бой\nВведите цель двумя числами: x y (x - столбец, y - строка)",
		keyUserBoard:         "Доска пользователя:",
		keyAIBoard:           "Доска компьютера:",
		keyUserMove:          "Ходит пользователь!",
		keyAIMove:            "Ходит компьютер!",
		keyPrompt:            "Координаты: ",
		keyAICoordinates:     "Координаты: %d %d",
		keyWrongTokenCount:   "Введите 2 координаты!",
		keyNonNumeric:        "Введите только числа!",
		keyShotHit:           "Ранен!",
		keyShotDestroyed:     "Корабль уничтожен!",
		keyShotMiss:          "Мимо!",
		keyShotOutOfBounds:   "Вы пытаетесь выстрелить за пределы доски!",
		keyShotAlreadyTarget: "Вы уже стреляли в эту клетку",
		keyUserWon:           "Пользователь выиграл!",
		keyAIWon:             "Компьютер выиграл!",
	},
}

func init() {
	for tag, messages := range catalogMessages {
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

var localeMatcher = language.NewMatcher(supportedLocales)

// newPrinter picks the closest supported locale. Locales with no
// reasonable match are rejected rather than silently shown in English.
func newPrinter(locale string) (*message.Printer, error) {
	requested, err := language.Parse(locale)
	if err != nil {
		return nil, cerr.ErrUnsupportedLocale(locale)
	}

	_, index, confidence := localeMatcher.Match(requested)
	if confidence == language.No {
		return nil, cerr.ErrUnsupportedLocale(locale)
	}
	return message.NewPrinter(supportedLocales[index]), nil
}
