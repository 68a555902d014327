package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Runner": {
		"pt": "Corredor",
		"es": "Corredor",
		"ru": "Бегун",
	},
	"Theme": {
		"pt": "Tema",
		"es": "Tema",
		"ru": "Тема",
	},
	"System": {
		"pt": "Sistema",
		"es": "Sistema",
		"ru": "Системная",
	},
	"Light": {
		"pt": "Claro",
		"es": "Claro",
		"ru": "Светлая",
	},
	"Dark": {
		"pt": "Escuro",
		"es": "Oscuro",
		"ru": "Тёмная",
	},
	"Max speed": {
		"pt": "Velocidade máxima",
		"es": "Velocidad máxima",
		"ru": "Макс. скорость",
	},
	"Run at startup": {
		"pt": "Iniciar com o sistema",
		"es": "Iniciar con el sistema",
		"ru": "Запускать при входе",
	},
	"Open Task Manager": {
		"pt": "Abrir Gerenciador de Tarefas",
		"es": "Abrir Administrador de tareas",
		"ru": "Открыть диспетчер задач",
	},
	"Exit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("RUNCAT_LANG")); forcedLang != "" {
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}

	switch userLocale := userLocales[0]; {
	case strings.HasPrefix(userLocale, "pt"):
		lang = "pt"
	case strings.HasPrefix(userLocale, "es"):
		lang = "es"
	case strings.HasPrefix(userLocale, "ru"):
		lang = "ru"
	default:
		lang = "en"
	}
}

func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}
