package render

import (
	"errors"
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/words"
)

// English text is the message key; only the Spanish side needs an entry.
var spanish = [][2]string{
	{"Impostor", "Impostor"},
	{"Players", "Jugadores"},
	{"Impostors", "Impostores"},
	{"Categories", "Categorías"},
	{"%d of %d selected", "%d de %d seleccionadas"},
	{"Custom words", "Palabras propias"},
	{"Majority word", "Palabra mayoritaria"},
	{"Impostor word", "Palabra del impostor"},
	{"Start game", "Empezar partida"},
	{"Dark mode", "Modo oscuro"},
	{"Sound", "Sonido"},
	{"Language", "Idioma"},
	{"Reset settings", "Restablecer ajustes"},
	{"Back", "Volver"},
	{"Select all", "Seleccionar todas"},
	{"Select none", "Ninguna"},
	{"Built-in", "Incluida"},
	{"Custom", "Personalizada"},
	{"%d pairs", "%d parejas"},
	{"New category", "Nueva categoría"},
	{"Name", "Nombre"},
	{"Create", "Crear"},
	{"Edit", "Editar"},
	{"Save", "Guardar"},
	{"Search", "Buscar"},
	{"Preview", "Vista previa"},
	{"Delete", "Eliminar"},
	{"Add pairs", "Añadir parejas"},
	{"Player %d of %d", "Jugador %d de %d"},
	{"Player %d", "Jugador %d"},
	{"Tap to see your word", "Toca para ver tu palabra"},
	{"Your word", "Tu palabra"},
	{"Hide", "Ocultar"},
	{"Pass the phone to player %d", "Pasa el móvil al jugador %d"},
	{"Next player", "Siguiente jugador"},
	{"Start discussion", "Empezar debate"},
	{"Discussion", "Debate"},
	{"Start timer", "Iniciar temporizador"},
	{"Pause", "Pausar"},
	{"Resume", "Reanudar"},
	{"Stop", "Parar"},
	{"Skip timer", "Saltar temporizador"},
	{"Time's up!", "¡Se acabó el tiempo!"},
	{"Show results", "Ver resultados"},
	{"Challenge done", "Reto completado"},
	{"Results", "Resultados"},
	{"The category was", "La categoría era"},
	{"The impostors were", "Los impostores eran"},
	{"Majority", "Mayoría"},
	{"Play again", "Jugar otra vez"},
	{"New game", "Nueva partida"},
	{"Scan to open on another device", "Escanea para abrir en otro dispositivo"},
	{"At least 3 players are required.", "Se necesitan al menos 3 jugadores."},
	{"At least 1 impostor is required.", "Se necesita al menos 1 impostor."},
	{"Too many impostors for the number of players.", "Demasiados impostores para el número de jugadores."},
	{"Enter both custom words.", "Escribe las dos palabras."},
	{"The two words must be different.", "Las dos palabras deben ser distintas."},
	{"No word pairs are available.", "No hay parejas de palabras disponibles."},
	{"Enter a category name.", "Escribe un nombre de categoría."},
	{"A category with that name already exists.", "Ya existe una categoría con ese nombre."},
	{"Add at least 3 complete pairs.", "Añade al menos 3 parejas completas."},
	{"Add at least one complete pair.", "Añade al menos una pareja completa."},
	{"That category no longer exists.", "Esa categoría ya no existe."},
	{"Built-in categories cannot be changed.", "Las categorías incluidas no se pueden cambiar."},
	{"Something went wrong.", "Algo salió mal."},
}

func init() {
	for _, t := range spanish {
		if err := message.SetString(language.Spanish, t[0], t[1]); err != nil {
			log.Printf("ERROR: registering translation %q: %v", t[0], err)
		}
	}
}

func printer(lang string) *message.Printer {
	return message.NewPrinter(language.Make(lang))
}

// ErrorMessage returns the user-facing text for an error from the session
func ErrorMessage(lang string, err error) string {
	p := printer(lang)
	switch {
	case errors.Is(err, game.ErrTooFewPlayers):
		return p.Sprintf("At least 3 players are required.")
	case errors.Is(err, game.ErrTooFewImpostors):
		return p.Sprintf("At least 1 impostor is required.")
	case errors.Is(err, game.ErrTooManyImpostors):
		return p.Sprintf("Too many impostors for the number of players.")
	case errors.Is(err, game.ErrCustomEmpty):
		return p.Sprintf("Enter both custom words.")
	case errors.Is(err, game.ErrCustomSame):
		return p.Sprintf("The two words must be different.")
	case errors.Is(err, words.ErrNoContent):
		return p.Sprintf("No word pairs are available.")
	case errors.Is(err, words.ErrNameRequired):
		return p.Sprintf("Enter a category name.")
	case errors.Is(err, words.ErrNameTaken):
		return p.Sprintf("A category with that name already exists.")
	case errors.Is(err, words.ErrTooFewPairs):
		return p.Sprintf("Add at least 3 complete pairs.")
	case errors.Is(err, words.ErrNoPairs):
		return p.Sprintf("Add at least one complete pair.")
	case errors.Is(err, words.ErrUnknownCategory):
		return p.Sprintf("That category no longer exists.")
	case errors.Is(err, words.ErrNotCustom):
		return p.Sprintf("Built-in categories cannot be changed.")
	}
	return p.Sprintf("Something went wrong.")
}
