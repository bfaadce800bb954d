package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/mcoot/arcade-go/internal/model"
)

//go:embed layout.html pages/*.html
var files embed.FS

// Each page gets its own template set: the shared layout plus the page's
// "content" block
var funcs = template.FuncMap{
	"addOne": func(i int) int { return i + 1 },
}

var pages = func() map[string]*template.Template {
	names := []string{"home", "login", "register", "leaderboard", "game"}

	sets := make(map[string]*template.Template, len(names))
	for _, name := range names {
		sets[name] = template.Must(template.New("layout.html").Funcs(funcs).ParseFS(files,
			"layout.html", fmt.Sprintf("pages/%s.html", name)))
	}
	return sets
}()

// Render writes the named page to w
func Render(w io.Writer, name string, data any) error {
	tmpl, ok := pages[name]
	if !ok {
		return fmt.Errorf("unknown page template: %s", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// FlashMessage is a one-shot notification shown on the next page load
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData carries the fields every page layout needs
type PageData struct {
	Title    string
	LoggedIn bool
	Username string
	Flash    *FlashMessage
}

// HomeData is the data for the home page
type HomeData struct {
	PageData
	Games []model.Game
}

// LoginData is the data for the login page
type LoginData struct {
	PageData
	Username string
	Error    string
}

// RegisterData is the data for the registration page
type RegisterData struct {
	PageData
	Username    string
	Error       string
	FieldErrors map[string]string
}

// LeaderboardData is the data for the leaderboard page
type LeaderboardData struct {
	PageData
	Games    []model.Game
	Selected model.Game
	Entries  []model.LeaderboardEntry
}

// GameData is the data for a game page shell
type GameData struct {
	PageData
	Game model.Game
}
