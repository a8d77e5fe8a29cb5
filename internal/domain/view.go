package domain

// View is the menu entry a visitor has selected.
type View string

const (
	ViewHome      View = "home"
	ViewAbout     View = "tentang"
	ViewAnalytics View = "visualisasi"
	ViewArticles  View = "artikel"
	ViewMap       View = "peta"
)

// MenuTitle heads the navigation menu.
const MenuTitle = "OceanDefender"

// Menu lists the views in navigation order.
var Menu = []View{ViewHome, ViewAbout, ViewAnalytics, ViewArticles, ViewMap}

// Label is the menu caption of the view.
func (v View) Label() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewAbout:
		return "Tentang"
	case ViewAnalytics:
		return "Visualisasi Data"
	case ViewArticles:
		return "Artikel Edukatif"
	case ViewMap:
		return "Peta"
	default:
		return string(v)
	}
}

// SelectView maps a requested menu value to a view. Unknown or empty values select Home.
func SelectView(s string) View {
	for _, v := range Menu {
		if string(v) == s {
			return v
		}
	}
	return ViewHome
}
