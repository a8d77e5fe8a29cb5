package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/couchcryptid/ocean-defender/internal/dashboard"
	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/couchcryptid/ocean-defender/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = map[domain.View]*template.Template{
	domain.ViewHome:      parsePage("home.html"),
	domain.ViewAbout:     parsePage("tentang.html"),
	domain.ViewAnalytics: parsePage("visualisasi.html"),
	domain.ViewArticles:  parsePage("artikel.html"),
	domain.ViewMap:       parsePage("peta.html"),
}

func parsePage(name string) *template.Template {
	return template.Must(template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

// Messages shown on the home view.
const (
	msgSubmitted      = "Laporan berhasil dikirim!"
	msgIncomplete     = "Harap lengkapi semua kolom!"
	msgBadPhotoFormat = "Format foto harus jpg, jpeg, atau png."
	msgPhotoTooLarge  = "Ukuran foto terlalu besar."
	msgSubmitFailed   = "Laporan gagal disimpan, silakan coba lagi."
	msgFeedFailed     = "Daftar laporan tidak dapat dimuat."
)

type menuItem struct {
	Label  string
	URL    string
	Active bool
}

type article struct {
	Icon  string
	Title string
	URL   string
}

var articles = []article{
	{Icon: "🐠", Title: "Mengapa Laut Kita Harus Bersih?", URL: "https://sains.kompas.com/read/2019/09/24/180000623/5-alasan-mengapa-kita-wajib-menjaga-lautan?page=all"},
	{Icon: "🛢️", Title: "Dampak Pencemaran Minyak di Laut", URL: "https://portacademy.id/jenis-jenis-minyak-dan-dampaknya-terhadap-lingkungan-laut/"},
	{Icon: "♻️", Title: "Solusi Penanganan Sampah Laut", URL: "https://kumparan.com/nuki-pratama/upaya-mengatasi-sampah-di-laut-20xwQnvF54N"},
	{Icon: "🧪", Title: "Ekosistem Laut dan Perubahan Iklim", URL: "https://www.eea.europa.eu/publications/how-climate-change-impacts"},
}

type homeData struct {
	Feed        report.Feed
	Location    string
	Description string
	Success     string
	Error       string
}

type pageData struct {
	Title     string
	MenuTitle string
	Menu      []menuItem
	Warning   string
	Home      *homeData
	Analytics *dashboard.AnalyticsPage
	Map       *dashboard.MapPage
	Articles  []article
}

func newPageData(view domain.View) pageData {
	menu := make([]menuItem, len(domain.Menu))
	for i, v := range domain.Menu {
		menu[i] = menuItem{Label: v.Label(), URL: viewURL(v), Active: v == view}
	}
	return pageData{Title: view.Label(), MenuTitle: domain.MenuTitle, Menu: menu}
}

func viewURL(v domain.View) string {
	if v == domain.ViewHome {
		return "/"
	}
	return "/?" + url.Values{"menu": {string(v)}}.Encode()
}

// render executes a view template into a buffer first so a template error
// still yields a clean 500.
func (s *Server) render(w http.ResponseWriter, status int, view domain.View, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplates[view].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Error("render page failed", "view", view, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.metrics.ViewRenders.WithLabelValues(string(view)).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
