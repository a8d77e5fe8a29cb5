package domain

import "fmt"

// ChartID names one chart of the analytics view.
type ChartID string

const (
	ChartContaminant ChartID = "contaminant"
	ChartPH          ChartID = "ph"
	ChartTurbidity   ChartID = "turbidity"
	ChartOxygen      ChartID = "oxygen"
	ChartNitrate     ChartID = "nitrate"
	ChartDisease     ChartID = "disease"
	ChartSanitation  ChartID = "sanitation"
)

// ChartInfo is the heading and interpretive caption shown with a chart.
type ChartInfo struct {
	ID      ChartID
	Title   string
	Caption string
	Metrics []Metric
}

// Charts lists the analytics charts in page order. Captions are fixed
// editorial text.
var Charts = []ChartInfo{
	{
		ID:      ChartContaminant,
		Title:   "Level Kontaminan (ppm)",
		Caption: "Level kontaminan cenderung meningkat/turun seiring waktu dapat menunjukkan perubahan kualitas sumber air. Tahun-tahun dengan lonjakan signifikan perlu ditelusuri penyebabnya",
		Metrics: []Metric{MetricContaminant},
	},
	{
		ID:      ChartPH,
		Title:   "Level pH Air",
		Caption: "pH air normal berkisar antara 6.5 - 8.5. Penyimpangan dari rentang ini dapat berbahaya bagi makhluk hidup air dan menunjukkan adanya pencemaran kimia",
		Metrics: []Metric{MetricPH},
	},
	{
		ID:      ChartTurbidity,
		Title:   "Tingkat Kekeruhan (NTU)",
		Caption: "Tingkat kekeruhan yang tinggi menunjukkan partikel tersuspensi dalam air yang bisa berasal dari limbah, tanah longsor, atau aktivitas manusia seperti tambang",
		Metrics: []Metric{MetricTurbidity},
	},
	{
		ID:      ChartOxygen,
		Title:   "Oksigen Terlarut (mg/L)",
		Caption: "Kadar oksigen terlarut di bawah 5 mg/L dapat menyebabkan stres bagi kehidupan akuatik. Penurunan tajam bisa mengindikasikan eutrofikasi atau pencemaran organik",
		Metrics: []Metric{MetricDissolvedOxygen},
	},
	{
		ID:      ChartNitrate,
		Title:   "Kadar Nitrat (mg/L)",
		Caption: "Nitrat tinggi dapat berasal dari pupuk pertanian dan limbah domestik. Jika kadarnya tinggi, dapat menyebabkan masalah kesehatan seperti 'blue baby syndrome'",
		Metrics: []Metric{MetricNitrate},
	},
	{
		ID:      ChartDisease,
		Title:   "Jumlah Kasus Penyakit per 100.000 Penduduk",
		Caption: "Hal ini dapat dikaitkan dengan kualitas air buruk dan sanitasi yang kurang memadai di wilayah tersebut",
		Metrics: []Metric{MetricDiarrheal, MetricCholera, MetricTyphoid},
	},
	{
		ID:      ChartSanitation,
		Title:   "Akses Sanitasi dan Air Bersih (% Populasi)",
		Caption: "Meningkatnya akses terhadap air bersih dan sanitasi yang layak berkorelasi dengan penurunan kasus penyakit berbasis air. Program peningkatan infrastruktur sangat krusial",
		Metrics: []Metric{MetricCleanWaterAccess, MetricSanitationCoverage},
	},
}

// LookupChart finds a chart by id.
func LookupChart(id ChartID) (ChartInfo, bool) {
	for _, c := range Charts {
		if c.ID == id {
			return c, true
		}
	}
	return ChartInfo{}, false
}

// DiseaseHeadline introduces the disease caption with the year and the top disease.
func DiseaseHeadline(year int, top string) string {
	return fmt.Sprintf("Data tahun %d menunjukkan penyakit terbanyak adalah %s.", year, top)
}

// DiseaseChartTitle is the title drawn on the disease ranking chart.
func DiseaseChartTitle(year int) string {
	return fmt.Sprintf("Jumlah Kasus Penyakit di Tahun %d", year)
}
