// Package domain models community pollution reports and the regional
// water-quality dataset shown on the OceanDefender dashboard.
//
// # Report Log
//
// Reports are kept in a flat CSV log with the header
//
//	Tanggal,Lokasi,Deskripsi,Foto
//
// Tanggal is the submission day formatted as YYYY-MM-DD. Foto is the bare
// name of a file in the photo archive, or empty when no photo was uploaded.
// Logs written before photos were supported have no Foto column; such rows
// load with an empty photo name. Row order is submission order and is the
// only identity a report has.
//
// Photo names follow
//
//	<YYYYMMDDHHMMSS>_<location with spaces as underscores><extension>
//
// e.g. "20240426151000_Pantai_Kuta.jpg". Two uploads for the same location
// within the same second collide; the later one overwrites the earlier file.
//
// # Water-Quality Dataset
//
// The dataset is an externally supplied CSV with one row per
// (country, region, year). Columns are located by header name, see
// [WaterQualityColumns]. Only rows whose Country equals the configured
// country (case-insensitive) are shown.
//
// Charts aggregate by year: when a region has more than one row for a
// year, the series value is the mean of those rows.
//
// # Regions
//
// The map places each region at a fixed approximate coordinate:
//
//	Central: -7.5, 110.0   West: -0.5, 101.5   East: -3.0, 129.0
//
// Regions outside this table are left off the map (see [UnrecognizedRegionError]).
package domain
