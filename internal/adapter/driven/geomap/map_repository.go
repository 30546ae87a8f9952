package geomap

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/buildops-audit-go/internal/domain/entity"
	"github.com/diillson/buildops-audit-go/internal/domain/repository"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

const defaultZoom = 6

// MapRepositoryImpl renders property maps as standalone Leaflet pages.
type MapRepositoryImpl struct {
	tmpl *template.Template
}

// NewMapRepository cria uma nova implementação do MapRepository.
func NewMapRepository() repository.MapRepository {
	return &MapRepositoryImpl{tmpl: template.Must(template.New("map").Parse(mapTemplate))}
}

// Filename returns the file name used for a state's map.
func Filename(state string) (string, error) {
	state = strings.TrimSpace(state)
	if state == "" || strings.ContainsAny(state, `/\`) || strings.Contains(state, "..") {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidState, state)
	}
	return fmt.Sprintf("properties_%s.html", state), nil
}

// WritePropertyMap writes <outputDir>/properties_<state>.html, replacing any previous file.
func (r *MapRepositoryImpl) WritePropertyMap(m entity.PropertyMap, outputDir string) (string, error) {
	name, err := Filename(m.State)
	if err != nil {
		return "", err
	}
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", outputDir, err)
	}

	zoom := defaultZoom
	if len(m.Markers) == 0 {
		zoom = 4
	}

	var buf bytes.Buffer
	err = r.tmpl.Execute(&buf, struct {
		entity.PropertyMap
		Zoom int
	}{m, zoom})
	if err != nil {
		return "", fmt.Errorf("error rendering map: %w", err)
	}

	path := filepath.Join(outputDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("error writing map file: %w", err)
	}
	return filepath.Abs(path)
}

const mapTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Properties in {{.State}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var center = {{.Center}};
var markers = {{.Markers}};
var map = L.map("map").setView(center, {{.Zoom}});
L.tileLayer("https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", {
  maxZoom: 19,
  attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);
markers.forEach(function (m) {
  var popup = document.createElement("div");
  var title = document.createElement("strong");
  title.textContent = m.property_name;
  popup.appendChild(title);
  popup.appendChild(document.createElement("br"));
  popup.appendChild(document.createTextNode(m.address));
  L.marker([m.latitude, m.longitude]).addTo(map).bindPopup(popup);
});
</script>
</body>
</html>
`
