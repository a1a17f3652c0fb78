package usecase

import (
	"bytes"
	"html/template"
)

// popupTemplate экранирует заголовок, описание и ссылки через html/template
var popupTemplate = template.Must(template.New("popup").Parse(
	`<div class="map-popup">` +
		`<h4>{{.Title}}</h4>` +
		`{{if .Image}}<img src="{{.Image}}" alt="{{.Title}}" onerror="this.src='/static/default-image.svg'">{{end}}` +
		`<p>{{.Description}}</p>` +
		`<a href="{{.Link}}" target="_blank">En savoir plus</a>` +
		`</div>`))

type popupData struct {
	Title       string
	Description string
	Image       string
	Link        string
}

func renderPopup(d popupData) (string, error) {
	var buf bytes.Buffer
	if err := popupTemplate.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
