package export

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"workshop-service/internal/model"
)

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Informe Técnico N° {{.Order.ID}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #1f2937; margin: 32px; }
h1 { color: #1e40af; margin-bottom: 0; }
.subtitle { color: #6b7280; font-size: 11px; }
.order-ref { float: right; font-size: 18px; font-weight: bold; }
hr { border: none; border-top: 2px solid #1e40af; margin: 16px 0; }
h2 { font-size: 13px; }
.summary p { margin: 4px 0; }
.gallery figure { display: flex; gap: 16px; margin: 0 0 16px 0; page-break-inside: avoid; }
.gallery img { width: 220px; height: 165px; object-fit: cover; }
.gallery figcaption { font-size: 10px; font-style: italic; align-self: center; }
.signatures { display: flex; justify-content: space-between; margin-top: 70px; }
.signatures div { width: 40%; border-top: 1px solid #1f2937; padding-top: 4px; text-align: center; font-size: 10px; }
@media print { body { margin: 12mm; } }
</style>
</head>
<body>
<span class="order-ref">N° {{.Order.ID}}</span>
<h1>INFORME TÉCNICO DE SERVICIO</h1>
<p class="subtitle">{{.ShopName}} - Garantía de Calidad</p>
<hr>

<section class="summary">
<h2>RESUMEN DEL SERVICIO</h2>
<p>Vehículo: {{.Order.Motorcycle.Model}} ({{.Order.Motorcycle.Plate}}) &nbsp;&nbsp; Propietario: {{.Order.Owner.Name}}</p>
<p>Fecha Entrega: {{.CompletionDate}} &nbsp;&nbsp; Horas Técnicas: {{.Order.WorkHours}} horas</p>
</section>

<section>
<h2>DIAGNÓSTICO Y TRABAJO REALIZADO</h2>
<p>{{if .Order.TechnicianNotes}}{{.Order.TechnicianNotes}}{{else}}No se registraron notas técnicas adicionales.{{end}}</p>
</section>

{{if .Gallery}}
<section class="gallery">
<h2>EVIDENCIAS DEL PROCESO</h2>
{{range .Gallery}}<figure><img src="{{.Photo}}" alt="Avance"><figcaption>Ref: {{.Note}}<br>Fecha: {{.Time}}</figcaption></figure>
{{end}}</section>
{{end}}

<div class="signatures">
<div>Firma Jefe de Taller</div>
<div>Firma Cliente (Conformidad)</div>
</div>
</body>
</html>
`))

type galleryEntry struct {
	Photo template.URL
	Note  string
	Time  string
}

// TechnicalReportHTML renders the completion report for an order snapshot.
// The status gate (reports are only offered for completed orders) lives at
// the HTTP layer; the exporter renders whatever it is handed.
func TechnicalReportHTML(order model.Order) ([]byte, error) {
	gallery := make([]galleryEntry, 0, len(order.Updates))
	for _, update := range order.Updates {
		if update.Photo == "" {
			continue
		}
		gallery = append(gallery, galleryEntry{
			Photo: template.URL(update.Photo),
			Note:  update.Note,
			Time:  update.Timestamp.Format("02/01/2006 15:04"),
		})
	}

	completion := time.Now()
	if order.CompletionDate != nil {
		completion = *order.CompletionDate
	}

	data := struct {
		ShopName       string
		Order          model.Order
		CompletionDate string
		Gallery        []galleryEntry
	}{
		ShopName:       shopName,
		Order:          order,
		CompletionDate: completion.Format("02/01/2006"),
		Gallery:        gallery,
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render technical report: %w", err)
	}
	return buf.Bytes(), nil
}

func TechnicalReportFilename(order model.Order) string {
	return fmt.Sprintf("Informe_Tecnico_%s_%s.html", order.Motorcycle.Plate, order.ID)
}
