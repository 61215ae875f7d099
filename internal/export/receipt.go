package export

import (
	"bytes"
	"fmt"
	"html/template"

	"workshop-service/internal/model"
)

const shopName = "BELMOTOS-TALLER"

// serviceConditions is the fixed legal paragraph printed on every intake
// receipt, above the signature lines.
var serviceConditions = []string{
	"En caso de incendio, accidentes, terremotos, la empresa no responderá por los desperfectos ocasionados a la motocicleta, ni por los objetos dejados en ella.",
	"Todos los trabajos realizados a la motocicleta deberán ser cancelados en el momento de su retiro.",
	"En el caso que la reparación necesite de la preparación de un presupuesto, una vez dado a conocer se otorga un plazo de 24 horas para autorizar o no el mismo, y el cliente en el segundo de los casos deberá retirar la motocicleta al vencer el mismo plazo.",
	"Se entiende que quien contrata y ordena el trabajo descrito, es el propietario de la motocicleta, o está autorizado por el propietario quien conoce y acepta estas condiciones que son parte integrante del contrato que se celebra y que consta en este documento.",
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.ShopName}} - Recepción #{{.Order.ID}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #1f2937; margin: 32px; }
h1 { color: #059669; margin-bottom: 0; }
.subtitle { color: #6b7280; font-size: 11px; }
.order-ref { float: right; font-size: 16px; font-weight: bold; }
.status { display: inline-block; background: #f5f5f5; border-radius: 4px; padding: 2px 8px; font-size: 10px; text-transform: uppercase; }
section { margin-top: 18px; }
h2 { font-size: 12px; border-bottom: 1px solid #e5e7eb; padding-bottom: 4px; }
.columns { display: flex; gap: 40px; }
.columns > div { flex: 1; }
.checklist { columns: 3; font-size: 9px; }
.checklist li { break-inside: avoid; list-style: none; }
.conditions { font-size: 9px; font-style: italic; color: #78350f; }
.photos img { width: 280px; height: 200px; object-fit: cover; margin-right: 12px; }
.photos figcaption { font-size: 9px; font-style: italic; }
.signatures { display: flex; justify-content: space-between; margin-top: 60px; }
.signatures div { width: 40%; border-top: 1px solid #1f2937; padding-top: 4px; text-align: center; font-size: 10px; }
@media print { body { margin: 12mm; } }
</style>
</head>
<body>
<span class="order-ref">ORDEN: #{{.Order.ID}} <span class="status">{{.Order.Status}}</span></span>
<h1>{{.ShopName}}</h1>
<p class="subtitle">Control Profesional de Recepción y Servicio</p>

<section>
<h2>CONTROL PROFESIONAL DE RECEPCIÓN</h2>
<p>Fecha Ingreso: {{.EntryDate}} &nbsp;&nbsp; Tipo de Operación: {{.Order.OperationType}}</p>
<div class="columns">
<div>
<h2>DATOS DEL PROPIETARIO</h2>
<p>Nombre: {{.Order.Owner.Name}}<br>
CI/RIF: {{.Order.Owner.IDNumber}}<br>
Teléfono: {{.Order.Owner.Phone}}<br>
Email: {{.Order.Owner.Email}}</p>
</div>
<div>
<h2>DATOS DEL VEHÍCULO</h2>
<p>Modelo: {{.Order.Motorcycle.Model}}<br>
Placa: {{.Order.Motorcycle.Plate}}<br>
Kilometraje: {{.Order.Motorcycle.Mileage}} KM<br>
Año: {{.Order.Motorcycle.Year}} | Color: {{.Order.Motorcycle.Color}}<br>
Serial Chasis: {{.Order.Motorcycle.ChassisSerial}}<br>
Serial Motor: {{.Order.Motorcycle.EngineSerial}}</p>
</div>
</div>
</section>

<section>
<h2>INVENTARIO Y ESTADO FÍSICO</h2>
<ul class="checklist">
{{range .Checklist}}<li>{{if .Checked}}[OK]{{else}}[X]{{end}} {{.Item}}</li>
{{end}}</ul>
</section>

<section>
<h2>REPORTE DEL CLIENTE</h2>
<p>{{if .Order.ClientReport}}{{.Order.ClientReport}}{{else}}Sin reporte específico.{{end}}</p>
<h2>OBSERVACIONES GENERALES</h2>
<p>{{if .Order.Observations}}{{.Order.Observations}}{{else}}Sin observaciones adicionales.{{end}}</p>
</section>

{{if or .PhotoVehicle .PhotoChassis}}
<section class="photos">
<h2>EVIDENCIAS FOTOGRÁFICAS DE INGRESO</h2>
{{if .PhotoVehicle}}<figure><img src="{{.PhotoVehicle}}" alt="Vehículo"><figcaption>Vista General del Vehículo</figcaption></figure>{{end}}
{{if .PhotoChassis}}<figure><img src="{{.PhotoChassis}}" alt="Serial"><figcaption>Foto Serial de Chasis / Motor</figcaption></figure>{{end}}
</section>
{{end}}

<section class="conditions">
<h2>CONDICIONES DEL SERVICIO</h2>
{{range .Conditions}}<p>{{.}}</p>
{{end}}</section>

<div class="signatures">
<div>Recibido por Taller (Firma y Sello)</div>
<div>Firma del Propietario</div>
</div>
</body>
</html>
`))

type checklistMark struct {
	Item    string
	Checked bool
}

// ReceiptHTML renders the intake receipt for an order snapshot. It never
// mutates the order.
func ReceiptHTML(order model.Order) ([]byte, error) {
	marks := make([]checklistMark, 0, len(order.Checklist))
	for _, item := range model.ChecklistItems() {
		checked, ok := order.Checklist[item]
		if !ok {
			continue
		}
		marks = append(marks, checklistMark{Item: item, Checked: checked})
	}

	// Photos are shop-captured base64 data URLs; html/template would
	// otherwise reject the data: scheme in src attributes.
	data := struct {
		ShopName     string
		Order        model.Order
		EntryDate    string
		Checklist    []checklistMark
		Conditions   []string
		PhotoVehicle template.URL
		PhotoChassis template.URL
	}{
		ShopName:     shopName,
		Order:        order,
		EntryDate:    order.EntryDate.Format("02/01/2006 15:04"),
		Checklist:    marks,
		Conditions:   serviceConditions,
		PhotoVehicle: template.URL(order.PhotoVehicle),
		PhotoChassis: template.URL(order.PhotoChassis),
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

// ReceiptFilename keeps the shop's historical artifact naming.
func ReceiptFilename(order model.Order) string {
	return fmt.Sprintf("BELMOTOS_Recepcion_%s_%s.html", order.Motorcycle.Plate, order.ID)
}
