package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshop-service/internal/model"
)

func exportOrder() model.Order {
	entry := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	completion := entry.Add(72 * time.Hour)
	return model.Order{
		ID:             "100045",
		EntryDate:      entry,
		CompletionDate: &completion,
		Status:         model.StatusCompleted,
		OperationType:  model.OperationRepair,
		Owner:          model.Owner{Name: "Rosa Delgado", IDNumber: "V-18.220.104", Phone: "0416-3312288", Email: "rosa@example.com"},
		Motorcycle: model.Motorcycle{
			Plate: "AB123CD", Model: "Suzuki GN 125", Year: "2019", Color: "Rojo",
			Mileage: "40210", ChassisSerial: "LC6PAGA1", EngineSerial: "F402-11",
		},
		Checklist: map[string]bool{
			"Nivel de aceite": true,
			"Llaves":          false,
		},
		ClientReport:    "Pérdida de potencia en subidas",
		Observations:    "Espejo izquierdo flojo",
		TechnicianNotes: "Se reemplazó el kit de arrastre completo",
		WorkHours:       4,
		EstimatedCost:   310.5,
		PhotoVehicle:    "data:image/jpeg;base64,dmVoaWNsZQ==",
		Updates: []model.ProgressUpdate{
			{Timestamp: entry.Add(24 * time.Hour), Note: "Desmontaje de rueda trasera", Photo: "data:image/jpeg;base64,Zm90bzE="},
			{Timestamp: entry.Add(48 * time.Hour), Note: "Kit de arrastre nuevo instalado", Photo: "data:image/jpeg;base64,Zm90bzI="},
		},
	}
}

func TestReceiptHTML(t *testing.T) {
	order := exportOrder()

	out, err := ReceiptHTML(order)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "BELMOTOS-TALLER")
	assert.Contains(t, html, "#100045")
	assert.Contains(t, html, "Rosa Delgado")
	assert.Contains(t, html, "AB123CD")
	assert.Contains(t, html, "[OK] Nivel de aceite")
	assert.Contains(t, html, "[X] Llaves")
	assert.Contains(t, html, "Pérdida de potencia en subidas")
	assert.Contains(t, html, "CONDICIONES DEL SERVICIO")
	assert.Contains(t, html, "Firma del Propietario")
	assert.Contains(t, html, "data:image/jpeg;base64,dmVoaWNsZQ==", "intake photo embedded, not sanitized away")
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestReceiptHTMLDefaultsForEmptyTexts(t *testing.T) {
	order := exportOrder()
	order.ClientReport = ""
	order.Observations = ""
	order.PhotoVehicle = ""

	out, err := ReceiptHTML(order)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Sin reporte específico.")
	assert.Contains(t, html, "Sin observaciones adicionales.")
	assert.NotContains(t, html, "Vista General del Vehículo")
}

func TestReceiptHTMLEscapesUserText(t *testing.T) {
	order := exportOrder()
	order.Owner.Name = `<script>alert("x")</script>`

	out, err := ReceiptHTML(order)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>alert")
}

func TestTechnicalReportHTML(t *testing.T) {
	order := exportOrder()

	out, err := TechnicalReportHTML(order)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "INFORME TÉCNICO DE SERVICIO")
	assert.Contains(t, html, "N° 100045")
	assert.Contains(t, html, "Se reemplazó el kit de arrastre completo")
	assert.Contains(t, html, "Ref: Desmontaje de rueda trasera")
	assert.Contains(t, html, "Ref: Kit de arrastre nuevo instalado")
	assert.Contains(t, html, "data:image/jpeg;base64,Zm90bzE=")
	assert.Contains(t, html, "Firma Cliente (Conformidad)")
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestTechnicalReportHTMLWithoutUpdates(t *testing.T) {
	order := exportOrder()
	order.Updates = nil
	order.TechnicianNotes = ""

	out, err := TechnicalReportHTML(order)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "No se registraron notas técnicas adicionales.")
	assert.NotContains(t, html, "EVIDENCIAS DEL PROCESO")
}

func TestCSV(t *testing.T) {
	orders := []model.Order{exportOrder()}

	out, err := CSV(orders)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, csvHeader, records[0])
	row := records[1]
	assert.Equal(t, "100045", row[0])
	assert.Equal(t, "AB123CD", row[2])
	assert.Equal(t, "Suzuki GN 125", row[3])
	assert.Equal(t, "Rosa Delgado", row[4])
	assert.Equal(t, string(model.OperationRepair), row[5])
	assert.Equal(t, string(model.StatusCompleted), row[6])
	assert.Equal(t, "4", row[7])
	assert.Equal(t, "310.5", row[8])
}

func TestCSVEmptyCollection(t *testing.T) {
	out, err := CSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Len(t, lines, 1, "header only")
}

func TestFilenames(t *testing.T) {
	order := exportOrder()
	assert.Equal(t, "BELMOTOS_Recepcion_AB123CD_100045.html", ReceiptFilename(order))
	assert.Equal(t, "Informe_Tecnico_AB123CD_100045.html", TechnicalReportFilename(order))
	assert.True(t, strings.HasPrefix(CSVFilename(), "BELMOTOS_Ordenes_"))
}
