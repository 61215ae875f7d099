package model

// ChecklistCategory groups the intake inspection items the way they appear
// on the shop's paper sheet. The taxonomy is fixed: items are never added
// or removed from an order's checklist after creation.
type ChecklistCategory struct {
	Category string
	Items    []string
}

var ChecklistData = []ChecklistCategory{
	{
		Category: "INSPECCIÓN FÍSICA",
		Items: []string{
			"Tanque de gasolina acoplado", "Tapa de tanque de gasolina", "Línea de combustible al carburador",
			"Posa pies funcionales", "Pedal de freno", "Tapas laterales acoplados",
			"Guarda barro delantero acoplado", "Guardabarros trasero acoplado", "Asiento acoplado",
			"Base del motor aseguradas", "Tubo de escape acoplado", "Pedal de arranque funcionado",
			"Base de la tijera ajustada con bujes colocados", "Amortiguadores ajustados",
			"Fundas de amortiguadores delanteros", "Parrilla trasera ajustada",
			"Manillas de acelerador y embrague", "Kit de arrastre (Cadena, piñón, corona)",
			"Placas (No tenerlas defectuosas)", "Posición del manurio correcta",
			"Resortes (Freno, burro, válvula de freno)",
		},
	},
	{
		Category: "INSPECCIÓN ELÉCTRICA",
		Items: []string{
			"Suichera funcionando", "Luces delanteras (Alta, baja, servicio)",
			"Luces de cruce (Izquierda, derecha)", "Luz de freno (Delantero, Trasero)",
			"Luz del tablero", "Corneta", "Encendido eléctrico",
		},
	},
	{
		Category: "ACCESORIOS",
		Items: []string{
			"Herramientas", "Etiquetas colocadas", "Retrovisores", "Llaves",
		},
	},
	{
		Category: "SISTEMAS DE FRENOS",
		Items: []string{
			"Línea de freno por el lado derecho", "Caliper de freno ajustado y con seguros",
			"Arañas de la transmisión", "Líquido de frenos",
			"Frenos delanteros y traseros disco o campana", "Llantas - Infladas",
		},
	},
	{
		Category: "MOTOR",
		Items: []string{
			"Probar cambios de velocidades (5 y Neutro)", "Nivel de aceite",
		},
	},
}

// ChecklistItems returns the flat canonical item list in sheet order.
func ChecklistItems() []string {
	var items []string
	for _, c := range ChecklistData {
		items = append(items, c.Items...)
	}
	return items
}

// NewChecklist builds a fresh checklist with every canonical item unmarked.
func NewChecklist() map[string]bool {
	items := ChecklistItems()
	checklist := make(map[string]bool, len(items))
	for _, item := range items {
		checklist[item] = false
	}
	return checklist
}
