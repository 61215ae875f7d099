package seed

import (
	"context"
	"fmt"

	"workshop-service/internal/model"
	"workshop-service/internal/service"
)

// placeholderPhoto is a 1x1 PNG used for demo progress evidence.
const placeholderPhoto = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// Demo populates an empty store with a handful of representative orders
// so the first run of the app has something to show.
func Demo(ctx context.Context, orders *service.OrderService) error {
	_, err := orders.Create(ctx, service.CreateOrderInput{
		OperationType: string(model.OperationInspection),
		Owner: model.Owner{
			Name:     "Carlos Mendoza",
			IDNumber: "V-14.523.889",
			Phone:    "0414-5551234",
			Email:    "carlos.mendoza@example.com",
		},
		Motorcycle: model.Motorcycle{
			Plate:        "AB123CD",
			Model:        "Bera SBR 150",
			Year:         "2021",
			Color:        "Negro",
			Mileage:      "15300",
			Displacement: "150cc",
		},
		ClientReport:  "Revisión general de los 15.000 km",
		EstimatedCost: 80,
	})
	if err != nil {
		return fmt.Errorf("seed pending order: %w", err)
	}

	inProgress, err := orders.Create(ctx, service.CreateOrderInput{
		OperationType: string(model.OperationRepair),
		Owner: model.Owner{
			Name:     "María González",
			IDNumber: "V-19.004.215",
			Phone:    "0412-7780011",
			Email:    "maria.gonzalez@example.com",
		},
		Motorcycle: model.Motorcycle{
			Plate:        "XYZ-987",
			Model:        "Empire Horse 150",
			Year:         "2019",
			Color:        "Rojo",
			Mileage:      "40210",
			Displacement: "150cc",
		},
		ClientReport:  "Ruido en la transmisión y pérdida de potencia",
		Observations:  "Tanque con rayón en el lado izquierdo",
		EstimatedCost: 250,
	})
	if err != nil {
		return fmt.Errorf("seed in-progress order: %w", err)
	}
	if _, err := orders.AdvanceStatus(ctx, inProgress.ID); err != nil {
		return fmt.Errorf("seed in-progress order: %w", err)
	}
	if _, err := orders.AppendProgressUpdate(ctx, inProgress.ID, placeholderPhoto, "Desmontaje del kit de arrastre"); err != nil {
		return fmt.Errorf("seed in-progress order: %w", err)
	}

	completed, err := orders.Create(ctx, service.CreateOrderInput{
		OperationType: string(model.OperationWarranty),
		Owner: model.Owner{
			Name:     "Pedro Rivas",
			IDNumber: "V-11.882.054",
			Phone:    "0416-3312288",
			Email:    "pedro.rivas@example.com",
		},
		Motorcycle: model.Motorcycle{
			Plate:        "GH456EF",
			Model:        "Suzuki GN 125",
			Year:         "2022",
			Color:        "Azul",
			Mileage:      "8100",
			Displacement: "125cc",
		},
		ClientReport:  "Falla del encendido eléctrico, cubierta por garantía",
		EstimatedCost: 0,
	})
	if err != nil {
		return fmt.Errorf("seed completed order: %w", err)
	}
	if _, err := orders.AppendProgressUpdate(ctx, completed.ID, placeholderPhoto, "Reemplazo del relay de arranque"); err != nil {
		return fmt.Errorf("seed completed order: %w", err)
	}
	if _, err := orders.ChangeStatus(ctx, completed.ID, model.StatusInProgress); err != nil {
		return fmt.Errorf("seed completed order: %w", err)
	}
	if _, err := orders.ChangeStatus(ctx, completed.ID, model.StatusCompleted); err != nil {
		return fmt.Errorf("seed completed order: %w", err)
	}

	return nil
}
