package model

import (
	"errors"
	"fmt"
	"time"

	"workshop-service/internal/utils"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pendiente"
	StatusInProgress OrderStatus = "En Proceso"
	StatusCompleted  OrderStatus = "Completado"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type OperationType string

const (
	OperationInspection OperationType = "Revisión"
	OperationRepair     OperationType = "Reparación"
	OperationWarranty   OperationType = "Garantía"
)

func (t OperationType) Valid() bool {
	switch t {
	case OperationInspection, OperationRepair, OperationWarranty:
		return true
	}
	return false
}

type Owner struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type Motorcycle struct {
	Plate         string `json:"plate"`
	Model         string `json:"model"`
	Year          string `json:"year"`
	Color         string `json:"color"`
	Mileage       string `json:"mileage"`
	ChassisSerial string `json:"chassisSerial"`
	EngineSerial  string `json:"engineSerial"`
	Displacement  string `json:"displacement"`
}

// ProgressUpdate is one timestamped photo-plus-note entry in an order's
// repair log. Photo and timestamp are immutable once created; only the
// note can be edited afterwards.
type ProgressUpdate struct {
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
	Photo     string    `json:"photo"`
}

// Order is one workshop job record tracking a single vehicle visit from
// intake to completion. Photos are stored inline as base64 data URLs.
type Order struct {
	ID              string           `json:"id"`
	EntryDate       time.Time        `json:"entryDate"`
	CompletionDate  *time.Time       `json:"completionDate,omitempty"`
	Status          OrderStatus      `json:"status"`
	OperationType   OperationType    `json:"operationType"`
	Owner           Owner            `json:"owner"`
	Motorcycle      Motorcycle       `json:"motorcycle"`
	Checklist       map[string]bool  `json:"checklist"`
	ClientReport    string           `json:"clientReport"`
	Observations    string           `json:"observations"`
	TechnicianNotes string           `json:"technicianNotes"`
	WorkHours       float64          `json:"workHours"`
	EstimatedCost   float64          `json:"estimatedCost"`
	PhotoVehicle    string           `json:"photoVehicle,omitempty"`
	PhotoChassis    string           `json:"photoChassis,omitempty"`
	Updates         []ProgressUpdate `json:"updates"`
}

var (
	ErrMissingField          = errors.New("missing required field")
	ErrUpdateIndexOutOfRange = errors.New("progress update index out of range")
	ErrPhotoRequired         = errors.New("progress update photo is required")
)

// NewOrderParams carries the intake form data for constructing an Order.
type NewOrderParams struct {
	ID            string
	EntryDate     time.Time
	OperationType OperationType
	Owner         Owner
	Motorcycle    Motorcycle
	Checklist     map[string]bool
	ClientReport  string
	Observations  string
	WorkHours     float64
	EstimatedCost float64
	PhotoVehicle  string
	PhotoChassis  string
}

// NewOrder validates the intake data and builds an Order in the Pending
// state. The checklist is populated from the canonical taxonomy; values
// for known items are taken from params, unknown keys are dropped.
func NewOrder(p NewOrderParams) (*Order, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("%w: id", ErrMissingField)
	}
	if p.Owner.Name == "" {
		return nil, fmt.Errorf("%w: owner name", ErrMissingField)
	}
	if p.Motorcycle.Plate == "" {
		return nil, fmt.Errorf("%w: plate", ErrMissingField)
	}
	if p.EntryDate.IsZero() {
		return nil, fmt.Errorf("%w: entry date", ErrMissingField)
	}
	if !p.OperationType.Valid() {
		return nil, fmt.Errorf("invalid operation type %q", p.OperationType)
	}
	if p.WorkHours < 0 || p.EstimatedCost < 0 {
		return nil, fmt.Errorf("work hours and estimated cost must be non-negative")
	}

	motorcycle := p.Motorcycle
	motorcycle.Plate = utils.NormalizePlate(motorcycle.Plate)

	checklist := NewChecklist()
	for item := range checklist {
		if v, ok := p.Checklist[item]; ok {
			checklist[item] = v
		}
	}

	return &Order{
		ID:            p.ID,
		EntryDate:     p.EntryDate,
		Status:        StatusPending,
		OperationType: p.OperationType,
		Owner:         p.Owner,
		Motorcycle:    motorcycle,
		Checklist:     checklist,
		ClientReport:  p.ClientReport,
		Observations:  p.Observations,
		WorkHours:     p.WorkHours,
		EstimatedCost: p.EstimatedCost,
		PhotoVehicle:  p.PhotoVehicle,
		PhotoChassis:  p.PhotoChassis,
		Updates:       []ProgressUpdate{},
	}, nil
}

// AppendUpdate adds a progress entry stamped with the current time. The
// caller must persist the containing order afterwards.
func (o *Order) AppendUpdate(photo, note string) error {
	if photo == "" {
		return ErrPhotoRequired
	}
	o.Updates = append(o.Updates, ProgressUpdate{
		Timestamp: time.Now(),
		Note:      note,
		Photo:     photo,
	})
	return nil
}

// RemoveUpdate drops the entry at index, preserving the relative order of
// the remaining entries.
func (o *Order) RemoveUpdate(index int) error {
	if index < 0 || index >= len(o.Updates) {
		return ErrUpdateIndexOutOfRange
	}
	o.Updates = append(o.Updates[:index], o.Updates[index+1:]...)
	return nil
}

// EditUpdateNote replaces the note of the entry at index. Photo and
// timestamp stay untouched.
func (o *Order) EditUpdateNote(index int, note string) error {
	if index < 0 || index >= len(o.Updates) {
		return ErrUpdateIndexOutOfRange
	}
	o.Updates[index].Note = note
	return nil
}

// Clone returns a deep copy, so callers can hand out snapshots without
// exposing the backing checklist map or updates slice.
func (o Order) Clone() Order {
	clone := o
	if o.CompletionDate != nil {
		t := *o.CompletionDate
		clone.CompletionDate = &t
	}
	if o.Checklist != nil {
		clone.Checklist = make(map[string]bool, len(o.Checklist))
		for k, v := range o.Checklist {
			clone.Checklist[k] = v
		}
	}
	if o.Updates != nil {
		clone.Updates = make([]ProgressUpdate, len(o.Updates))
		copy(clone.Updates, o.Updates)
	}
	return clone
}
