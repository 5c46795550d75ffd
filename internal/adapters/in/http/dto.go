package http

// Request and response bodies of the REST surface. The wire format mirrors
// the integration events: snake_case fields, identifiers as plain strings.

// ProblemResponse is the error body returned for failed requests.
type ProblemResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDeliveryTaskRequest opens a delivery task by hand. The usual path is
// the assignment event; this exists for operational tooling.
type CreateDeliveryTaskRequest struct {
	OrderID          string  `json:"order_id"`
	CourierID        string  `json:"courier_id"`
	TotalAmount      float64 `json:"total_amount"`
	OrderLatitude    float64 `json:"order_latitude"`
	OrderLongitude   float64 `json:"order_longitude"`
	ConfirmationType string  `json:"confirmation_type"`
	Signature        string  `json:"signature,omitempty"`
}

// CreateDeliveryTaskResponse returns the identifier of the new task.
type CreateDeliveryTaskResponse struct {
	ID string `json:"id"`
}

// ConfirmDeliveryRequest carries the proof presented by the recipient.
type ConfirmDeliveryRequest struct {
	Proof string `json:"proof"`
}

// ConfirmDeliveryResponse reports the confirmation outcome.
type ConfirmDeliveryResponse struct {
	Confirmed bool   `json:"confirmed"`
	Message   string `json:"message"`
}

// CancelDeliveryTaskRequest carries the mandatory cancellation reason.
type CancelDeliveryTaskRequest struct {
	Reason string `json:"reason"`
}

// SubmitRatingRequest carries the courier rating for a delivered task.
type SubmitRatingRequest struct {
	Rating float64 `json:"rating"`
}

// UpdateLocationRequest carries a courier position report.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DeliveryTaskResponse is the REST view of a delivery task.
type DeliveryTaskResponse struct {
	ID                 string   `json:"id"`
	OrderID            string   `json:"order_id"`
	CourierID          string   `json:"courier_id"`
	TotalAmount        float64  `json:"total_amount"`
	Status             string   `json:"status"`
	OrderLatitude      float64  `json:"order_latitude"`
	OrderLongitude     float64  `json:"order_longitude"`
	CourierLatitude    float64  `json:"courier_latitude"`
	CourierLongitude   float64  `json:"courier_longitude"`
	ConfirmationType   string   `json:"confirmation_type"`
	CancellationReason string   `json:"cancellation_reason,omitempty"`
	CourierRating      *float64 `json:"courier_rating,omitempty"`
}

// TaskLocationResponse is the REST view of a courier position.
type TaskLocationResponse struct {
	TaskID    string  `json:"task_id"`
	OrderID   string  `json:"order_id"`
	CourierID string  `json:"courier_id"`
	Status    string  `json:"status"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CourierRequest creates or replaces a courier roster entry.
type CourierRequest struct {
	Name     string `json:"name"`
	MobileNo string `json:"mobile_no"`
	Status   string `json:"status,omitempty"`
}

// CourierResponse is the REST view of a roster entry.
type CourierResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MobileNo string `json:"mobile_no"`
	Status   string `json:"status"`
}
