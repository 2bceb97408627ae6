package vehicleapi

import "github.com/yungbote/insurance-backend/internal/domain/vehicle"

// envelope is the vehicle service response body: {success, data, errorMessage}.
type envelope struct {
	Success      bool             `json:"success"`
	Data         *vehicle.Vehicle `json:"data"`
	ErrorMessage *string          `json:"errorMessage"`
}
