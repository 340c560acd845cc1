package rest

// StatusPayload is the body a device submits to POST /status and the body
// echoed back on success. The server-assigned id is deliberately absent;
// it appears on the read endpoints only.
type StatusPayload struct {
	DeviceID     string `json:"device_id"`
	TimeStamp    string `json:"time_stamp"`
	BatteryLevel int    `json:"battery_level"`
	RSSI         int    `json:"rssi"`
	Online       bool   `json:"online"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
