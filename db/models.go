package db

// StatusReport is one row of the append-only device_status log. TimeStamp is
// kept as the RFC 3339 string the device submitted; responses echo it back
// byte-for-byte.
type StatusReport struct {
	ID           int64  `json:"id"`
	DeviceID     string `json:"device_id"`
	TimeStamp    string `json:"time_stamp"`
	BatteryLevel int    `json:"battery_level"`
	RSSI         int    `json:"rssi"`
	Online       bool   `json:"online"`
}

// DeviceSummary is the fleet-summary projection: the latest report per
// device, trimmed to the columns the summary endpoint exposes.
type DeviceSummary struct {
	DeviceID     string `json:"device_id"`
	BatteryLevel int    `json:"battery_level"`
	Online       bool   `json:"online"`
	TimeStamp    string `json:"time_stamp"`
}
