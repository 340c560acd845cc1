package rest

import (
	"testing"
)

func mustDecode(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	data, err := DecodeStatusBody([]byte(body))
	if err != nil {
		t.Fatalf("DecodeStatusBody: %v", err)
	}
	return data
}

func TestValidateStatus_Valid(t *testing.T) {
	data := mustDecode(t, `{
		"device_id": "phone123",
		"time_stamp": "2025-06-30T09:00:00Z",
		"battery_level": 100,
		"rssi": -60,
		"online": true
	}`)

	report, fieldErrors := ValidateStatus(data)
	if len(fieldErrors) != 0 {
		t.Fatalf("expected no errors, got %v", fieldErrors)
	}

	if report.DeviceID != "phone123" {
		t.Errorf("device_id: got %q", report.DeviceID)
	}
	if report.TimeStamp != "2025-06-30T09:00:00Z" {
		t.Errorf("time_stamp: got %q", report.TimeStamp)
	}
	if report.BatteryLevel != 100 {
		t.Errorf("battery_level: got %d", report.BatteryLevel)
	}
	if report.RSSI != -60 {
		t.Errorf("rssi: got %d", report.RSSI)
	}
	if !report.Online {
		t.Error("online: got false")
	}
}

func TestValidateStatus_MissingFields(t *testing.T) {
	data := mustDecode(t, `{"device_id": "ipad121415"}`)

	_, fieldErrors := ValidateStatus(data)

	missing := []string{"time_stamp", "battery_level", "rssi", "online"}
	if len(fieldErrors) != len(missing) {
		t.Fatalf("expected exactly %d error keys, got %d: %v", len(missing), len(fieldErrors), fieldErrors)
	}
	for _, field := range missing {
		if len(fieldErrors[field]) == 0 {
			t.Errorf("expected an error for %s", field)
		}
	}
}

func TestValidateStatus_BatteryRange(t *testing.T) {
	tests := []struct {
		name    string
		battery string
		valid   bool
	}{
		{"below range", "-1", false},
		{"above range", "101", false},
		{"lower bound", "0", true},
		{"upper bound", "100", true},
		{"fractional", "50.5", false},
		{"numeric string", `"50"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mustDecode(t, `{
				"device_id": "computer456",
				"time_stamp": "2025-06-30T09:00:00Z",
				"battery_level": `+tt.battery+`,
				"rssi": -50,
				"online": true
			}`)

			_, fieldErrors := ValidateStatus(data)
			if tt.valid && len(fieldErrors) != 0 {
				t.Errorf("expected valid, got %v", fieldErrors)
			}
			if !tt.valid {
				if len(fieldErrors) != 1 || len(fieldErrors["battery_level"]) == 0 {
					t.Errorf("expected a battery_level error only, got %v", fieldErrors)
				}
			}
		})
	}
}

func TestValidateStatus_OnlineStrictBoolean(t *testing.T) {
	tests := []struct {
		name   string
		online string
		valid  bool
	}{
		{"literal true", "true", true},
		{"literal false", "false", true},
		{"numeric string", `"8"`, false},
		{"string true", `"true"`, false},
		{"number one", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mustDecode(t, `{
				"device_id": "tv-101112",
				"time_stamp": "2025-06-09T09:00:00Z",
				"battery_level": 0,
				"rssi": -30,
				"online": `+tt.online+`
			}`)

			_, fieldErrors := ValidateStatus(data)
			if tt.valid && len(fieldErrors) != 0 {
				t.Errorf("expected valid, got %v", fieldErrors)
			}
			if !tt.valid && len(fieldErrors["online"]) == 0 {
				t.Errorf("expected an online error, got %v", fieldErrors)
			}
		})
	}
}

func TestValidateStatus_TimestampFormat(t *testing.T) {
	tests := []struct {
		name      string
		timeStamp string
		valid     bool
	}{
		{"utc designator", `"2025-06-30T09:00:00Z"`, true},
		{"explicit offset", `"2025-06-30T09:00:00+02:00"`, true},
		{"not a date", `"not_a_date"`, false},
		{"missing offset", `"2025-06-30T09:00:00"`, false},
		{"date only", `"2025-06-30"`, false},
		{"not a string", `1719738000`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mustDecode(t, `{
				"device_id": "thermostat789",
				"time_stamp": `+tt.timeStamp+`,
				"battery_level": 50,
				"rssi": -40,
				"online": true
			}`)

			_, fieldErrors := ValidateStatus(data)
			if tt.valid && len(fieldErrors) != 0 {
				t.Errorf("expected valid, got %v", fieldErrors)
			}
			if !tt.valid && len(fieldErrors["time_stamp"]) == 0 {
				t.Errorf("expected a time_stamp error, got %v", fieldErrors)
			}
		})
	}
}

func TestValidateStatus_RSSI(t *testing.T) {
	data := mustDecode(t, `{
		"device_id": "phone123",
		"time_stamp": "2025-06-30T09:00:00Z",
		"battery_level": 50,
		"rssi": "strong",
		"online": true
	}`)

	_, fieldErrors := ValidateStatus(data)
	if len(fieldErrors["rssi"]) == 0 {
		t.Errorf("expected an rssi error, got %v", fieldErrors)
	}
}

func TestValidateStatus_EmptyDeviceID(t *testing.T) {
	data := mustDecode(t, `{
		"device_id": "",
		"time_stamp": "2025-06-30T09:00:00Z",
		"battery_level": 50,
		"rssi": -50,
		"online": true
	}`)

	_, fieldErrors := ValidateStatus(data)
	if len(fieldErrors["device_id"]) == 0 {
		t.Errorf("expected a device_id error, got %v", fieldErrors)
	}
}

func TestValidateStatus_UnknownField(t *testing.T) {
	data := mustDecode(t, `{
		"device_id": "phone123",
		"time_stamp": "2025-06-30T09:00:00Z",
		"battery_level": 50,
		"rssi": -50,
		"online": true,
		"firmware": "1.2.3"
	}`)

	_, fieldErrors := ValidateStatus(data)
	if len(fieldErrors) != 1 || len(fieldErrors["firmware"]) == 0 {
		t.Errorf("expected only an unknown-field error for firmware, got %v", fieldErrors)
	}
}

func TestValidateStatus_CollectsAllViolations(t *testing.T) {
	data := mustDecode(t, `{
		"device_id": 7,
		"time_stamp": "nope",
		"battery_level": 150,
		"online": "8"
	}`)

	_, fieldErrors := ValidateStatus(data)

	for _, field := range []string{"device_id", "time_stamp", "battery_level", "rssi", "online"} {
		if len(fieldErrors[field]) == 0 {
			t.Errorf("expected an error for %s, got %v", field, fieldErrors)
		}
	}
}
