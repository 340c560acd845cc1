package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"device-status-api/db"
)

// statusFields is the complete ingest schema; anything else is rejected.
var statusFields = []string{"device_id", "time_stamp", "battery_level", "rssi", "online"}

// DecodeStatusBody parses a raw JSON body into an untyped map. Numbers are
// kept as json.Number so the validator can tell integers from floats.
func DecodeStatusBody(body []byte) (map[string]interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var data map[string]interface{}
	if err := decoder.Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// ValidateStatus checks an untyped ingest payload against the status schema.
// It checks every field in one pass and returns either a fully typed report
// or a non-empty map of per-field messages, never both. Types are strict:
// no string-to-number or truthy-string coercion.
func ValidateStatus(data map[string]interface{}) (db.StatusReport, map[string][]string) {
	report := db.StatusReport{}
	fieldErrors := map[string][]string{}

	addError := func(field, message string) {
		fieldErrors[field] = append(fieldErrors[field], message)
	}

	for _, field := range statusFields {
		if _, ok := data[field]; !ok {
			addError(field, "this field is required")
		}
	}

	for key := range data {
		if !isStatusField(key) {
			addError(key, "unknown field")
		}
	}

	if v, ok := data["device_id"]; ok {
		s, isString := v.(string)
		switch {
		case !isString:
			addError("device_id", "must be a string")
		case s == "":
			addError("device_id", "must not be empty")
		default:
			report.DeviceID = s
		}
	}

	if v, ok := data["time_stamp"]; ok {
		s, isString := v.(string)
		if !isString {
			addError("time_stamp", "must be a string")
		} else if _, err := time.Parse(time.RFC3339, s); err != nil {
			addError("time_stamp", "must be a valid RFC 3339 timestamp")
		} else {
			report.TimeStamp = s
		}
	}

	if v, ok := data["battery_level"]; ok {
		level, isInt := asInt(v)
		switch {
		case !isInt:
			addError("battery_level", "must be an integer")
		case level < 0 || level > 100:
			addError("battery_level", "must be between 0 and 100")
		default:
			report.BatteryLevel = int(level)
		}
	}

	if v, ok := data["rssi"]; ok {
		rssi, isInt := asInt(v)
		if !isInt {
			addError("rssi", "must be an integer")
		} else {
			report.RSSI = int(rssi)
		}
	}

	if v, ok := data["online"]; ok {
		online, isBool := v.(bool)
		if !isBool {
			addError("online", "must be a boolean")
		} else {
			report.Online = online
		}
	}

	if len(fieldErrors) > 0 {
		return db.StatusReport{}, fieldErrors
	}

	return report, nil
}

func isStatusField(key string) bool {
	for _, field := range statusFields {
		if key == field {
			return true
		}
	}
	return false
}

// asInt accepts only JSON numbers without a fractional part. Numeric strings
// and floats like 50.5 are type errors, not coercible values.
func asInt(v interface{}) (int64, bool) {
	number, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := number.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}
