package db

import (
	"database/sql"
	"fmt"
)

const statusColumns = "id, device_id, time_stamp, battery_level, rssi, online"

// InsertStatus appends a validated report and returns the assigned id.
// The log is append-only: duplicate device/timestamp pairs are allowed,
// ordering among them is settled by the id at query time.
func InsertStatus(report StatusReport) (int64, error) {
	query := `
		INSERT INTO device_status (device_id, time_stamp, battery_level, rssi, online)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := DB.QueryRow(query,
		report.DeviceID,
		report.TimeStamp,
		report.BatteryLevel,
		report.RSSI,
		report.Online,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert status: %w", err)
	}

	return id, nil
}

// GetLatestStatus returns the report with the greatest time_stamp for the
// device; equal timestamps resolve to the most recently inserted row.
// Returns nil when the device has no reports.
func GetLatestStatus(deviceID string) (*StatusReport, error) {
	query := `
		SELECT ` + statusColumns + `
		FROM device_status
		WHERE device_id = $1
		ORDER BY time_stamp DESC, id DESC
		LIMIT 1
	`

	report := &StatusReport{}
	err := DB.QueryRow(query, deviceID).Scan(
		&report.ID,
		&report.DeviceID,
		&report.TimeStamp,
		&report.BatteryLevel,
		&report.RSSI,
		&report.Online,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get latest status: %w", err)
	}

	return report, nil
}

// GetStatusHistory returns every report for the device ordered by time_stamp
// ascending, insertion order breaking ties.
func GetStatusHistory(deviceID string) ([]StatusReport, error) {
	query := `
		SELECT ` + statusColumns + `
		FROM device_status
		WHERE device_id = $1
		ORDER BY time_stamp ASC, id ASC
	`

	rows, err := DB.Query(query, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	history := []StatusReport{}
	for rows.Next() {
		var report StatusReport
		err := rows.Scan(
			&report.ID,
			&report.DeviceID,
			&report.TimeStamp,
			&report.BatteryLevel,
			&report.RSSI,
			&report.Online,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status report: %w", err)
		}
		history = append(history, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status history: %w", err)
	}

	return history, nil
}

// GetFleetSummary returns exactly one row per distinct device: its latest
// report (same tie rule as GetLatestStatus), ordered by device_id.
func GetFleetSummary() ([]DeviceSummary, error) {
	var query string

	if IsSQLite() {
		query = `
			SELECT d.device_id, d.battery_level, d.online, d.time_stamp
			FROM device_status d
			WHERE d.id = (
				SELECT id FROM device_status
				WHERE device_id = d.device_id
				ORDER BY time_stamp DESC, id DESC
				LIMIT 1
			)
			ORDER BY d.device_id
		`
	} else {
		query = `
			SELECT DISTINCT ON (device_id) device_id, battery_level, online, time_stamp
			FROM device_status
			ORDER BY device_id, time_stamp DESC, id DESC
		`
	}

	rows, err := DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fleet summary: %w", err)
	}
	defer rows.Close()

	summaries := []DeviceSummary{}
	for rows.Next() {
		var s DeviceSummary
		err := rows.Scan(
			&s.DeviceID,
			&s.BatteryLevel,
			&s.Online,
			&s.TimeStamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fleet summary: %w", err)
	}

	return summaries, nil
}
