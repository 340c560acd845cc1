package rest

import (
	"device-status-api/db"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func PostStatusHandler(c *fiber.Ctx) error {
	data, err := DecodeStatusBody(c.Body())
	if err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	report, fieldErrors := ValidateStatus(data)
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors)
	}

	id, err := db.InsertStatus(report)
	if err != nil {
		logger.Error("failed to insert status",
			zap.String("device_id", report.DeviceID),
			zap.Error(err),
		)
		return ReturnInternalError(c, "Failed to store status")
	}

	logger.Info("status accepted",
		zap.Int64("id", id),
		zap.String("device_id", report.DeviceID),
		zap.Int("battery_level", report.BatteryLevel),
		zap.Bool("online", report.Online),
	)

	// Echo exactly what was submitted; the assigned id shows up on reads.
	return c.JSON(StatusPayload{
		DeviceID:     report.DeviceID,
		TimeStamp:    report.TimeStamp,
		BatteryLevel: report.BatteryLevel,
		RSSI:         report.RSSI,
		Online:       report.Online,
	})
}

func GetStatusHandler(c *fiber.Ctx) error {
	deviceID := c.Params("device_id")
	if deviceID == "" {
		return ReturnBadRequest(c, "device_id is required")
	}

	report, err := db.GetLatestStatus(deviceID)
	if err != nil {
		logger.Error("failed to get latest status",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
		return ReturnInternalError(c, "Failed to retrieve status")
	}

	if report == nil {
		return ReturnNotFound(c, "Device not found")
	}

	return c.JSON(report)
}

func GetSummaryHandler(c *fiber.Ctx) error {
	summaries, err := db.GetFleetSummary()
	if err != nil {
		logger.Error("failed to get fleet summary", zap.Error(err))
		return ReturnInternalError(c, "Failed to retrieve summary")
	}

	// An empty fleet is a 404, matching the per-device read paths.
	if len(summaries) == 0 {
		return ReturnNotFound(c, "Summary not found")
	}

	return c.JSON(summaries)
}

func GetStatusHistoryHandler(c *fiber.Ctx) error {
	deviceID := c.Params("device_id")
	if deviceID == "" {
		return ReturnBadRequest(c, "device_id is required")
	}

	history, err := db.GetStatusHistory(deviceID)
	if err != nil {
		logger.Error("failed to get status history",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
		return ReturnInternalError(c, "Failed to retrieve history")
	}

	if len(history) == 0 {
		return ReturnNotFound(c, "History not found")
	}

	return c.JSON(history)
}

func HealthHandler(c *fiber.Ctx) error {
	if err := db.GetDB().Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{Status: "unavailable"})
	}
	return c.JSON(HealthResponse{Status: "ok"})
}
