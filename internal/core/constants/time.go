package constants

import "time"

const (
	// Tick spacing
	HourSeconds = int64(time.Hour / time.Second)
	DaySeconds  = int64(24 * HourSeconds)

	// Input dates carry no year; this one is assumed unless overridden.
	DefaultYear = 2025

	// Layouts applied to "<year> <line>"; accept both "Jan 01" and "Jan 1".
	InputLayout = "2006 Jan 2 15:04:05"
	// Full month names ("January 01 ...") are accepted as a fallback.
	InputLayoutLongMonth = "2006 January 2 15:04:05"

	// Axis label layouts
	HourlyLabelLayout = "15:04:05"
	DailyLabelLayout  = "Jan 02 - 15:04:05"
)
